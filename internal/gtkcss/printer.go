package gtkcss

import (
	"io"
	"strings"
)

// PrintOptions controls how a stylesheet is rendered back to CSS.
type PrintOptions struct {
	Minify bool   // Drop comments and all optional whitespace
	Indent string // Indentation unit for pretty output (default: two spaces)
}

// Print writes sheet to w as CSS text.
func Print(w io.Writer, sheet *Stylesheet, opts PrintOptions) error {
	_, err := io.WriteString(w, Render(sheet, opts))
	return err
}

// Render returns sheet as CSS text.
func Render(sheet *Stylesheet, opts PrintOptions) string {
	if opts.Indent == "" {
		opts.Indent = "  "
	}
	pr := &printer{opts: opts}
	pr.nodes(sheet.Children(), 0, true)
	out := pr.sb.String()
	if !opts.Minify && out != "" {
		out += "\n"
	}
	return out
}

// String renders the stylesheet with default pretty formatting.
func (s *Stylesheet) String() string {
	return Render(s, PrintOptions{})
}

type printer struct {
	sb   strings.Builder
	opts PrintOptions
}

func (pr *printer) nodes(nodes []Node, depth int, topLevel bool) {
	first := true
	prevDecl := false
	for _, n := range nodes {
		if pr.opts.Minify {
			if _, ok := n.(*Comment); ok {
				continue
			}
			// Declarations are separated, not terminated
			if prevDecl {
				pr.sb.WriteByte(';')
			}
			_, prevDecl = n.(*Declaration)
			pr.node(n, depth)
			continue
		}

		if !first {
			pr.sb.WriteByte('\n')
			// Blank line between top-level blocks
			if topLevel {
				pr.sb.WriteByte('\n')
			}
		}
		pr.node(n, depth)
		first = false
	}
}

func (pr *printer) node(n Node, depth int) {
	indent := ""
	if !pr.opts.Minify {
		indent = strings.Repeat(pr.opts.Indent, depth)
	}

	switch n := n.(type) {
	case *Declaration:
		pr.sb.WriteString(indent)
		pr.declaration(n)
	case *Comment:
		pr.sb.WriteString(indent + "/* " + n.Text + " */")
	case *Rule:
		pr.sb.WriteString(indent + n.Selector)
		pr.block(n.Children(), depth)
	case *AtRule:
		pr.sb.WriteString(indent + "@" + n.Name)
		if n.Prelude != "" {
			pr.sb.WriteString(" " + n.Prelude)
		}
		if !n.HasBlock {
			pr.sb.WriteByte(';')
			return
		}
		pr.block(n.Children(), depth)
	}
}

func (pr *printer) block(children []Node, depth int) {
	if pr.opts.Minify {
		pr.sb.WriteByte('{')
		pr.nodes(children, depth+1, false)
		pr.sb.WriteByte('}')
		return
	}

	if len(children) == 0 {
		pr.sb.WriteString(" {}")
		return
	}
	pr.sb.WriteString(" {\n")
	pr.nodes(children, depth+1, false)
	pr.sb.WriteString("\n" + strings.Repeat(pr.opts.Indent, depth) + "}")
}

func (pr *printer) declaration(d *Declaration) {
	sep := ": "
	if pr.opts.Minify {
		sep = ":"
	}
	pr.sb.WriteString(d.Prop + sep + d.Value)
	if d.Important {
		if pr.opts.Minify {
			pr.sb.WriteString("!important")
		} else {
			pr.sb.WriteString(" !important")
		}
	}
	if !pr.opts.Minify {
		pr.sb.WriteByte(';')
	}
}
