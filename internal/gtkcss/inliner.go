package gtkcss

import (
	"regexp"
	"strings"
)

// Color rewrites from space-separated to comma-separated notation, which is
// the only form the GTK renderer accepts.
var (
	// rgb(1 2 3 / 0.5) -> rgba(1, 2, 3, 0.5)
	rgbAlphaPattern = regexp.MustCompile(`rgb\((\d+) (\d+) (\d+) / ([\d.]+%?)\)`)
	// rgb(1 2 3 / var(--a)) -> rgba(1, 2, 3, var(--a))
	rgbAlphaVarPattern = regexp.MustCompile(`rgb\((\d+) (\d+) (\d+) / (var\([^()]*\))\)`)
	// rgb(1 2 3) -> rgb(1, 2, 3)
	rgbPattern = regexp.MustCompile(`rgb\((\d+) (\d+) (\d+)\)`)
)

// Inliner resolves custom properties at build time, since GTK CSS has no
// runtime support for them.
//
// For every custom property declaration (--name: value) it substitutes the
// value into each var(--name[, default]) reference among the declarations
// of the same block and then deletes the custom property. An empty value
// falls back to the reference's default.
//
// While visiting the siblings it also normalizes the first space-separated
// rgb() color of each value to comma-separated notation. Only the first
// occurrence of each color form is rewritten; later ones in the same value
// are left alone and reported by the modern-color lint check.
//
// Inliner is stateless. It relies on Walk visiting each declaration once and
// tolerating removal of the visited declaration.
type Inliner struct{}

// PluginName identifies the inliner in the pipeline.
func (Inliner) PluginName() string { return "gtk" }

// VisitDeclaration inlines decl into its siblings when decl is a custom property.
func (Inliner) VisitDeclaration(decl *Declaration, siblings []*Declaration) {
	if !decl.IsCustomProperty() {
		return
	}
	for _, sibling := range siblings {
		sibling.Value = RewriteValue(sibling.Value, decl.Prop, decl.Value)
	}
	decl.Remove()
}

// RewriteValue applies the inliner's substitutions to a single value:
// every var(prop[, default]) reference becomes replacement (or the default
// when replacement is empty), then the first match of each rgb() form is
// converted to comma-separated notation.
func RewriteValue(value, prop, replacement string) string {
	value = SubstituteVar(value, prop, replacement)
	value = replaceFirst(rgbAlphaPattern, value, "rgba(${1}, ${2}, ${3}, ${4})")
	value = replaceFirst(rgbAlphaVarPattern, value, "rgba(${1}, ${2}, ${3}, ${4})")
	value = replaceFirst(rgbPattern, value, "rgb(${1}, ${2}, ${3})")
	return value
}

// SubstituteVar replaces every var(prop) and var(prop, default) reference in
// value. A non-empty replacement wins; otherwise the default text is used, or
// nothing when the reference has no default. References to other properties,
// including ones sharing prop as a prefix, are left untouched. Defaults may
// contain nested parentheses.
func SubstituteVar(value, prop, replacement string) string {
	const open = "var("

	var sb strings.Builder
	rest := value
	for {
		i := strings.Index(rest, open)
		if i < 0 {
			break
		}
		start := i + len(open)

		name := start + leadingSpace(rest[start:])
		if !strings.HasPrefix(rest[name:], prop) {
			sb.WriteString(rest[:start])
			rest = rest[start:]
			continue
		}
		after := name + len(prop)
		after += leadingSpace(rest[after:])
		if after >= len(rest) || (rest[after] != ',' && rest[after] != ')') {
			// Longer property name (--x-y when looking for --x)
			sb.WriteString(rest[:start])
			rest = rest[start:]
			continue
		}

		end := closingParen(rest, start)
		if end < 0 {
			// Unbalanced; leave the remainder as is
			break
		}

		fallback := ""
		if rest[after] == ',' {
			fallback = strings.TrimSpace(rest[after+1 : end])
		}

		sb.WriteString(rest[:i])
		if replacement != "" {
			sb.WriteString(replacement)
		} else {
			sb.WriteString(fallback)
		}
		rest = rest[end+1:]
	}
	sb.WriteString(rest)
	return sb.String()
}

// closingParen returns the index of the ')' matching an opening parenthesis
// that ends just before from, or -1.
func closingParen(s string, from int) int {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t\n\r\f"))
}

// replaceFirst is regexp.ReplaceAllString limited to the leftmost match.
func replaceFirst(re *regexp.Regexp, s, template string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, m)
	return s[:m[0]] + string(expanded) + s[m[1]:]
}
