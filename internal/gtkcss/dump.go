package gtkcss

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the stylesheet structure as an indented tree for debugging.
func Dump(sheet *Stylesheet) string {
	stats := Count(sheet)
	header := fmt.Sprintf("Stylesheet(%s rules=%d at-rules=%d declarations=%d custom=%d)\n",
		sheet.Source, stats.Rules, stats.AtRules, stats.Declarations, stats.CustomProperties)

	tree := treeprint.New()
	dumpChildren(tree, sheet)
	return header + tree.String()
}

func dumpChildren(tree treeprint.Tree, c Container) {
	for _, n := range c.Children() {
		switch n := n.(type) {
		case *Rule:
			dumpChildren(tree.AddBranch(n.Selector), n)
		case *AtRule:
			label := "@" + n.Name
			if n.Prelude != "" {
				label += " " + n.Prelude
			}
			if !n.HasBlock {
				tree.AddNode(label)
				continue
			}
			dumpChildren(tree.AddBranch(label), n)
		case *Declaration:
			label := n.Prop + ": " + n.Value
			if n.Important {
				label += " !important"
			}
			tree.AddNode(label)
		case *Comment:
			tree.AddNode("/* " + n.Text + " */")
		}
	}
}
