package gtkcss

import "strings"

// Node is a single item in a parsed stylesheet.
type Node interface {
	// Parent returns the container holding the node, or nil once removed.
	Parent() Container
	// Remove detaches the node from its parent. Removing a detached node is a no-op.
	Remove()

	setParent(c Container)
}

// Container is anything that holds an ordered list of child nodes:
// the stylesheet itself, rules, and at-rules with a block.
type Container interface {
	Children() []Node
	Append(nodes ...Node)
	RemoveChild(n Node) bool
	Declarations() []*Declaration
}

// children is the shared child list behind every Container.
type children struct {
	nodes []Node
}

func (c *children) Children() []Node {
	return c.nodes
}

func (c *children) Declarations() []*Declaration {
	decls := make([]*Declaration, 0, len(c.nodes))
	for _, n := range c.nodes {
		if d, ok := n.(*Declaration); ok {
			decls = append(decls, d)
		}
	}
	return decls
}

func (c *children) RemoveChild(n Node) bool {
	for i, child := range c.nodes {
		if child == n {
			c.nodes = append(c.nodes[:i:i], c.nodes[i+1:]...)
			n.setParent(nil)
			return true
		}
	}
	return false
}

// appendTo attaches nodes to owner, detaching them from any previous parent first.
func appendTo(owner Container, c *children, nodes []Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if p := n.Parent(); p != nil {
			p.RemoveChild(n)
		}
		n.setParent(owner)
		c.nodes = append(c.nodes, n)
	}
}

// detach removes n from its current parent.
func detach(n Node) {
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}

// Stylesheet is the root of a parsed CSS document.
type Stylesheet struct {
	children

	Source   string   // Where the stylesheet was read from (for logs and errors)
	Warnings []string // Recoverable parse problems
}

// Append adds nodes to the end of the stylesheet.
func (s *Stylesheet) Append(nodes ...Node) {
	appendTo(s, &s.children, nodes)
}

// Adopt moves every node of other to the end of s, leaving other empty.
func (s *Stylesheet) Adopt(other *Stylesheet) {
	moved := make([]Node, len(other.nodes))
	copy(moved, other.nodes)
	s.Append(moved...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Rule is a qualified rule: a selector list followed by a declaration block.
type Rule struct {
	children

	Selector string // ".btn, .btn:hover"
	parent   Container
}

func (r *Rule) Parent() Container { return r.parent }
func (r *Rule) setParent(c Container) { r.parent = c }
func (r *Rule) Remove() { detach(r) }
func (r *Rule) Append(nodes ...Node) { appendTo(r, &r.children, nodes) }

// AtRule is an @-rule. Statement at-rules (@import, @charset) have no block.
type AtRule struct {
	children

	Name     string // "media", without the leading @
	Prelude  string // "(min-width: 640px)"
	HasBlock bool
	parent   Container
}

func (a *AtRule) Parent() Container { return a.parent }
func (a *AtRule) setParent(c Container) { a.parent = c }
func (a *AtRule) Remove() { detach(a) }
func (a *AtRule) Append(nodes ...Node) {
	a.HasBlock = true
	appendTo(a, &a.children, nodes)
}

// Declaration is a single property: value pair.
type Declaration struct {
	Prop      string
	Value     string
	Important bool
	parent    Container
}

func (d *Declaration) Parent() Container { return d.parent }
func (d *Declaration) setParent(c Container) { d.parent = c }
func (d *Declaration) Remove() { detach(d) }

// IsCustomProperty reports whether the declaration defines a custom property (--name).
func (d *Declaration) IsCustomProperty() bool {
	return strings.HasPrefix(d.Prop, "--")
}

// Comment is a /* ... */ comment, stored without its delimiters.
type Comment struct {
	Text   string
	parent Container
}

func (c *Comment) Parent() Container { return c.parent }
func (c *Comment) setParent(p Container) { c.parent = p }
func (c *Comment) Remove() { detach(c) }

// Stats summarizes the contents of a stylesheet.
type Stats struct {
	Rules            int
	AtRules          int
	Declarations     int
	CustomProperties int
	Comments         int
}

// Count walks the whole stylesheet and tallies its nodes.
func Count(sheet *Stylesheet) Stats {
	var stats Stats
	WalkNodes(sheet, func(n Node) {
		switch n := n.(type) {
		case *Rule:
			stats.Rules++
		case *AtRule:
			stats.AtRules++
		case *Declaration:
			stats.Declarations++
			if n.IsCustomProperty() {
				stats.CustomProperties++
			}
		case *Comment:
			stats.Comments++
		}
	})
	return stats
}
