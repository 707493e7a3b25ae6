package gtkcss

import (
	"time"

	"go.uber.org/zap"
)

// Plugin is a named stylesheet transform. A plugin does its work through
// one or more of the visitor interfaces below; the Processor calls whichever
// ones it implements.
type Plugin interface {
	PluginName() string
}

// OnceVisitor is called once with the whole stylesheet before any walk.
type OnceVisitor interface {
	Once(sheet *Stylesheet)
}

// RuleVisitor is called for every rule, in document order.
type RuleVisitor interface {
	VisitRule(rule *Rule)
}

// DeclarationVisitor is called for every declaration, in document order.
// siblings holds the declarations of decl's parent at the time of the call,
// decl included.
type DeclarationVisitor interface {
	VisitDeclaration(decl *Declaration, siblings []*Declaration)
}

// OnceExitVisitor is called once after all walks of the plugin have finished.
type OnceExitVisitor interface {
	OnceExit(sheet *Stylesheet)
}

// Walk calls v.VisitDeclaration once for every declaration in the sheet,
// at any nesting depth, in document order.
//
// Each container's children are iterated from a snapshot taken when the walk
// enters it. Nodes removed before they are reached are skipped, so a visitor
// may safely remove the declaration it is visiting or any of its siblings.
func Walk(sheet *Stylesheet, v DeclarationVisitor) {
	walkDeclarations(sheet, v)
}

func walkDeclarations(c Container, v DeclarationVisitor) {
	for _, n := range snapshot(c) {
		if n.Parent() != c {
			continue
		}
		switch n := n.(type) {
		case *Declaration:
			v.VisitDeclaration(n, c.Declarations())
		case *Rule:
			walkDeclarations(n, v)
		case *AtRule:
			if n.HasBlock {
				walkDeclarations(n, v)
			}
		}
	}
}

// WalkRules calls fn for every rule in document order, including rules
// nested in at-rules or other rules. fn may remove the rule.
func WalkRules(sheet *Stylesheet, fn func(rule *Rule)) {
	walkRules(sheet, fn)
}

func walkRules(c Container, fn func(rule *Rule)) {
	for _, n := range snapshot(c) {
		if n.Parent() != c {
			continue
		}
		switch n := n.(type) {
		case *Rule:
			fn(n)
			if n.Parent() == c {
				walkRules(n, fn)
			}
		case *AtRule:
			if n.HasBlock {
				walkRules(n, fn)
			}
		}
	}
}

// WalkNodes calls fn for every node below c, parents before children.
func WalkNodes(c Container, fn func(n Node)) {
	for _, n := range snapshot(c) {
		if n.Parent() != c {
			continue
		}
		fn(n)
		if child, ok := n.(Container); ok && n.Parent() == c {
			WalkNodes(child, fn)
		}
	}
}

func snapshot(c Container) []Node {
	nodes := c.Children()
	out := make([]Node, len(nodes))
	copy(out, nodes)
	return out
}

// RemoveEmpty deletes rules and block at-rules that no longer hold any
// children, repeating upwards so a @media left empty disappears too.
func RemoveEmpty(sheet *Stylesheet) int {
	return removeEmpty(sheet)
}

func removeEmpty(c Container) int {
	removed := 0
	for _, n := range snapshot(c) {
		switch n := n.(type) {
		case *Rule:
			removed += removeEmpty(n)
			if len(n.Children()) == 0 {
				n.Remove()
				removed++
			}
		case *AtRule:
			if !n.HasBlock {
				continue
			}
			removed += removeEmpty(n)
			if len(n.Children()) == 0 {
				n.Remove()
				removed++
			}
		}
	}
	return removed
}

// Processor runs a fixed sequence of plugins over stylesheets.
type Processor struct {
	plugins []Plugin
	log     *zap.Logger
}

// NewProcessor creates a processor. Plugins run in the given order.
func NewProcessor(log *zap.Logger, plugins ...Plugin) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{plugins: plugins, log: log.Named("processor")}
}

// Plugins returns the names of the configured plugins, in run order.
func (p *Processor) Plugins() []string {
	names := make([]string, len(p.plugins))
	for i, plugin := range p.plugins {
		names[i] = plugin.PluginName()
	}
	return names
}

// Process applies every plugin to sheet in place. Each plugin sees the
// result of the previous one.
func (p *Processor) Process(sheet *Stylesheet) {
	for _, plugin := range p.plugins {
		start := time.Now()
		before := Count(sheet)

		if v, ok := plugin.(OnceVisitor); ok {
			v.Once(sheet)
		}
		if v, ok := plugin.(RuleVisitor); ok {
			WalkRules(sheet, v.VisitRule)
		}
		if v, ok := plugin.(DeclarationVisitor); ok {
			Walk(sheet, v)
		}
		if v, ok := plugin.(OnceExitVisitor); ok {
			v.OnceExit(sheet)
		}

		after := Count(sheet)
		p.log.Debug("Plugin finished",
			zap.String("plugin", plugin.PluginName()),
			zap.String("source", sheet.Source),
			zap.Int("rules_removed", before.Rules-after.Rules),
			zap.Int("declarations_removed", before.Declarations-after.Declarations),
			zap.Duration("took", time.Since(start)))
	}
}
