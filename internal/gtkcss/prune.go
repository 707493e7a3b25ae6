package gtkcss

import "strings"

// Pruner removes rules for classes that the project never uses.
//
// A rule survives when at least one class in its selector list appears in
// the candidate set, or when its selector names no class at all (element,
// universal and attribute selectors are always kept).
type Pruner struct {
	candidates map[string]struct{}
	pruned     int
}

// NewPruner creates a pruner for the given candidate class names.
func NewPruner(candidates map[string]struct{}) *Pruner {
	return &Pruner{candidates: candidates}
}

// PluginName identifies the pruner in the pipeline.
func (p *Pruner) PluginName() string { return "prune" }

// Pruned returns how many rules have been removed so far.
func (p *Pruner) Pruned() int { return p.pruned }

// VisitRule removes rule when none of its classes is used.
func (p *Pruner) VisitRule(rule *Rule) {
	classes := SelectorClasses(rule.Selector)
	if len(classes) == 0 {
		return
	}
	for _, class := range classes {
		if _, ok := p.candidates[class]; ok {
			return
		}
	}
	rule.Remove()
	p.pruned++
}

// OnceExit drops at-rules left without rules.
func (p *Pruner) OnceExit(sheet *Stylesheet) {
	if p.pruned > 0 {
		RemoveEmpty(sheet)
	}
}

// SelectorClasses extracts the unescaped class names from a selector list.
// ".hover\:bg-red:hover, .group .x" yields ["hover:bg-red", "group", "x"].
func SelectorClasses(selector string) []string {
	var classes []string
	seen := make(map[string]bool)

	inAttr := 0
	for i := 0; i < len(selector); i++ {
		switch selector[i] {
		case '\\':
			i++ // escaped character outside a class name
		case '[':
			inAttr++
		case ']':
			if inAttr > 0 {
				inAttr--
			}
		case '"', '\'':
			i = skipQuoted(selector, i)
		case '.':
			if inAttr > 0 {
				continue
			}
			name, next := readClassName(selector, i+1)
			if name != "" && !seen[name] {
				seen[name] = true
				classes = append(classes, name)
			}
			i = next - 1
		}
	}
	return classes
}

// readClassName reads an identifier starting at from, resolving backslash
// escapes. It returns the name and the index just past it.
func readClassName(s string, from int) (string, int) {
	var sb strings.Builder
	i := from
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			sb.WriteByte(s[i+1])
			i += 2
		case c == '-' || c == '_' || c >= 0x80 ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			sb.WriteByte(c)
			i++
		default:
			return sb.String(), i
		}
	}
	return sb.String(), i
}

// skipQuoted returns the index of the quote closing the string opened at from.
func skipQuoted(s string, from int) int {
	quote := s[from]
	for i := from + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == quote {
			return i
		}
	}
	return len(s)
}
