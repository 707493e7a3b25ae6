package gtkcss

import (
	"fmt"
	"sort"
	"strings"
)

// corePluginProperties maps a utility framework core plugin (category) to the
// properties its utilities emit. Disabling a category strips those
// properties from the stylesheet.
var corePluginProperties = map[string][]string{
	"visibility":         {"visibility"},
	"display":            {"display"},
	"boxShadow":          {"box-shadow", "--tw-shadow", "--tw-shadow-colored"},
	"boxShadowColor":     {"--tw-shadow-color"},
	"opacity":            {"opacity"},
	"cursor":             {"cursor"},
	"pointerEvents":      {"pointer-events"},
	"userSelect":         {"user-select", "-webkit-user-select"},
	"position":           {"position"},
	"zIndex":             {"z-index"},
	"float":              {"float"},
	"clear":              {"clear"},
	"overflow":           {"overflow", "overflow-x", "overflow-y"},
	"outlineStyle":       {"outline-style"},
	"transitionProperty": {"transition-property", "transition-timing-function", "transition-duration"},
}

// CorePluginNames lists every category the filter understands, sorted.
func CorePluginNames() []string {
	names := make([]string, 0, len(corePluginProperties))
	for name := range corePluginProperties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CorePlugins removes the declarations of disabled utility categories and
// drops rules that end up empty.
type CorePlugins struct {
	disabled map[string]bool // property -> true
	removed  int
}

// NewCorePlugins builds the filter from a category -> enabled map. Categories
// missing from the map stay enabled. Unknown category names are reported as
// warnings and otherwise ignored.
func NewCorePlugins(flags map[string]bool) (*CorePlugins, []string) {
	cp := &CorePlugins{disabled: make(map[string]bool)}
	var warnings []string

	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		props, known := corePluginProperties[name]
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown core plugin %q ignored", name))
			continue
		}
		if flags[name] {
			continue
		}
		for _, prop := range props {
			cp.disabled[prop] = true
		}
	}
	return cp, warnings
}

// PluginName identifies the filter in the pipeline.
func (cp *CorePlugins) PluginName() string { return "core-plugins" }

// Active reports whether any category is disabled.
func (cp *CorePlugins) Active() bool { return len(cp.disabled) > 0 }

// Removed returns how many declarations the filter has deleted so far.
func (cp *CorePlugins) Removed() int { return cp.removed }

// VisitDeclaration deletes decl when its property belongs to a disabled category.
func (cp *CorePlugins) VisitDeclaration(decl *Declaration, _ []*Declaration) {
	if cp.disabled[strings.ToLower(decl.Prop)] {
		decl.Remove()
		cp.removed++
	}
}

// OnceExit drops the rules emptied by the filter.
func (cp *CorePlugins) OnceExit(sheet *Stylesheet) {
	if cp.removed > 0 {
		RemoveEmpty(sheet)
	}
}
