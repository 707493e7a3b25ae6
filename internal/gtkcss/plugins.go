package gtkcss

import (
	"fmt"
	"sort"
)

// StripComments deletes every comment from the stylesheet.
type StripComments struct{}

// PluginName identifies the plugin in the pipeline.
func (StripComments) PluginName() string { return "strip-comments" }

// Once removes all comments at any depth.
func (StripComments) Once(sheet *Stylesheet) {
	WalkNodes(sheet, func(n Node) {
		if c, ok := n.(*Comment); ok {
			c.Remove()
		}
	})
}

// registry holds the plugins that can be enabled by name from configuration.
var registry = map[string]func() Plugin{
	"gtk":            func() Plugin { return Inliner{} },
	"strip-comments": func() Plugin { return StripComments{} },
}

// PluginNames lists the registered plugin names, sorted.
func PluginNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPlugins resolves plugin names to fresh plugin instances, in order.
func LookupPlugins(names []string) ([]Plugin, error) {
	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("unknown plugin %q (available: %v)", name, PluginNames())
		}
		plugins = append(plugins, factory())
	}
	return plugins, nil
}
