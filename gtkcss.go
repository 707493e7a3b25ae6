// Package gtkcss turns utility-framework CSS into stylesheets the GTK
// renderer accepts, and lints the result.
//
// GTK CSS has no runtime support for custom properties and only understands
// comma-separated color functions. gtkcss resolves every custom property at
// build time and rewrites rgb() colors into the legacy notation.
//
// # Build
//
// Process the stylesheet emitted by the utility framework:
//
//	result, err := gtkcss.Build(ctx, gtkcss.BuildConfig{
//		Inputs:  []string{"style.css"},
//		Output:  "gtk.css",
//		Content: []string{"./**/*.go"},
//		CorePlugins: map[string]bool{
//			"visibility": false,
//			"display":    false,
//		},
//	})
//
// The pipeline runs the core-plugin filter, content pruning, any extra
// plugins named in BuildConfig.Plugins, and finally the gtk inliner.
//
// # Linting
//
// Check built stylesheets for constructs GTK rejects:
//
//	result, err := gtkcss.Lint(gtkcss.LintConfig{
//		ScanPaths: []string{"data/**/*.css"},
//	})
//
// # CLI Tool
//
// gtkcss also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/gtkcss/cmd/gtkcss@latest
package gtkcss

import gtk "github.com/yacobolo/gtkcss/internal/gtkcss"

// Re-exported result and issue types
type (
	BuildResult  = gtk.BuildResult
	LintResult   = gtk.LintResult
	Issue        = gtk.Issue
	IssuePos     = gtk.IssuePos
	OutputFormat = gtk.OutputFormat
	Stats        = gtk.Stats
)

// Output formats
const (
	OutputIssues = gtk.OutputIssues
	OutputFull   = gtk.OutputFull
	OutputJSON   = gtk.OutputJSON
)

// CorePluginNames lists the utility categories the core-plugin filter knows.
func CorePluginNames() []string {
	return gtk.CorePluginNames()
}

// PluginNames lists the plugins that can be named in BuildConfig.Plugins.
func PluginNames() []string {
	return gtk.PluginNames()
}

// ShouldUseColors reports whether terminal output should be colored.
func ShouldUseColors(force bool) bool {
	return gtk.ShouldUseColors(force)
}
