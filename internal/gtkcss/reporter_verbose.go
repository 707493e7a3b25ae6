package gtkcss

import (
	"fmt"
	"io"
	"strings"
)

// VerboseReporter prints build and lint statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintBuildStatistics outputs what the build did to the stylesheet
func (r *VerboseReporter) PrintBuildStatistics(result BuildResult) {
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Built "+result.Output, r.useColors))
	fmt.Fprintf(r.w, "  Files read:            %d\n", result.FilesRead)
	if result.ContentFilesScanned > 0 {
		fmt.Fprintf(r.w, "  Content files scanned: %d (%d candidates)\n", result.ContentFilesScanned, result.Candidates)
	}
	fmt.Fprintf(r.w, "  Rules:                 %d -> %d\n", result.Before.Rules, result.After.Rules)
	fmt.Fprintf(r.w, "  Declarations:          %d -> %d\n", result.Before.Declarations, result.After.Declarations)
	fmt.Fprintf(r.w, "  Properties inlined:    %d\n", result.PropertiesInlined)
	if result.RulesPruned > 0 {
		fmt.Fprintf(r.w, "  Rules pruned:          %d\n", result.RulesPruned)
	}
	if result.DeclarationsDropped > 0 {
		fmt.Fprintf(r.w, "  Core plugin drops:     %d\n", result.DeclarationsDropped)
	}
	if len(result.Plugins) > 0 {
		fmt.Fprintf(r.w, "  Plugins:               %s\n", strings.Join(result.Plugins, " -> "))
	}
}

// PrintLintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintLintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "GTK CSS Lint Statistics", r.useColors))
	fmt.Fprintln(r.w, "-----------------------")

	fmt.Fprintf(r.w, "Files Scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Lines Scanned: %d\n", result.LinesScanned)
	errors := fmt.Sprintf("Errors:        %d", result.ErrorCount)
	if result.ErrorCount > 0 {
		errors = RenderStyle(StyleRed, errors, r.useColors)
	}
	fmt.Fprintln(r.w, errors)
	fmt.Fprintf(r.w, "Warnings:      %d\n", result.WarningCount)

	if len(result.Issues) == 0 && result.FilesScanned > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "All stylesheets are GTK compatible", r.useColors))
	}
}

// PrintWarnings shows non-fatal problems
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
