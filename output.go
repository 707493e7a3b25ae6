package gtkcss

import (
	"fmt"
	"io"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

// DetermineOutputFormat selects the appropriate output format based on flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		// Invalid or empty format: golangci-lint style issues
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	opts := gtk.ReporterOptions{
		UseColors:       config.UseColors,
		PrintLines:      config.PrintIssuedLines,
		PrintLinterName: config.PrintLinterName,
	}

	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	case OutputFull:
		// Everything: issues + statistics + warnings
		reporter := gtk.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := gtk.NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintLintStatistics(*result)
		verboseReporter.PrintWarnings(result.Warnings)

	default:
		// Issues only (golangci-lint format)
		reporter := gtk.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}

	return nil
}

// WriteBuildSummary prints the human readable build report
func WriteBuildSummary(w io.Writer, result *BuildResult, useColors bool) {
	reporter := gtk.NewVerboseReporter(w, gtk.ShouldUseColors(useColors))
	reporter.PrintBuildStatistics(*result)
	reporter.PrintWarnings(result.Warnings)
}
