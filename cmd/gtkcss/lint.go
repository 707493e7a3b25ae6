package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gtkcss"
)

// errLintFailed signals a failing exit code after issues were reported.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Lint stylesheets for CSS the GTK renderer rejects",
	Long: `Check built stylesheets for leftover custom properties, unresolved var()
references and space-separated color functions.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runLint(args)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "Stylesheet patterns to check (default: build output)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// runLint is shared between `gtkcss lint` and `gtkcss build --lint`.
// Explicit paths take precedence over configured ones.
func runLint(paths []string) error {
	lintConfig := buildLintConfig()
	if len(paths) > 0 {
		lintConfig.ScanPaths = paths
	}

	lintResult, err := gtkcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := gtkcss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := gtkcss.WriteOutput(os.Stdout, lintResult, format, lintConfig); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 || lintResult.TruncatedCount > 0 {
			return errLintFailed
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return errLintFailed
	}

	return nil
}
