package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/gtkcss"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Process utility CSS into a GTK stylesheet",
	Long: `Parse the input stylesheets, drop disabled utility categories and unused
classes, inline every custom property and write the GTK stylesheet.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	addBuildFlags(buildCmd)
	buildCmd.Flags().Bool("lint", false, "Run linter on the output after building")
}

// addBuildFlags registers the build flags; the root command shares them
// because build is its default action.
func addBuildFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceP("input", "i", nil, "Input stylesheets, glob patterns allowed (default style.css)")
	f.StringP("output", "o", "", "Output file, - for stdout (default -)")
	f.Bool("minify", false, "Write compact CSS")
	f.StringSlice("content", nil, "Files scanned for class usage; unused rules are pruned")
	f.StringSlice("plugins", nil, "Extra plugins run before the gtk inliner")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)
	log, err := newLogger(verbose, quiet)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := gtkcss.Build(cmd.Context(), config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if !quiet {
		// Keep stdout clean when the stylesheet itself goes there
		var w io.Writer = os.Stdout
		if result.Output == "-" {
			w = os.Stderr
		}
		gtkcss.WriteBuildSummary(w, result, getBoolWithFallback("color", "color", false))
	}

	// Run lint after build if --lint flag set
	if lint, _ := cmd.Flags().GetBool("lint"); lint {
		if result.Output == "-" {
			return fmt.Errorf("--lint needs --output to name a file")
		}
		return runLint([]string{result.Output})
	}

	return nil
}
