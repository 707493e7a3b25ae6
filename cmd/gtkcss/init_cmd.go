package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .gtkcss.yaml config file",
	Long:  `Create a .gtkcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		// #nosec G306 - config file is meant to be shared
		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# gtkcss configuration
# Docs: https://github.com/yacobolo/gtkcss

verbose: false

# Files scanned for class names; rules using none of them are pruned.
# Remove to keep every rule.
content:
  - "./**/*.go"

theme:
  extend: {}

# Extra plugins run before the gtk inliner: strip-comments
plugins: []

# Utility categories GTK cannot render
corePlugins:
  visibility: false
  display: false
  boxShadow: false
  boxShadowColor: false

# Build settings
build:
  input:
    - "style.css"
  output: "gtk.css"        # - for stdout
  minify: false

# Linting settings
lint:
  paths:
    - "gtk.css"
  strict: false
  output-format: issues    # issues | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
