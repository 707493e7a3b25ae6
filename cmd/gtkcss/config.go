package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/gtkcss"
)

var k = koanf.New(".")

const defaultConfigPath = ".gtkcss.yaml"

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Without a koanf instance posflag
	// only loads flags the user actually set, so flag defaults never
	// shadow values from the config file.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (GTKCSS_* prefix)
	if err := k.Load(env.Provider("GTKCSS_", ".", func(s string) string {
		// GTKCSS_BUILD_OUTPUT -> build.output
		// GTKCSS_LINT_STRICT -> lint.strict
		// GTKCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GTKCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the library's BuildConfig struct from koanf state.
func buildBuildConfig() gtkcss.BuildConfig {
	config := gtkcss.BuildConfig{
		Output:      getStringWithFallback("output", "build.output", "-"),
		Minify:      getBoolWithFallback("minify", "build.minify", false),
		Plugins:     k.Strings("plugins"),
		ThemeExtend: themeExtend(),
		CorePlugins: corePlugins(),
	}

	// Handle inputs: check flag key first, then config key
	if inputs := k.Strings("input"); len(inputs) > 0 {
		config.Inputs = inputs
	} else if inputs := k.Strings("build.input"); len(inputs) > 0 {
		config.Inputs = inputs
	} else {
		config.Inputs = []string{"style.css"}
	}

	// Content is shared between flag and config file; missing means no pruning
	config.Content = k.Strings("content")

	return config
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() gtkcss.LintConfig {
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else if output := getStringWithFallback("output", "build.output", "-"); output != "-" {
		// Lint what build writes
		scanPaths = []string{output}
	} else {
		scanPaths = []string{"**/*.gtk.css"}
	}

	return gtkcss.LintConfig{
		ScanPaths:          scanPaths,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// corePlugins reads the category -> enabled map. Environment variables are
// lowercased by the env provider, so both spellings are merged.
func corePlugins() map[string]bool {
	flags := make(map[string]bool)
	for _, key := range []string{"corePlugins", "coreplugins"} {
		if !k.Exists(key) {
			continue
		}
		for name, enabled := range k.BoolMap(key) {
			flags[canonicalCorePlugin(name)] = enabled
		}
	}
	return flags
}

// canonicalCorePlugin restores the camel case of known category names.
func canonicalCorePlugin(name string) string {
	for _, known := range gtkcss.CorePluginNames() {
		if strings.EqualFold(known, name) {
			return known
		}
	}
	return name
}

// themeExtend returns theme.extend as a map, or nil when unset.
func themeExtend() map[string]any {
	if !k.Exists("theme.extend") {
		return nil
	}
	extend := k.Cut("theme.extend").Raw()
	if len(extend) == 0 {
		return nil
	}
	return extend
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
