package gtkcss

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

// BuildConfig holds build configuration
type BuildConfig struct {
	Inputs      []string        // Stylesheets to process, glob patterns allowed ("dist/*.css")
	Output      string          // Destination file, "-" for Stdout
	Minify      bool            // Write compact CSS
	Content     []string        // Files scanned for class usage; empty disables pruning
	ThemeExtend map[string]any  // Utility framework theme extension (carried, not applied)
	Plugins     []string        // Extra plugins run before the gtk inliner
	CorePlugins map[string]bool // Category -> enabled; missing categories stay enabled

	Logger *zap.Logger // nil disables logging
	Stdout io.Writer   // Used when Output is "-" (default: os.Stdout)
}

// Build is the main entry point
func Build(ctx context.Context, config BuildConfig) (*BuildResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("build")

	result := &BuildResult{Output: config.Output}
	if result.Output == "" {
		result.Output = "-"
	}

	if len(config.ThemeExtend) > 0 {
		result.Warnings = append(result.Warnings, "theme.extend is not applied by gtkcss; customize the utility framework instead")
	}

	// 1. Resolve plugins up front so configuration errors fail fast
	extra, err := gtk.LookupPlugins(withoutInliner(config.Plugins))
	if err != nil {
		return nil, fmt.Errorf("plugins: %w", err)
	}

	// 2. Find input stylesheets
	files, err := expandGlobPatterns(config.Inputs)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input stylesheets match %v", config.Inputs)
	}
	log.Debug("Found input stylesheets", zap.Int("count", len(files)))

	// 3. Parse all files
	sheet, err := parseFiles(ctx, files, log)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	result.FilesRead = len(files)
	result.Warnings = append(result.Warnings, sheet.Warnings...)
	result.Before = gtk.Count(sheet)

	// 4. Utility stage: core plugins, then content pruning
	corePlugins, warnings := gtk.NewCorePlugins(config.CorePlugins)
	result.Warnings = append(result.Warnings, warnings...)

	utilities := []gtk.Plugin{}
	if corePlugins.Active() {
		utilities = append(utilities, corePlugins)
	}

	var pruner *gtk.Pruner
	if len(config.Content) > 0 {
		scan, err := ScanContent(config.Content)
		if err != nil {
			return nil, fmt.Errorf("content scan failed: %w", err)
		}
		result.ContentFilesScanned = scan.Stats.FilesScanned
		result.Candidates = len(scan.Candidates)
		if scan.Stats.FilesScanned == 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("content patterns %v matched no files, pruning skipped", config.Content))
		} else {
			pruner = gtk.NewPruner(scan.Candidates)
			utilities = append(utilities, pruner)
		}
		log.Debug("Scanned content",
			zap.Int("files", scan.Stats.FilesScanned),
			zap.Int("skipped", scan.Stats.FilesSkipped),
			zap.Int("candidates", len(scan.Candidates)))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	processor := gtk.NewProcessor(log, utilities...)
	processor.Process(sheet)
	result.Plugins = append(result.Plugins, processor.Plugins()...)

	result.DeclarationsDropped = corePlugins.Removed()
	if pruner != nil {
		result.RulesPruned = pruner.Pruned()
	}

	// 5. Extra plugins and the gtk inliner, always last
	beforeInline := gtk.Count(sheet)
	processor = gtk.NewProcessor(log, append(extra, gtk.Inliner{})...)
	processor.Process(sheet)
	result.Plugins = append(result.Plugins, processor.Plugins()...)

	result.After = gtk.Count(sheet)
	result.PropertiesInlined = beforeInline.CustomProperties - result.After.CustomProperties

	log.Debug("Processed stylesheet",
		zap.Int("rules", result.After.Rules),
		zap.Int("declarations", result.After.Declarations),
		zap.Int("inlined", result.PropertiesInlined))

	// 6. Write output
	if err := writeStylesheet(sheet, config); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	return result, nil
}

// parseFiles parses every input and concatenates them in order. Failures
// are collected so one run reports every broken file.
func parseFiles(ctx context.Context, files []string, log *zap.Logger) (*gtk.Stylesheet, error) {
	parser := gtk.NewParser(log)
	combined := &gtk.Stylesheet{Source: files[0]}
	if len(files) > 1 {
		combined.Source = fmt.Sprintf("%s (+%d)", files[0], len(files)-1)
	}

	var errs error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Debug("Parsing", zap.String("file", file))

		sheet, err := parser.ParseFile(file)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		combined.Adopt(sheet)
	}
	if errs != nil {
		return nil, errs
	}
	return combined, nil
}

// writeStylesheet renders the sheet to the configured destination
func writeStylesheet(sheet *gtk.Stylesheet, config BuildConfig) error {
	opts := gtk.PrintOptions{Minify: config.Minify}

	if config.Output == "" || config.Output == "-" {
		w := config.Stdout
		if w == nil {
			w = os.Stdout
		}
		return gtk.Print(w, sheet, opts)
	}

	if dir := filepath.Dir(config.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	// #nosec G306 - stylesheets are meant to be world readable
	if err := os.WriteFile(config.Output, []byte(gtk.Render(sheet, opts)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", config.Output, err)
	}
	return nil
}

// withoutInliner drops "gtk" from a plugin list; the inliner always runs last.
func withoutInliner(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != "gtk" {
			out = append(out, name)
		}
	}
	return out
}
