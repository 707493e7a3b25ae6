package gtkcss

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths []string // Stylesheets to check (e.g., "data/**/*.css")
	Strict    bool     // Fail on warnings too

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (linter) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)
}

// lintRule is a line-level check for CSS that GTK cannot load
type lintRule struct {
	linter   string
	severity string
	message  string
	regex    *regexp.Regexp
}

var lintRules = []lintRule{
	{
		linter:   gtk.LinterUnresolvedVar,
		severity: gtk.SeverityError,
		message:  gtk.IssueUnresolvedVar,
		regex:    regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`),
	},
	{
		linter:   gtk.LinterCustomProperty,
		severity: gtk.SeverityError,
		message:  gtk.IssueCustomProperty,
		regex:    regexp.MustCompile(`(?:^|[{;\s])(--[A-Za-z0-9_-]+)\s*:`),
	},
	{
		linter:   gtk.LinterModernColor,
		severity: gtk.SeverityWarning,
		message:  gtk.IssueModernColor,
		regex:    regexp.MustCompile(`rgba?\(\s*\d+(?:\.\d+)?%?\s+\d+(?:\.\d+)?%?\s+\d+(?:\.\d+)?%?[^)]*\)`),
	},
}

// commentPattern matches single-line /* ... */ comments
var commentPattern = regexp.MustCompile(`/\*.*?\*/`)

// Lint checks built stylesheets for constructs the GTK renderer rejects
func Lint(config LintConfig) (*LintResult, error) {
	files, err := expandGlobPatterns(config.ScanPaths)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &LintResult{}
	if len(files) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no stylesheets match %v", config.ScanPaths))
	}

	for _, file := range files {
		issues, lines, err := lintFile(file)
		if err != nil {
			return nil, fmt.Errorf("lint %s: %w", file, err)
		}
		result.FilesScanned++
		result.LinesScanned += lines
		result.Issues = append(result.Issues, issues...)
	}

	result.Issues, result.TruncatedCount = limitIssues(result.Issues, config.MaxIssuesPerLinter)
	result.CountBySeverity()

	return result, nil
}

// lintFile checks one stylesheet line by line
func lintFile(path string) ([]Issue, int, error) {
	// #nosec G304 - path comes from trusted configuration
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	var issues []Issue
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) // minified CSS is one long line
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		issues = append(issues, LintLine(line, lineNum, path)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, lineNum, err
	}

	return issues, lineNum, nil
}

// LintLine runs every lint rule against a single line of CSS
func LintLine(line string, lineNum int, filename string) []Issue {
	// Blank out comments so they keep their width but never match
	code := commentPattern.ReplaceAllStringFunc(line, func(c string) string {
		return strings.Repeat(" ", len(c))
	})

	var issues []Issue
	for _, rule := range lintRules {
		for _, m := range rule.regex.FindAllStringSubmatchIndex(code, -1) {
			// Report the capture group when the rule has one
			start, end := m[0], m[1]
			if len(m) >= 4 && m[2] >= 0 {
				start, end = m[2], m[3]
			}
			issues = append(issues, Issue{
				FromLinter:  rule.linter,
				Text:        fmt.Sprintf(rule.message, code[start:end]),
				Severity:    rule.severity,
				SourceLines: []string{line},
				Pos: IssuePos{
					Filename: filename,
					Line:     lineNum,
					Column:   start + 1,
				},
			})
		}
	}
	return issues
}

// limitIssues keeps at most limit issues per linter (0 = unlimited)
func limitIssues(issues []Issue, limit int) ([]Issue, int) {
	if limit <= 0 {
		return issues, 0
	}
	counts := make(map[string]int)
	kept := make([]Issue, 0, len(issues))
	truncated := 0
	for _, issue := range issues {
		if counts[issue.FromLinter] >= limit {
			truncated++
			continue
		}
		counts[issue.FromLinter]++
		kept = append(kept, issue)
	}
	return kept, truncated
}
