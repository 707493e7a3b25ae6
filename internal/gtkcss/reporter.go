package gtkcss

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// linterOrder lists the linters from most to least severe. Summaries follow
// this order; unknown linters sort after it by name.
var linterOrder = []string{LinterUnresolvedVar, LinterCustomProperty, LinterModernColor}

// linterHints tells the reader how to fix each kind of issue.
var linterHints = map[string]string{
	LinterUnresolvedVar:  "declare the property in the same rule or give var() a fallback",
	LinterCustomProperty: "run gtkcss build so custom properties are inlined",
	LinterModernColor:    "values with several colors keep all but the first; write them as rgb(r, g, b)",
}

// ReporterOptions controls issue formatting
type ReporterOptions struct {
	UseColors       bool // Force color output
	PrintLines      bool // Show source lines with issues
	PrintLinterName bool // Show (linter) suffix
}

// Reporter prints lint issues the way golangci-lint does: one location line,
// the offending CSS line and an underline below the match.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors reports whether terminal colors are enabled. force wins,
// then NO_COLOR, then FORCE_COLOR and CI hints, then a TTY on stdout.
func ShouldUseColors(force bool) bool {
	switch {
	case force:
		return true
	case os.Getenv("NO_COLOR") != "":
		return false
	case os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	info, err := os.Stdout.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// PrintIssues prints issues ordered by file, line and column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := make([]Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	var suffix string
	if r.printLinterName {
		suffix = " (" + issue.FromLinter + ")"
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, suffix, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
	marker := underline(issue.SourceLines[0], issue.Pos.Column)
	style := StyleYellow
	if issue.Severity == SeverityError {
		style = StyleRed
	}
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(style, marker, r.useColors))
}

// underline returns padding up to column (1-based) followed by "^" and a
// "~" for every further byte of the CSS token starting there. Tabs in the
// padding are kept so the marker lines up under tab-indented source.
func underline(line string, column int) string {
	if column <= 0 {
		return "^"
	}
	start := min(column-1, len(line))

	var sb strings.Builder
	for _, ch := range line[:start] {
		if ch == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('^')
	if width := tokenWidth(line[start:]); width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

// tokenWidth measures the CSS token at the start of s: a function call up to
// its closing parenthesis, or a name up to the next delimiter.
func tokenWidth(s string) int {
	name := strings.IndexAny(s, " \t;:,()")
	if name < 0 {
		return len(s)
	}
	if s[name] != '(' {
		return name
	}
	if end := closingParen(s, name+1); end >= 0 {
		return end + 1
	}
	return len(s)
}

// PrintSummary prints the issue totals and one line per linter with a hint.
func (r *Reporter) PrintSummary(result LintResult) {
	result.CountBySeverity()

	var parts []string
	if result.ErrorCount > 0 && result.WarningCount > 0 {
		parts = append(parts,
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		parts = append(parts, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	header := pluralizeCount(len(result.Issues), "issue", "issues")
	if len(parts) > 0 {
		header += " (" + strings.Join(parts, ", ") + ")"
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	counts := make(map[string]int)
	for _, issue := range result.Issues {
		counts[issue.FromLinter]++
	}
	for _, linter := range sortLinters(counts) {
		line := fmt.Sprintf("* %s: %d", linter, counts[linter])
		if hint, ok := linterHints[linter]; ok {
			line += RenderStyle(StyleGray, " ("+hint+")", r.useColors)
		}
		fmt.Fprintln(r.w, line)
	}
}

// sortLinters returns the linters in counts, most severe first.
func sortLinters(counts map[string]int) []string {
	rank := func(linter string) int {
		for i, known := range linterOrder {
			if known == linter {
				return i
			}
		}
		return len(linterOrder)
	}

	linters := make([]string, 0, len(counts))
	for linter := range counts {
		linters = append(linters, linter)
	}
	sort.Slice(linters, func(i, j int) bool {
		ri, rj := rank(linters[i]), rank(linters[j])
		if ri != rj {
			return ri < rj
		}
		return linters[i] < linters[j]
	})
	return linters
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
