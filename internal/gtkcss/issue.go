package gtkcss

// Issue represents a single lint finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "unresolved-var"
	Text        string   `json:"Text"`        // "unresolved custom property reference var(--tw-ring-color)"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of CSS with the issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "data/gtk.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Linter names
const (
	LinterUnresolvedVar  = "unresolved-var"
	LinterCustomProperty = "custom-property"
	LinterModernColor    = "modern-color"
)

// Issue message templates
const (
	IssueUnresolvedVar  = "unresolved custom property reference var(%s)"
	IssueCustomProperty = "custom property %s is not supported by GTK"
	IssueModernColor    = "space-separated color %q is not supported by GTK, use comma-separated notation"
)

// LintResult contains the outcome of a lint run
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	LinesScanned   int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to limits
	Warnings       []string
}

// CountBySeverity recomputes ErrorCount and WarningCount from Issues.
func (r *LintResult) CountBySeverity() {
	r.ErrorCount, r.WarningCount = 0, 0
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			r.ErrorCount++
		case SeverityWarning:
			r.WarningCount++
		}
	}
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
