package gtkcss

import (
	"encoding/json"
	"io"
	"time"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int            `json:"total_issues"`
	Errors       int            `json:"errors"`
	Warnings     int            `json:"warnings"`
	Truncated    int            `json:"truncated"`
	FilesScanned int            `json:"files_scanned"`
	LinesScanned int            `json:"lines_scanned"`
	ByLinter     map[string]int `json:"by_linter"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	var errors, warnings int
	byLinter := make(map[string]int)
	jsonIssues := make([]JSONIssue, len(result.Issues))

	for i, issue := range result.Issues {
		switch issue.Severity {
		case gtk.SeverityError:
			errors++
		case gtk.SeverityWarning:
			warnings++
		}
		byLinter[issue.FromLinter]++

		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
			LinesScanned: result.LinesScanned,
			ByLinter:     byLinter,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
