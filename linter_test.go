package gtkcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gtk "github.com/yacobolo/gtkcss/internal/gtkcss"
)

func TestLintLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		linters  []string
		columns  []int
		messages []string
	}{
		{
			name: "clean declaration",
			line: "  color: rgba(59, 130, 246, 0.5);",
		},
		{
			name:     "unresolved reference",
			line:     "  border-color: var(--tw-ring-color);",
			linters:  []string{gtk.LinterUnresolvedVar},
			columns:  []int{21},
			messages: []string{"unresolved custom property reference var(--tw-ring-color)"},
		},
		{
			name:     "leftover custom property",
			line:     "  --tw-ring-inset: inset;",
			linters:  []string{gtk.LinterCustomProperty},
			columns:  []int{3},
			messages: []string{"custom property --tw-ring-inset is not supported by GTK"},
		},
		{
			name:     "custom property in minified block",
			line:     ".a{--x:1;color:red}",
			linters:  []string{gtk.LinterCustomProperty},
			columns:  []int{4},
			messages: []string{"custom property --x is not supported by GTK"},
		},
		{
			name:     "space separated color",
			line:     "  background: rgb(1 2 3) rgb(4, 5, 6);",
			linters:  []string{gtk.LinterModernColor},
			columns:  []int{15},
			messages: []string{`space-separated color "rgb(1 2 3)" is not supported by GTK, use comma-separated notation`},
		},
		{
			name:    "several findings on one line",
			line:    "  --a: rgb(1 2 3 / var(--b));",
			linters: []string{gtk.LinterUnresolvedVar, gtk.LinterCustomProperty, gtk.LinterModernColor},
			columns: []int{24, 3, 8},
		},
		{
			name: "comments are ignored",
			line: "/* --tw-ring: var(--x); rgb(1 2 3) */ a { color: red; }",
		},
		{
			name: "selector with double dash is not a property",
			line: ".btn--primary { color: red; }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := LintLine(tt.line, 4, "gtk.css")
			require.Len(t, issues, len(tt.linters))

			for i, issue := range issues {
				assert.Equal(t, tt.linters[i], issue.FromLinter)
				assert.Equal(t, tt.columns[i], issue.Pos.Column)
				assert.Equal(t, 4, issue.Pos.Line)
				assert.Equal(t, "gtk.css", issue.Pos.Filename)
				assert.Equal(t, []string{tt.line}, issue.SourceLines)
				if tt.messages != nil {
					assert.Equal(t, tt.messages[i], issue.Text)
				}
			}
		})
	}
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{FromLinter: "a"}, {FromLinter: "a"}, {FromLinter: "b"}, {FromLinter: "a"},
	}

	kept, truncated := limitIssues(issues, 0)
	assert.Len(t, kept, 4)
	assert.Equal(t, 0, truncated)

	kept, truncated = limitIssues(issues, 1)
	assert.Equal(t, []Issue{{FromLinter: "a"}, {FromLinter: "b"}}, kept)
	assert.Equal(t, 2, truncated)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gtk.css")
	require.NoError(t, os.WriteFile(path, []byte(`.ring {
  --tw-ring-color: rgb(1 2 3);
  border-color: var(--tw-ring-color);
}
.ok { color: rgb(1, 2, 3); }
`), 0644))

	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(dir, "*.css")}})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 5, result.LinesScanned)
	assert.Len(t, result.Issues, 3)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	assert.Empty(t, result.Warnings)
}

func TestLint_MaxIssuesPerLinter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gtk.css")
	require.NoError(t, os.WriteFile(path, []byte("a { color: var(--a); background: var(--b); border-color: var(--c); }\n"), 0644))

	result, err := Lint(LintConfig{
		ScanPaths:          []string{path},
		MaxIssuesPerLinter: 1,
	})
	require.NoError(t, err)
	assert.Len(t, result.Issues, 1)
	assert.Equal(t, 2, result.TruncatedCount)
	assert.Equal(t, 1, result.ErrorCount)
}

func TestLint_NoFiles(t *testing.T) {
	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(t.TempDir(), "*.css")}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.FilesScanned)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no stylesheets match")
}
