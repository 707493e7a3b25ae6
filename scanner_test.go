package gtkcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCandidates(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{
			name:     "single class",
			src:      `box.AddCSSClass("mx-2")`,
			expected: []string{"mx-2"},
		},
		{
			name:     "several classes in one literal",
			src:      `label.SetCSSClasses([]string{"text-sm font-bold"})`,
			expected: []string{"text-sm", "font-bold"},
		},
		{
			name:     "raw string literal",
			src:      "const classes = `p-4\n\trounded-lg`",
			expected: []string{"p-4", "rounded-lg"},
		},
		{
			name:     "escaped quote stays inside the literal",
			src:      `fmt.Sprintf("a \"b\" c")`,
			expected: []string{"a", `\"b\"`, "c"},
		},
		{
			name:     "literals inside comments count too",
			src:      `hidden := true // "opacity-50"`,
			expected: []string{"opacity-50"},
		},
		{
			name:     "no literals",
			src:      `x := y + 1`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCandidates(tt.src)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestShouldSkipFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "absolute path is always scanned",
			path:     "/tmp/project/main.go",
			expected: false,
		},
		{
			name:     "sibling project is always scanned",
			path:     "../nostr-gtk/widget.go",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldSkipFile(tt.path)
			require.Equal(t, tt.expected, got, "shouldSkipFile(%q)", tt.path)
		})
	}
}

func TestScanContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "widgets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"),
		[]byte(`package main

func setup() {
	box.AddCSSClass("mx-2")
	label.AddCSSClass("text-red-500 font-bold")
}
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets", "card.go"),
		[]byte("package widgets\n\nconst cardClass = `rounded-lg p-4`\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"),
		[]byte(`"ignored-class"`), 0644))

	scan, err := ScanContent([]string{filepath.Join(dir, "**", "*.go")})
	require.NoError(t, err)

	assert.Equal(t, 2, scan.Stats.FilesScanned)
	assert.Len(t, scan.Files, 2)
	for _, class := range []string{"mx-2", "text-red-500", "font-bold", "rounded-lg", "p-4"} {
		assert.True(t, scan.Has(class), "expected candidate %q", class)
	}
	assert.False(t, scan.Has("ignored-class"))
	assert.False(t, scan.Has("setup"))
	assert.False(t, scan.Has("main"))
}

func TestExpandGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.css", "b.css", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("a{}"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.css"), 0755))

	t.Run("deduplicates overlapping patterns", func(t *testing.T) {
		files, err := expandGlobPatterns([]string{
			filepath.Join(dir, "a.css"),
			filepath.Join(dir, "*.css"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.css"),
			filepath.Join(dir, "b.css"),
		}, files)
	})

	t.Run("no match is not an error", func(t *testing.T) {
		files, err := expandGlobPatterns([]string{filepath.Join(dir, "*.scss")})
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestRecursiveGlobstar(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{"./**.go", "./**/*.go"},
		{"../nostr-gtk/**.go", "../nostr-gtk/**/*.go"},
		{"./**/*.go", "./**/*.go"},
		{"src/*.css", "src/*.css"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.expected), recursiveGlobstar(filepath.FromSlash(tt.pattern)))
		})
	}
}

func TestExpandGlobPatterns_GlobstarInSegment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "widgets"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widgets", "box.go"), []byte("package widgets"), 0644))

	files, err := expandGlobPatterns([]string{filepath.Join(dir, "**.go")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "widgets", "box.go"),
	}, files)
}
