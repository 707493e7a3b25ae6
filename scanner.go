package gtkcss

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to .gitignore
}

// ContentScan is the set of class name candidates found in content files
type ContentScan struct {
	Candidates map[string]struct{}
	Files      []string
	Stats      ScanStats
}

// Has reports whether name was seen in any content file.
func (c *ContentScan) Has(name string) bool {
	_, ok := c.Candidates[name]
	return ok
}

var (
	// Go string literals: "..." and `...`
	stringLiteralPattern = regexp.MustCompile("\"(?:[^\"\\\\\\n]|\\\\.)*\"|`[^`]*`")

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a content file should be excluded from scanning.
// Only relative paths (paths within the project) are checked against .gitignore;
// absolute paths and paths outside the project are always scanned.
func shouldSkipFile(path string) bool {
	if filepath.IsAbs(path) || strings.HasPrefix(filepath.ToSlash(path), "../") {
		return false
	}
	gi := loadGitIgnore()
	return gi != nil && gi.MatchesPath(path)
}

// ScanContent reads every file matching patterns and collects the words
// found inside its string literals as class name candidates.
func ScanContent(patterns []string) (*ContentScan, error) {
	files, stats, err := expandGlobPatternsWithStats(patterns, true)
	if err != nil {
		return nil, err
	}

	scan := &ContentScan{
		Candidates: make(map[string]struct{}),
		Files:      files,
		Stats:      stats,
	}

	for _, file := range files {
		// #nosec G304 - path comes from trusted configuration
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		for _, candidate := range ExtractCandidates(string(content)) {
			scan.Candidates[candidate] = struct{}{}
		}
	}

	return scan, nil
}

// ExtractCandidates returns the whitespace-separated words of every string
// literal in src, in order of appearance (duplicates included).
func ExtractCandidates(src string) []string {
	var candidates []string
	for _, literal := range stringLiteralPattern.FindAllString(src, -1) {
		body := literal[1 : len(literal)-1]
		candidates = append(candidates, strings.Fields(body)...)
	}
	return candidates
}

// recursiveGlobstar rewrites a "**" sharing a path segment with other text
// ("./**.go") into a recursive match ("./**/*.go"). doublestar treats such a
// segment like a single "*", which would only see the top directory.
func recursiveGlobstar(pattern string) string {
	segments := strings.Split(filepath.ToSlash(pattern), "/")
	for i, seg := range segments {
		if seg != "**" && strings.Contains(seg, "**") {
			segments[i] = "**/" + strings.ReplaceAll(seg, "**", "*")
		}
	}
	return filepath.FromSlash(strings.Join(segments, "/"))
}

// expandGlobPatterns expands glob patterns to actual file paths
func expandGlobPatterns(patterns []string) ([]string, error) {
	files, _, err := expandGlobPatternsWithStats(patterns, false)
	return files, err
}

// expandGlobPatternsWithStats expands globs in pattern order, dropping
// duplicates and directories, and tracks statistics.
func expandGlobPatternsWithStats(patterns []string, applyIgnore bool) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		// "./**/*.go" and "**/*.go" are the same pattern
		matches, err := doublestar.FilepathGlob(filepath.Clean(recursiveGlobstar(pattern)))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if applyIgnore && shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}
