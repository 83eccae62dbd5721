// Package discovery implements the Source Reader collaborator: finding
// which files belong to the project and reading their contents before
// any syntax recognition happens. It owns no domain semantics — the
// extractor has no idea files, globs, or ignore rules exist.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceFile is one file handed to the extractor: its path, for
// diagnostics, and its raw contents.
type SourceFile struct {
	Path     string
	Contents string
}

// FindSources expands each root in sourcePaths and returns every
// matching .swift file, sorted by path for a reproducible generation
// run. A root ending in "/**" expands to every directory named "Sources"
// beneath the prefix; any other root containing "**" is taken as a glob,
// with "*.swift" appended unless it already ends in ".swift"; anything
// else is treated as a directory and a "Sources" tail is appended per
// convention before walking.
func FindSources(sourcePaths []string, ignorePatterns []IgnorePattern) ([]SourceFile, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, root := range sourcePaths {
		matches, err := expandRoot(root)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}

	sort.Strings(paths)

	var files []SourceFile
	for _, p := range paths {
		if IsIgnored(filepath.ToSlash(p), ignorePatterns) {
			continue
		}
		contents, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, SourceFile{Path: p, Contents: string(contents)})
	}

	return files, nil
}

func expandRoot(root string) ([]string, error) {
	pattern := root
	switch {
	case strings.HasSuffix(pattern, "/**"):
		pattern = filepath.Join(strings.TrimSuffix(pattern, "/**"), "**", "Sources", "**", "*.swift")
	case !strings.Contains(pattern, "**"):
		pattern = filepath.Join(pattern, "Sources", "**", "*.swift")
	case !strings.HasSuffix(pattern, ".swift"):
		pattern = filepath.Join(pattern, "*.swift")
	}

	return doublestar.FilepathGlob(pattern)
}
