package discovery

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnorePattern is a single non-blank, non-comment line from an
// .arrowgenignore file, matched with the same glob semantics used for
// --package-sources-path expansion.
type IgnorePattern string

// LoadIgnoreFile reads patterns from path. A missing file is not an
// error: projects without an .arrowgenignore simply exclude nothing.
func LoadIgnoreFile(path string) ([]IgnorePattern, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var patterns []IgnorePattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, IgnorePattern(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// IsIgnored reports whether relPath (slash-separated, relative to the
// ignore file's directory) matches any of patterns.
func IsIgnored(relPath string, patterns []IgnorePattern) bool {
	relPath = filepath.ToSlash(relPath)
	for _, p := range patterns {
		if matchIgnorePattern(string(p), relPath) {
			return true
		}
	}
	return false
}

func matchIgnorePattern(pattern, relPath string) bool {
	pattern = strings.TrimSuffix(pattern, "/")
	if ok, _ := doublestar.Match(pattern, relPath); ok {
		return true
	}
	if ok, _ := doublestar.Match(pattern+"/**", relPath); ok {
		return true
	}
	// A bare name with no glob metacharacters excludes any file or
	// directory with that name at any depth.
	if !strings.ContainsAny(pattern, "*?[") {
		for _, segment := range strings.Split(relPath, "/") {
			if segment == pattern {
				return true
			}
		}
	}
	return false
}
