package stencil

import (
	"io/fs"
	"path/filepath"
)

// countFiles walks the root directory and counts regular files, skipping
// anything matched by the ignore patterns. The count is informational and is
// computed independently of the validation checks, so it is available even
// when the settings document fails to parse.
//
// Ignore patterns are matched against the slash-separated path relative to
// root and against each path's base name. A pattern matching a directory
// prunes the whole subtree.
func countFiles(root string, ignore []string) int {
	count := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if matchesAny(filepath.ToSlash(rel), d.Name(), ignore) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	return count
}

func matchesAny(rel, base string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := filepath.Match(p, rel); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
