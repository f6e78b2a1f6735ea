// Package finder selects the source files that go into the print-out.
package finder

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions is used when no extension list is configured.
var DefaultExtensions = []string{"py"}

// Finder walks directory trees and returns the absolute paths of matching
// source files.
//
// Enumeration follows os.ReadDir, which yields entries sorted by name on
// every supported platform; sibling order is therefore stable within and
// across runs, but callers should not depend on it.
type Finder struct {
	exts      []string
	gitignore bool
	ignore    *IgnoreMatcher
}

// New returns a Finder matching file names that end with one of exts.
// Extensions are plain suffixes, not dot-prefixed patterns. An empty list
// falls back to DefaultExtensions.
func New(exts []string) *Finder {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	return &Finder{exts: exts}
}

// WithIgnore makes the Finder skip entries matched by m. A nil matcher
// disables the filter.
func (f *Finder) WithIgnore(m *IgnoreMatcher) *Finder {
	f.ignore = m
	return f
}

// WithGitignore makes Collect compile and honor the .gitignore at each
// walked root.
func (f *Finder) WithGitignore(enabled bool) *Finder {
	f.gitignore = enabled
	return f
}

// Find recursively collects matching files under dir.
//
// Entries whose name starts with "." are skipped. Excludes are matched as
// raw string prefixes against absolute paths, without checking for a
// separator boundary after the prefix: excluding /a/foo also excludes
// /a/foobar. Exclusion entries must not carry a trailing separator; see
// TrimSlash.
func (f *Finder) Find(dir string, excludes []string) ([]string, error) {
	return f.walk(dir, excludes, f.ignore)
}

func (f *Finder) walk(dir string, excludes []string, ignore *IgnoreMatcher) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		absPath, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", filepath.Join(dir, name), err)
		}
		if isExcluded(absPath, excludes) {
			slog.Debug("Skipping excluded path.", "path", absPath)
			continue
		}
		if ignore.Match(absPath) {
			slog.Debug("Skipping gitignored path.", "path", absPath)
			continue
		}
		if entry.IsDir() {
			sub, err := f.walk(absPath, excludes, ignore)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}
		if f.isSource(name) {
			files = append(files, absPath)
		}
	}
	slog.Debug("Scanned directory.", "dir", dir, "files", len(files))
	return files, nil
}

// Collect runs Find over each dir in order and concatenates the results.
// When entryFile is non-empty it is moved (or inserted) to the front of
// the list, appearing exactly once.
func (f *Finder) Collect(dirs []string, entryFile string, excludes []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		// A per-root .gitignore takes precedence over a matcher
		// installed with WithIgnore, for that root only.
		matcher := f.ignore
		if f.gitignore {
			compiled, err := NewIgnoreMatcher(dir)
			if err != nil {
				return nil, err
			}
			matcher = compiled
		}
		found, err := f.walk(dir, excludes, matcher)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if entryFile != "" {
		entryPath, err := filepath.Abs(entryFile)
		if err != nil {
			return nil, fmt.Errorf("resolving entry file %s: %w", entryFile, err)
		}
		kept := files[:0]
		for _, file := range files {
			if file != entryPath {
				kept = append(kept, file)
			}
		}
		files = append([]string{entryPath}, kept...)
	}
	return files, nil
}

func (f *Finder) isSource(name string) bool {
	for _, ext := range f.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func isExcluded(absPath string, excludes []string) bool {
	for _, exclude := range excludes {
		if strings.HasPrefix(absPath, exclude) {
			return true
		}
	}
	return false
}

// TrimSlash strips trailing path separators from each entry. Exclusion
// prefixes must be normalized this way or a directory exclude like
// "/a/foo/" would never match the walked path "/a/foo".
func TrimSlash(paths []string) []string {
	trimmed := make([]string, 0, len(paths))
	for _, p := range paths {
		for len(p) > 1 && (strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator))) {
			p = p[:len(p)-1]
		}
		trimmed = append(trimmed, p)
	}
	return trimmed
}
