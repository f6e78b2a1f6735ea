package finder

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreMatcher filters walked paths against the .gitignore at a walk
// root. A nil matcher, or a root without a .gitignore, matches nothing.
type IgnoreMatcher struct {
	matcher gitignore.IgnoreParser
	root    string
}

// NewIgnoreMatcher compiles root/.gitignore. The file being absent is not
// an error; the returned matcher just never matches.
func NewIgnoreMatcher(root string) (*IgnoreMatcher, error) {
	gitignorePath := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No .gitignore file found at root.", "directory", root)
			return &IgnoreMatcher{root: root}, nil
		}
		return nil, fmt.Errorf("stating %s: %w", gitignorePath, err)
	}
	matcher, err := gitignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", gitignorePath, err)
	}
	slog.Debug("Compiled gitignore file.", "path", gitignorePath)
	return &IgnoreMatcher{matcher: matcher, root: root}, nil
}

// Match reports whether absPath is ignored. Paths outside the matcher's
// root never match.
func (g *IgnoreMatcher) Match(absPath string) bool {
	if g == nil || g.matcher == nil {
		return false
	}
	rel, err := filepath.Rel(g.root, absPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return false
	}
	return g.matcher.MatchesPath(filepath.ToSlash(rel))
}
