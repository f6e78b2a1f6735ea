package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedocx/internal/scanner"
)

func TestPairsZipsInOrder(t *testing.T) {
	pairs := Pairs([]string{"<!--", "/*"}, []string{"-->", "*/"})
	assert.Equal(t, []scanner.Pair{
		{Start: "<!--", End: "-->"},
		{Start: "/*", End: "*/"},
	}, pairs)
}

func TestPairsMismatchFallsBack(t *testing.T) {
	assert.Equal(t, DefaultPairs(), Pairs([]string{"/*"}, nil))
	assert.Equal(t, DefaultPairs(), Pairs([]string{"a", "b"}, []string{"c"}))
	assert.Equal(t, DefaultPairs(), Pairs(nil, nil))
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
include_extensions = ["go", "py"]
comment_prefixes = ["--"]
font_size = 12.0
chars_in_line = 40
paragraph_alignment = "left"
use_gitignore = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "py"}, cfg.IncludeExtensions)
	assert.Equal(t, []string{"--"}, cfg.CommentPrefixes)
	assert.Equal(t, 12.0, *cfg.FontSize)
	assert.Equal(t, 40, *cfg.CharsInLine)
	assert.Equal(t, "left", *cfg.Alignment)
	assert.True(t, *cfg.UseGitignore)

	// Unset keys keep their defaults.
	assert.Equal(t, "宋体", *cfg.FontName)
	assert.Equal(t, 2.3, *cfg.SpaceAfter)
	assert.Equal(t, "软件著作权程序鉴别材料生成器V1.0", *cfg.Title)
}

func TestLoadDoesNotMutateDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
include_extensions = ["go"]
chars_in_line = 99
font_size = 16.0
use_gitignore = true
title = "overridden"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 99, *cfg.CharsInLine)
	require.True(t, *cfg.UseGitignore)

	// The loaded config must be backed by its own pointers; the shared
	// defaults stay untouched.
	assert.Equal(t, 30, *Default.CharsInLine)
	assert.Equal(t, 10.5, *Default.FontSize)
	assert.False(t, *Default.UseGitignore)
	assert.Equal(t, "软件著作权程序鉴别材料生成器V1.0", *Default.Title)
	assert.Equal(t, []string{"py"}, Default.IncludeExtensions)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"py"}, cfg.IncludeExtensions)
	assert.Equal(t, 30, *cfg.CharsInLine)
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, []string{"py"}, Default.IncludeExtensions)
	assert.Equal(t, []string{"#", "//"}, Default.CommentPrefixes)
	assert.Equal(t, 10.5, *Default.FontSize)
	assert.Equal(t, 30, *Default.CharsInLine)
	assert.Equal(t, "center", *Default.Alignment)
	assert.False(t, *Default.UseGitignore)
	require.Len(t, DefaultPairs(), 3)
}
