// Package config holds the tool's configurable settings: hardcoded
// defaults, an optional TOML config file, and the zip of the multi-line
// comment delimiter lists.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"codedocx/internal/scanner"
)

// Config mirrors the CLI flags. Pointer fields distinguish "not set in
// the file" from a zero value, the same way the flag layer distinguishes
// changed flags.
type Config struct {
	IncludeExtensions      []string `toml:"include_extensions"`
	CommentPrefixes        []string `toml:"comment_prefixes"`
	MultilineCommentStarts []string `toml:"multiline_comment_starts"`
	MultilineCommentEnds   []string `toml:"multiline_comment_ends"`
	FontName               *string  `toml:"font_name"`
	FontSize               *float64 `toml:"font_size"`
	SpaceBefore            *float64 `toml:"space_before"`
	SpaceAfter             *float64 `toml:"space_after"`
	LineSpacing            *float64 `toml:"line_spacing"`
	CharsInLine            *int     `toml:"chars_in_line"`
	Alignment              *string  `toml:"paragraph_alignment"`
	Title                  *string  `toml:"title"`
	UseGitignore           *bool    `toml:"use_gitignore"`
}

var Default = Config{
	IncludeExtensions:      []string{"py"},
	CommentPrefixes:        []string{"#", "//"},
	MultilineCommentStarts: []string{`"""`, "'''", "/*"},
	MultilineCommentEnds:   []string{`"""`, "'''", "*/"},
	FontName:               ptr("宋体"),
	FontSize:               ptr(10.5),
	SpaceBefore:            ptr(0.0),
	SpaceAfter:             ptr(2.3),
	LineSpacing:            ptr(10.5),
	CharsInLine:            ptr(30),
	Alignment:              ptr("center"),
	Title:                  ptr("软件著作权程序鉴别材料生成器V1.0"),
	UseGitignore:           ptr(false),
}

func ptr[T any](v T) *T { return &v }

// clone returns a deep copy with fresh pointers and slices. Load decodes
// and merges into clones only; writing through a shallow copy's pointer
// fields would mutate Default itself.
func (c Config) clone() Config {
	out := c
	out.IncludeExtensions = append([]string(nil), c.IncludeExtensions...)
	out.CommentPrefixes = append([]string(nil), c.CommentPrefixes...)
	out.MultilineCommentStarts = append([]string(nil), c.MultilineCommentStarts...)
	out.MultilineCommentEnds = append([]string(nil), c.MultilineCommentEnds...)
	if c.FontName != nil {
		out.FontName = ptr(*c.FontName)
	}
	if c.FontSize != nil {
		out.FontSize = ptr(*c.FontSize)
	}
	if c.SpaceBefore != nil {
		out.SpaceBefore = ptr(*c.SpaceBefore)
	}
	if c.SpaceAfter != nil {
		out.SpaceAfter = ptr(*c.SpaceAfter)
	}
	if c.LineSpacing != nil {
		out.LineSpacing = ptr(*c.LineSpacing)
	}
	if c.CharsInLine != nil {
		out.CharsInLine = ptr(*c.CharsInLine)
	}
	if c.Alignment != nil {
		out.Alignment = ptr(*c.Alignment)
	}
	if c.Title != nil {
		out.Title = ptr(*c.Title)
	}
	if c.UseGitignore != nil {
		out.UseGitignore = ptr(*c.UseGitignore)
	}
	return out
}

// DefaultPairs returns the built-in multi-line comment delimiter pairs.
func DefaultPairs() []scanner.Pair {
	return []scanner.Pair{
		{Start: `"""`, End: `"""`},
		{Start: "'''", End: "'''"},
		{Start: "/*", End: "*/"},
	}
}

// Pairs zips start and end delimiter lists into comment pairs, preserving
// order. A length mismatch or an empty list falls back to DefaultPairs;
// mismatches are logged, not treated as errors.
func Pairs(starts, ends []string) []scanner.Pair {
	if len(starts) != len(ends) {
		slog.Warn("Mismatched multiline comment delimiter counts, using built-in pairs.",
			"starts", len(starts), "ends", len(ends))
		return DefaultPairs()
	}
	if len(starts) == 0 {
		return DefaultPairs()
	}
	pairs := make([]scanner.Pair, len(starts))
	for i := range starts {
		pairs[i] = scanner.Pair{Start: starts[i], End: ends[i]}
	}
	return pairs
}

// Load reads the configuration. With a customPath the file must exist and
// decode; with the default path (~/.config/codedocx/config.toml) a missing
// file just yields the defaults. Fields absent from the file keep their
// default values.
func Load(customPath string) (Config, error) {
	cfg := Default.clone()

	configFile := customPath
	if configFile == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			slog.Warn("Could not determine user home directory, using default settings.", "error", err)
			return cfg, nil
		}
		configFile = filepath.Join(homeDir, ".config", "codedocx", "config.toml")
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if customPath != "" {
				return Default.clone(), fmt.Errorf("configuration file %s not found", configFile)
			}
			slog.Debug("No config file found, using default settings.", "path", configFile)
			return cfg, nil
		}
		return Default.clone(), fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	if len(content) == 0 {
		slog.Info("Configuration file is empty, using default settings.", "path", configFile)
		return cfg, nil
	}

	slog.Info("Loading configuration.", "path", configFile)
	loaded := Default.clone()
	meta, err := toml.Decode(string(content), &loaded)
	if err != nil {
		return Default.clone(), fmt.Errorf("decoding TOML from %s: %w", configFile, err)
	}
	if len(meta.Undecoded()) > 0 {
		slog.Warn("Unrecognized keys found in config file.", "path", configFile, "keys", meta.Undecoded())
	}

	loaded.fillDefaults()
	return loaded, nil
}

// fillDefaults restores default values for pointer fields the TOML file
// left unset. Values are copied, never aliased from Default.
func (c *Config) fillDefaults() {
	if c.FontName == nil {
		c.FontName = ptr(*Default.FontName)
	}
	if c.FontSize == nil {
		c.FontSize = ptr(*Default.FontSize)
	}
	if c.SpaceBefore == nil {
		c.SpaceBefore = ptr(*Default.SpaceBefore)
	}
	if c.SpaceAfter == nil {
		c.SpaceAfter = ptr(*Default.SpaceAfter)
	}
	if c.LineSpacing == nil {
		c.LineSpacing = ptr(*Default.LineSpacing)
	}
	if c.CharsInLine == nil {
		c.CharsInLine = ptr(*Default.CharsInLine)
	}
	if c.Alignment == nil {
		c.Alignment = ptr(*Default.Alignment)
	}
	if c.Title == nil {
		c.Title = ptr(*Default.Title)
	}
	if c.UseGitignore == nil {
		c.UseGitignore = ptr(*Default.UseGitignore)
	}
	if len(c.IncludeExtensions) == 0 {
		c.IncludeExtensions = append([]string(nil), Default.IncludeExtensions...)
	}
	if len(c.CommentPrefixes) == 0 {
		c.CommentPrefixes = append([]string(nil), Default.CommentPrefixes...)
	}
}
