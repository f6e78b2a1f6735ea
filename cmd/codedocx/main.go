// Command codedocx converts a source tree into a single paginated .docx,
// the print-out format used for software copyright registration filings.
// Comments and blank lines are stripped, long lines are wrapped to a
// fixed width, and a page break is inserted every fifty emitted lines.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	pflag "github.com/spf13/pflag"

	"codedocx/internal/config"
	"codedocx/internal/document"
	"codedocx/internal/finder"
	"codedocx/internal/scanner"
	"codedocx/internal/summary"
	"codedocx/internal/writer"
)

const Version = "0.1.0"

var (
	title           string
	entryFile       string
	indirs          []string
	extensions      []string
	commentPrefixes []string
	multilineStarts []string
	multilineEnds   []string
	fontName        string
	fontSize        float64
	spaceBefore     float64
	spaceAfter      float64
	lineSpacing     float64
	charsInLine     int
	alignment       string
	excludes        []string
	outFile         string
	insertPage      bool
	useGitignore    bool
	configFileFlag  string
	logLevelStr     string
	versionFlag     bool
)

func init() {
	pflag.StringVarP(&title, "title", "t", *config.Default.Title, "Header title, typically software name plus version.")
	pflag.StringVar(&entryFile, "entry-file", "", "Entry file placed on the first page.")
	pflag.StringSliceVarP(&indirs, "indir", "i", []string{"."}, "Source directory, repeatable.")
	pflag.StringSliceVarP(&extensions, "ext", "e", nil, "Source file extension, repeatable (overrides config).")
	pflag.StringSliceVar(&commentPrefixes, "comment-prefix", nil, "Single-line comment prefix, repeatable (overrides config).")
	pflag.StringSliceVar(&multilineStarts, "multiline-comment-start", nil, "Multi-line comment start delimiter, paired with --multiline-comment-end by position.")
	pflag.StringSliceVar(&multilineEnds, "multiline-comment-end", nil, "Multi-line comment end delimiter, paired with --multiline-comment-start by position.")
	pflag.StringVar(&fontName, "font-name", *config.Default.FontName, "Font name.")
	pflag.Float64Var(&fontSize, "font-size", *config.Default.FontSize, "Font size in points.")
	pflag.Float64Var(&spaceBefore, "space-before", *config.Default.SpaceBefore, "Paragraph space before, in points.")
	pflag.Float64Var(&spaceAfter, "space-after", *config.Default.SpaceAfter, "Paragraph space after, in points.")
	pflag.Float64Var(&lineSpacing, "line-spacing", *config.Default.LineSpacing, "Fixed line spacing, in points.")
	pflag.IntVar(&charsInLine, "chars-in-line", *config.Default.CharsInLine, "Characters per line, counted as double-width.")
	pflag.StringVar(&alignment, "paragraph-alignment", *config.Default.Alignment, "Header alignment: left, center, or right.")
	pflag.StringSliceVar(&excludes, "exclude", nil, "File or directory to exclude, repeatable.")
	pflag.StringVarP(&outFile, "outfile", "o", "code.docx", "Output document path.")
	pflag.BoolVarP(&insertPage, "insert-page", "p", false, "Insert a page break every 50 emitted lines.")
	pflag.BoolVar(&useGitignore, "use-gitignore", false, "Honor the .gitignore at each input directory root.")
	pflag.StringVarP(&configFileFlag, "config", "c", "", "Path to a custom configuration file.")
	pflag.StringVar(&logLevelStr, "loglevel", "info", "Set logging verbosity (debug, info, warn, error).")
	pflag.BoolVarP(&versionFlag, "version", "v", false, "Print version and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [flags]

Convert a source tree into a single paginated .docx print-out, stripping
comments and blank lines and wrapping long lines.

Flags:
`, os.Args[0])
		pflag.PrintDefaults()
	}
}

func main() {
	pflag.Parse()

	if versionFlag {
		fmt.Printf("codedocx version %s\n", Version)
		os.Exit(0)
	}

	// Setup logging.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, defaulting to 'info'.\n", logLevelStr)
		logLevel = slog.LevelInfo
	}
	logOpts := &slog.HandlerOptions{Level: logLevel, AddSource: logLevel <= slog.LevelDebug}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, logOpts)))

	// Load configuration.
	cfg, loadErr := config.Load(configFileFlag)
	if loadErr != nil {
		slog.Error("Failed to load configuration.", "error", loadErr)
		if configFileFlag != "" {
			fmt.Fprintf(os.Stderr, "Error: could not load configuration file '%s': %v\n", configFileFlag, loadErr)
			os.Exit(1)
		}
		// Load hands back a copy of the defaults alongside the error.
		slog.Warn("Proceeding with default settings due to config load issue.")
	}
	mergeFlags(&cfg)

	if err := run(cfg); err != nil {
		slog.Error("Run failed.", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// mergeFlags applies changed command-line flags over the loaded config.
// Flag wins over config file wins over hardcoded default, decided
// per-flag.
func mergeFlags(cfg *config.Config) {
	changed := pflag.CommandLine.Changed
	if changed("ext") {
		cfg.IncludeExtensions = extensions
	}
	if changed("comment-prefix") {
		cfg.CommentPrefixes = commentPrefixes
	}
	if changed("multiline-comment-start") || changed("multiline-comment-end") {
		cfg.MultilineCommentStarts = multilineStarts
		cfg.MultilineCommentEnds = multilineEnds
	}
	if changed("title") {
		cfg.Title = &title
	}
	if changed("font-name") {
		cfg.FontName = &fontName
	}
	if changed("font-size") {
		cfg.FontSize = &fontSize
	}
	if changed("space-before") {
		cfg.SpaceBefore = &spaceBefore
	}
	if changed("space-after") {
		cfg.SpaceAfter = &spaceAfter
	}
	if changed("line-spacing") {
		cfg.LineSpacing = &lineSpacing
	}
	if changed("chars-in-line") {
		cfg.CharsInLine = &charsInLine
	}
	if changed("paragraph-alignment") {
		cfg.Alignment = &alignment
	}
	if changed("use-gitignore") {
		cfg.UseGitignore = &useGitignore
	}
}

func run(cfg config.Config) error {
	// Resolve and validate inputs before any output is produced.
	absDirs := make([]string, 0, len(indirs))
	for _, indir := range indirs {
		absDir, err := filepath.Abs(indir)
		if err != nil {
			return fmt.Errorf("resolving input directory %s: %w", indir, err)
		}
		info, err := os.Stat(absDir)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("input directory %s not found", absDir)
			}
			return fmt.Errorf("accessing input directory %s: %w", absDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("input path %s is not a directory", absDir)
		}
		absDirs = append(absDirs, absDir)
	}

	if entryFile != "" {
		info, err := os.Stat(entryFile)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("entry file %s not found", entryFile)
			}
			return fmt.Errorf("accessing entry file %s: %w", entryFile, err)
		}
		if info.IsDir() {
			return fmt.Errorf("entry file %s is a directory", entryFile)
		}
	}

	absExcludes := make([]string, 0, len(excludes))
	for _, exclude := range excludes {
		absExclude, err := filepath.Abs(exclude)
		if err != nil {
			return fmt.Errorf("resolving exclude %s: %w", exclude, err)
		}
		absExcludes = append(absExcludes, absExclude)
	}
	absExcludes = finder.TrimSlash(absExcludes)

	// Select files.
	files, err := finder.New(cfg.IncludeExtensions).
		WithGitignore(*cfg.UseGitignore).
		Collect(absDirs, entryFile, absExcludes)
	if err != nil {
		return err
	}
	slog.Info("Selected source files.", "count", len(files))

	// Build the document.
	doc := document.NewDocx(document.Options{
		FontName:    *cfg.FontName,
		FontSize:    *cfg.FontSize,
		SpaceBefore: *cfg.SpaceBefore,
		SpaceAfter:  *cfg.SpaceAfter,
		LineSpacing: *cfg.LineSpacing,
		Alignment:   document.ParseAlignment(*cfg.Alignment),
	})
	scan := scanner.New(
		config.Pairs(cfg.MultilineCommentStarts, cfg.MultilineCommentEnds),
		cfg.CommentPrefixes,
	)
	w := writer.New(doc, scan, *cfg.CharsInLine, insertPage)

	w.WriteHeader(*cfg.Title)
	reports := make([]summary.FileReport, 0, len(files))
	for _, file := range files {
		emitted, err := w.WriteFile(file)
		if err != nil {
			return err
		}
		if emitted > 0 {
			reports = append(reports, summary.FileReport{
				Path:      displayPath(absDirs, file),
				Fragments: emitted,
			})
		}
	}

	if err := doc.Save(outFile); err != nil {
		return err
	}
	slog.Info("Saved document.", "path", outFile, "fragments", w.Fragments())

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	summary.Print(os.Stderr, reports, w.Fragments(), w.Pages(), outFile)
	return nil
}

// displayPath shortens file to be relative to the first input directory
// containing it; files outside every input directory stay absolute.
func displayPath(dirs []string, file string) string {
	for _, dir := range dirs {
		rel, err := filepath.Rel(dir, file)
		if err == nil && rel != ".." && !filepath.IsAbs(rel) && !hasDotDotPrefix(rel) {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(file)
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) >= 3 && rel[:3] == "../"
}
