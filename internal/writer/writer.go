// Package writer reads selected source files and turns their surviving
// code lines into width-bounded document paragraphs, inserting a page
// break every fifty fragments when pagination is on.
package writer

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"codedocx/internal/document"
	"codedocx/internal/scanner"
)

// pageInterval is the number of emitted fragments per page.
const pageInterval = 50

// maxLineBytes bounds a single source line; longer lines abort the run.
const maxLineBytes = 1 << 20

// Writer holds the run-wide emission state. The fragment counter spans
// all files written through the same Writer, so pagination is global and
// files must be written sequentially.
type Writer struct {
	doc       document.Builder
	scan      *scanner.Scanner
	width     int
	paginate  bool
	fragments int
}

// New returns a Writer emitting into doc. charsInLine is the configured
// character budget; each character counts as two width units, so the
// effective fragment width is charsInLine*2 runes.
func New(doc document.Builder, scan *scanner.Scanner, charsInLine int, paginate bool) *Writer {
	return &Writer{
		doc:      doc,
		scan:     scan,
		width:    charsInLine * 2,
		paginate: paginate,
	}
}

// Fragments reports the total number of fragments emitted so far.
func (w *Writer) Fragments() int {
	return w.fragments
}

// Pages reports how many page breaks have been inserted so far.
func (w *Writer) Pages() int {
	if !w.paginate {
		return 0
	}
	return w.fragments / pageInterval
}

// WriteHeader writes the title paragraph.
func (w *Writer) WriteHeader(title string) {
	w.doc.AddHeader(title)
}

// WriteFile appends path's code lines to the document and reports how
// many fragments it contributed. The comment scanner is reset first, so
// an unterminated comment in a previous file cannot swallow this one; the
// fragment counter deliberately carries over.
//
// Any read failure or non-UTF-8 content is returned as an error; callers
// treat it as fatal for the whole run.
func (w *Writer) WriteFile(path string) (int, error) {
	w.scan.Reset()

	fp, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer fp.Close()

	emitted := 0
	lineNo := 0
	sc := bufio.NewScanner(fp)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		lineNo++
		raw := sc.Bytes()
		if !utf8.Valid(raw) {
			return emitted, fmt.Errorf("%s:%d: invalid UTF-8", path, lineNo)
		}
		line := strings.TrimRightFunc(string(raw), unicode.IsSpace)
		kind := w.scan.Classify(line)
		if kind != scanner.Code {
			continue
		}
		emitted += w.emit(line)
	}
	if err := sc.Err(); err != nil {
		return emitted, fmt.Errorf("reading %s: %w", path, err)
	}
	slog.Debug("Wrote file.", "path", path, "fragments", emitted)
	return emitted, nil
}

// emit splits line into fragments of at most w.width runes and appends
// each as one paragraph. Non-final fragments carry width-1 runes while
// the cursor still advances a full width; only the final fragment, where
// the remainder is under a full width, is taken verbatim.
func (w *Writer) emit(line string) int {
	runes := []rune(line)
	count := (len(runes) + w.width - 1) / w.width
	for i := 0; i < count; i++ {
		start := i * w.width
		remain := len(runes) - start
		var fragment string
		if remain >= w.width {
			fragment = string(runes[start : start+w.width-1])
		} else {
			fragment = string(runes[start:])
		}
		w.fragments++
		pageBreak := w.paginate && w.fragments%pageInterval == 0
		w.doc.AddParagraph(fragment, pageBreak)
	}
	return count
}
