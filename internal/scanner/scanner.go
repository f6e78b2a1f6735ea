// Package scanner classifies source lines as blank, comment, or code.
//
// The scanner is stateful: a multi-line comment opened on one line keeps
// every following line classified as a comment until the matching end
// delimiter shows up. State never survives a Reset, so comments cannot
// leak across files.
package scanner

import (
	"strings"
	"unicode"
)

// Kind is the classification of a single line.
type Kind int

const (
	Blank Kind = iota
	Comment
	Code
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Code:
		return "code"
	}
	return "unknown"
}

// Pair is a multi-line comment delimiter pair, e.g. {"/*", "*/"}.
type Pair struct {
	Start string
	End   string
}

// State is the scanner's position between lines: either closed, or inside
// an unterminated multi-line comment opened by Pair.
type State struct {
	Open bool
	Pair Pair
}

// Scanner classifies lines against a fixed delimiter configuration.
// Pair and prefix order is preserved as given; the first match wins.
type Scanner struct {
	pairs    []Pair
	prefixes []string
	state    State
}

// New returns a Scanner in the closed state. The pair and prefix slices
// are used as-is, in the caller's order.
func New(pairs []Pair, prefixes []string) *Scanner {
	return &Scanner{pairs: pairs, prefixes: prefixes}
}

// State reports the scanner's current state.
func (s *Scanner) State() State {
	return s.state
}

// Reset returns the scanner to the closed state. Call it before each file.
func (s *Scanner) Reset() {
	s.state = State{}
}

// Classify reports whether line is blank, a comment, or code, updating the
// multi-line comment state as a side effect.
//
// A whitespace-only line is blank no matter what state the scanner is in;
// the blank check runs before the open-comment check.
func (s *Scanner) Classify(line string) Kind {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if trimmed == "" {
		return Blank
	}

	if s.state.Open {
		// The end delimiter anywhere on the line closes the comment;
		// the closing line itself is still a comment.
		if strings.Contains(trimmed, s.state.Pair.End) {
			s.state = State{}
		}
		return Comment
	}

	for _, p := range s.pairs {
		i := strings.Index(trimmed, p.Start)
		if i < 0 {
			continue
		}
		rest := trimmed[i+len(p.Start):]
		if strings.Contains(rest, p.End) {
			// Opened and closed on the same line.
			return Comment
		}
		s.state = State{Open: true, Pair: p}
		return Comment
	}

	for _, prefix := range s.prefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return Comment
		}
	}
	return Code
}
