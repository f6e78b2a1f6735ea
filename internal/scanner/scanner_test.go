package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPairs() []Pair {
	return []Pair{
		{Start: `"""`, End: `"""`},
		{Start: "'''", End: "'''"},
		{Start: "/*", End: "*/"},
	}
}

func defaultPrefixes() []string {
	return []string{"#", "//"}
}

func TestClassifySingleLines(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected Kind
	}{
		{"empty", "", Blank},
		{"spaces only", "    ", Blank},
		{"tabs and spaces", "\t  \t", Blank},
		{"hash comment", "# a comment", Comment},
		{"indented hash comment", "    # indented", Comment},
		{"slash comment", "// a comment", Comment},
		{"code", "x = 1", Code},
		{"code with trailing comment", "x = 1  # not a line comment", Code},
		{"self-contained docstring", `"""one line"""`, Comment},
		{"self-contained c comment", "/* one line */", Comment},
		{"code before hash is code", "print('#')", Code},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(defaultPairs(), defaultPrefixes())
			assert.Equal(t, tc.expected, s.Classify(tc.line))
			assert.False(t, s.State().Open, "single-line input must leave the scanner closed")
		})
	}
}

func TestClassifyMultilineComment(t *testing.T) {
	assertions := assert.New(t)
	s := New(defaultPairs(), defaultPrefixes())

	lines := []string{
		"/* start",
		"still inside",
		"x = 1",
		"end */",
	}
	for _, line := range lines {
		assertions.Equal(Comment, s.Classify(line), "line %q", line)
	}
	assertions.False(s.State().Open, "scanner must be closed after the end delimiter")

	assertions.Equal(Code, s.Classify("x = 2"))
}

func TestClassifyOpensCorrectPair(t *testing.T) {
	s := New(defaultPairs(), defaultPrefixes())

	require.Equal(t, Comment, s.Classify(`"""docstring start`))
	require.True(t, s.State().Open)
	assert.Equal(t, Pair{Start: `"""`, End: `"""`}, s.State().Pair)

	// A different pair's end delimiter must not close the open one.
	assert.Equal(t, Comment, s.Classify("*/ still inside"))
	assert.True(t, s.State().Open)

	assert.Equal(t, Comment, s.Classify(`closing """`))
	assert.False(t, s.State().Open)
}

func TestClassifyBlankInsideOpenComment(t *testing.T) {
	s := New(defaultPairs(), defaultPrefixes())

	require.Equal(t, Comment, s.Classify("/* open"))
	require.True(t, s.State().Open)

	// The blank short-circuit runs before the open-comment check.
	assert.Equal(t, Blank, s.Classify(""))
	assert.Equal(t, Blank, s.Classify("   "))
	assert.True(t, s.State().Open, "blank lines must not disturb the open state")

	assert.Equal(t, Comment, s.Classify("done */"))
	assert.False(t, s.State().Open)
}

func TestClassifyPairOrderFirstMatchWins(t *testing.T) {
	// Both pairs share the start delimiter; the first configured pair
	// decides which end delimiter closes the block.
	pairs := []Pair{
		{Start: "<<", End: "FIRST"},
		{Start: "<<", End: "SECOND"},
	}
	s := New(pairs, nil)

	require.Equal(t, Comment, s.Classify("<< open"))
	require.Equal(t, Pair{Start: "<<", End: "FIRST"}, s.State().Pair)

	assert.Equal(t, Comment, s.Classify("SECOND"))
	assert.True(t, s.State().Open, "the second pair's end must not close the first pair")

	assert.Equal(t, Comment, s.Classify("FIRST"))
	assert.False(t, s.State().Open)
}

func TestClassifyPairBeatsPrefix(t *testing.T) {
	// "/*" appears mid-line, so the pair table matches before the "//"
	// prefix is ever consulted.
	s := New(defaultPairs(), defaultPrefixes())
	assert.Equal(t, Comment, s.Classify("// also starts /* a block"))
	assert.True(t, s.State().Open)
}

func TestReset(t *testing.T) {
	s := New(defaultPairs(), defaultPrefixes())

	require.Equal(t, Comment, s.Classify("/* dangling"))
	require.True(t, s.State().Open)

	s.Reset()
	assert.False(t, s.State().Open)
	assert.Equal(t, Code, s.Classify("x = 1"))
}

func TestClassifyNoConfiguration(t *testing.T) {
	s := New(nil, nil)
	assert.Equal(t, Code, s.Classify("# with no prefixes this is code"))
	assert.Equal(t, Blank, s.Classify(""))
}
