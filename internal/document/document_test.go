package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlignment(t *testing.T) {
	testCases := []struct {
		input    string
		expected Alignment
	}{
		{"left", AlignLeft},
		{"center", AlignCenter},
		{"right", AlignRight},
		{"", AlignCenter},
		{"justify", AlignCenter},
		{"LEFT", AlignCenter},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseAlignment(tc.input), "input %q", tc.input)
	}
}

func TestSpacingMapsPointsToTwentieths(t *testing.T) {
	d := NewDocx(Options{SpaceBefore: 0, SpaceAfter: 2.3, LineSpacing: 10.5})

	sp := d.spacing()
	assert.Equal(t, 0, sp.Before)
	assert.Equal(t, 210, sp.Line)
	assert.Equal(t, "exact", sp.LineRule)

	assert.Equal(t, 30, twips(1.5))
	assert.Equal(t, 21, twips(1.05))
}

func TestJustification(t *testing.T) {
	assert.Equal(t, "start", justification(AlignLeft))
	assert.Equal(t, "end", justification(AlignRight))
	assert.Equal(t, "center", justification(AlignCenter))
	assert.Equal(t, "center", justification(Alignment("bogus")))
}
