package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evenText = "The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"The quick brown fox jumps over lazy dogs. " +
	"We planned the launch for early spring this year, and the marketing team prepared a detailed schedule for everyone involved."

func TestLengthVariationSplitsLongSentence(t *testing.T) {
	out, changes := LengthVariation{}.Apply(evenText, newRequest(t, 1.0, 42))
	require.NotEmpty(t, changes)
	assert.NotEqual(t, evenText, out)
	assert.Contains(t, out, "this year. And the marketing team")
	assert.Equal(t, "lengthvar", changes[0].Pass)
}

func TestLengthVariationHighCVSkip(t *testing.T) {
	// Already bursty text is left alone even at full strength.
	burstyText := "Short one here. " +
		"This sentence is quite a bit longer and carries on with many additional words for a while in total. " +
		"Tiny bit. " +
		"Also small."
	out, changes := LengthVariation{}.Apply(burstyText, newRequest(t, 1.0, 42))
	assert.Equal(t, burstyText, out)
	assert.Empty(t, changes)
}

func TestLengthVariationAllPunctuation(t *testing.T) {
	// Average sentence length of 0 words: nothing to vary.
	out, changes := LengthVariation{}.Apply(". . .", newRequest(t, 1.0, 42))
	assert.Equal(t, ". . .", out)
	assert.Empty(t, changes)
}

func TestLengthVariationSplitFailureIsLocal(t *testing.T) {
	// The long sentence has no clause boundary near its midpoint, so the
	// candidate is skipped and the text survives unmodified.
	text := strings.Repeat("The quick brown fox jumps over lazy dogs. ", 8) +
		"Every single word sits alone here without clause markers nearby anywhere throughout this very long final sentence."
	out, changes := LengthVariation{}.Apply(text, newRequest(t, 1.0, 42))
	assert.Equal(t, text, out)
	assert.Empty(t, changes)
}
