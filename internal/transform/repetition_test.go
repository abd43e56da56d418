package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepetitionReplacesLaterOccurrences(t *testing.T) {
	text := "This feature is important for the team. The deadline is important as well."
	out, changes := RepetitionReduction{}.Apply(text, newRequest(t, 1.0, 9))
	require.NotEmpty(t, changes)
	assert.NotEqual(t, text, out)

	// The first occurrence stays; a later one is swapped for a synonym.
	assert.Contains(t, out, "This feature is important for the team.")
	assert.NotContains(t, out[len("This feature is important"):], " important ")
	assert.Equal(t, "repetition", changes[0].Pass)
}

func TestRepetitionPreservesCasingAndPunctuation(t *testing.T) {
	text := "Important work happens here. Important work continues, always."
	out, _ := RepetitionReduction{}.Apply(text, newRequest(t, 1.0, 9))

	// The replacement of the second "Important" keeps capitalization.
	second := strings.SplitAfter(out, ". ")[1]
	r := []rune(strings.Fields(second)[0])
	assert.True(t, r[0] >= 'A' && r[0] <= 'Z', "replacement should stay capitalized: %q", second)
}

func TestRepetitionRespectsProtectedTerms(t *testing.T) {
	text := "This feature is important for the team. The deadline is important as well."
	req := newRequest(t, 1.0, 9)
	req.Protected = NewProtected([]string{"important"})
	out, changes := RepetitionReduction{}.Apply(text, req)
	assert.Equal(t, text, out)
	assert.Empty(t, changes)
}

func TestRepetitionSkipsWordsWithoutSynonyms(t *testing.T) {
	text := "The zebra walked around. The zebra kept walking around town."
	out, changes := RepetitionReduction{}.Apply(text, newRequest(t, 1.0, 9))
	assert.Equal(t, text, out)
	assert.Empty(t, changes)
}
