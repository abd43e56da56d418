package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralSwapsLeadingConnector(t *testing.T) {
	text := "Furthermore, it is important to note this fact."
	out, changes := StructuralDiversification{}.Apply(text, newRequest(t, 0.8, 42))
	require.NotEmpty(t, changes)
	assert.NotEqual(t, text, out)
	assert.False(t, strings.HasPrefix(out, "Furthermore"))
	// Capitalization of the opener is preserved.
	first := []rune(out)[0]
	assert.True(t, first >= 'A' && first <= 'Z')
	assert.True(t, strings.HasSuffix(out, "it is important to note this fact."))
}

func TestStructuralConnectorSwapBudget(t *testing.T) {
	sentence := "Furthermore, the plan moved ahead quickly. "
	text := strings.TrimSpace(strings.Repeat(sentence, 6))

	req := newRequest(t, 1.0, 42)
	req.MaxConnectorSwaps = 2
	_, changes := StructuralDiversification{}.Apply(text, req)

	swaps := 0
	for _, c := range changes {
		if strings.Contains(c.Description, "connector") {
			swaps++
		}
	}
	assert.Equal(t, 2, swaps)
}

func TestStructuralVariesRepeatedOpeners(t *testing.T) {
	text := "We like the plan. We want the plan. We need the plan today."
	out, changes := StructuralDiversification{}.Apply(text, newRequest(t, 1.0, 42))
	require.NotEmpty(t, changes)
	assert.NotEqual(t, text, out)
}

func TestStructuralSplitsOverlongSentence(t *testing.T) {
	words := "We planned the launch for early spring this year and then we kept adding " +
		"many more detailed steps to the shared checklist, because every stakeholder " +
		"wanted another review cycle before the final approval meeting happened at last."
	req := newRequest(t, 1.0, 42)
	req.TargetSentenceLen = 10
	out, changes := StructuralDiversification{}.Apply(words, req)
	require.NotEmpty(t, changes)
	assert.Equal(t, 2, strings.Count(out, "."))
}

func TestStructuralProtectedConnectorUntouched(t *testing.T) {
	text := "Furthermore, it is important to note this fact."
	req := newRequest(t, 0.8, 42)
	req.Protected = NewProtected([]string{"furthermore"})
	out, changes := StructuralDiversification{}.Apply(text, req)
	assert.Equal(t, text, out)
	assert.Empty(t, changes)
}
