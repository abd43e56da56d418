package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndStdDev(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, StdDev([]float64{5}))
	assert.InDelta(t, 0.8165, StdDev([]float64{1, 2, 3}), 0.001)
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{0, 0, 0}))
	assert.InDelta(t, 0.408, CoefficientOfVariation([]float64{1, 2, 3}), 0.001)
}

func TestBurstinessEmptySentencesConvention(t *testing.T) {
	// No words at all is neither bursty nor uniform: exactly 0.5.
	assert.Equal(t, 0.5, Burstiness([]string{"", "", ""}))
	assert.Equal(t, 0.5, Burstiness(nil))
	assert.Equal(t, 0.5, Burstiness([]string{". . .", "..."}))
}

func TestBurstinessOrdering(t *testing.T) {
	uniform := []string{
		"one two three four five.",
		"one two three four five.",
		"one two three four five.",
	}
	varied := []string{
		"short one.",
		"a much longer sentence with quite a few more words in it than usual.",
		"tiny.",
	}
	bu := Burstiness(uniform)
	bv := Burstiness(varied)
	assert.Less(t, bu, bv)
	assert.GreaterOrEqual(t, bu, 0.0)
	assert.LessOrEqual(t, bv, 1.0)
}

func TestSentenceMetrics(t *testing.T) {
	sentences := []string{"one two three.", "one."}
	assert.Equal(t, 2.0, AvgSentenceLength(sentences))
	assert.Equal(t, 1.0, SentenceLengthVariance(sentences))
}

func TestCharEntropy(t *testing.T) {
	assert.Equal(t, 0.0, CharEntropy(""))
	assert.Equal(t, 0.0, CharEntropy("aaaa"))
	assert.InDelta(t, 1.0, CharEntropy("abab"), 0.0001)
	assert.Greater(t, CharEntropy("the quick brown fox"), CharEntropy("aaaaaaaaaaaaaaaaaaa"))
}

func TestBigramEntropy(t *testing.T) {
	assert.Equal(t, 0.0, BigramEntropy("a"))
	assert.Greater(t, BigramEntropy("the quick brown fox"), 0.0)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 1.0, Clamp(2))
	assert.Equal(t, 0.3, Clamp(0.3))
}
