// Package textmetrics provides the statistical primitives shared by the
// humanize orchestrator and the detection scorer, so before/after metrics
// and detection features are computed the same way.
package textmetrics

import (
	"math"

	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// Mean returns the arithmetic mean, 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation, 0 for fewer than two
// samples.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// CoefficientOfVariation returns stdev/mean, 0 when the mean is 0.
func CoefficientOfVariation(values []float64) float64 {
	m := Mean(values)
	if m == 0 {
		return 0
	}
	return StdDev(values) / m
}

// SentenceLengths returns per-sentence word counts as floats.
func SentenceLengths(sentences []string) []float64 {
	lengths := make([]float64, len(sentences))
	for i, s := range sentences {
		lengths[i] = float64(textseg.WordCount(s))
	}
	return lengths
}

// AvgSentenceLength returns the mean word count per sentence.
func AvgSentenceLength(sentences []string) float64 {
	return Mean(SentenceLengths(sentences))
}

// SentenceLengthVariance returns the population variance of word counts.
func SentenceLengthVariance(sentences []string) float64 {
	sd := StdDev(SentenceLengths(sentences))
	return sd * sd
}

// Burstiness maps sentence-length variability into [0,1]. Uniform lengths
// approach 0, highly varied lengths approach 1. Sentences with no words at
// all yield exactly 0.5 by convention.
func Burstiness(sentences []string) float64 {
	lengths := SentenceLengths(sentences)
	if Mean(lengths) == 0 {
		return 0.5
	}
	cv := CoefficientOfVariation(lengths)
	return cv / (cv + 1)
}

// CharEntropy returns the Shannon entropy in bits of the rune distribution.
// Empty input yields 0.
func CharEntropy(text string) float64 {
	counts := map[rune]int{}
	total := 0
	for _, r := range text {
		counts[r]++
		total++
	}
	if total == 0 {
		return 0
	}
	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// BigramEntropy returns the Shannon entropy in bits of adjacent rune pairs.
func BigramEntropy(text string) float64 {
	runes := []rune(text)
	if len(runes) < 2 {
		return 0
	}
	counts := map[[2]rune]int{}
	for i := 0; i+1 < len(runes); i++ {
		counts[[2]rune{runes[i], runes[i+1]}]++
	}
	total := float64(len(runes) - 1)
	entropy := 0.0
	for _, c := range counts {
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Clamp bounds v into [0,1].
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
