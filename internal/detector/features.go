package detector

import (
	"math"
	"sort"
	"strings"

	"git.home.luguber.info/inful/prosal/internal/textmetrics"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// All feature functions return a score in [0,1] where 1 reads as
// machine-like. Degenerate input maps to the neutral 0.5 unless a
// different convention is called out.

// minRunesForEntropy guards the entropy estimate; below this the rune
// distribution is too sparse to mean anything.
const minRunesForEntropy = 20

// entropyScore maps character and bigram entropy onto artificiality:
// generated text sits at the low end of both natural entropy bands.
func entropyScore(text string) float64 {
	runes := []rune(text)
	if len(runes) < minRunesForEntropy {
		return 0.5
	}
	// Natural prose lands near 4.4-4.7 bits per rune and 7-8 bits per
	// rune pair; flat, repetitive output drops well below that.
	char := textmetrics.Clamp((4.6 - textmetrics.CharEntropy(text)) / 1.6)
	bigram := textmetrics.Clamp((7.6 - textmetrics.BigramEntropy(text)) / 2.4)
	return (char + bigram) / 2
}

// burstinessScore inverts sentence-length variability: uniform lengths are
// machine-like. Sentences with no words at all yield exactly 0.5.
func burstinessScore(sentences []string) float64 {
	lengths := textmetrics.SentenceLengths(sentences)
	if textmetrics.Mean(lengths) == 0 {
		return 0.5
	}
	b := textmetrics.Burstiness(sentences)
	return 1 - textmetrics.Clamp(b/0.5)
}

// minWordsForZipf is the vocabulary size below which a rank-frequency fit
// is meaningless.
const minWordsForZipf = 10

// zipfScore measures deviation of the rank-frequency slope from the ideal
// Zipfian -1. Frequency ties in the tail are stable-sorted by word.
func zipfScore(words []string) float64 {
	counts := map[string]int{}
	for _, w := range words {
		counts[strings.ToLower(w)]++
	}
	if len(counts) < minWordsForZipf {
		return 0.5
	}

	type wc struct {
		word  string
		count int
	}
	ranked := make([]wc, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, wc{w, c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	// Least-squares slope of log(freq) over log(rank).
	n := float64(len(ranked))
	var sumX, sumY, sumXY, sumXX float64
	for i, r := range ranked {
		x := math.Log(float64(i + 1))
		y := math.Log(float64(r.count))
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0.5
	}
	slope := (n*sumXY - sumX*sumY) / denom
	return textmetrics.Clamp(math.Abs(slope + 1))
}

// minWordsForStylometry is the sample size below which word-length
// variance is noise.
const minWordsForStylometry = 5

// stylometryScore inverts word-length variance: humans mix short and long
// words more than generators do.
func stylometryScore(words []string) float64 {
	if len(words) < minWordsForStylometry {
		return 0.5
	}
	lengths := make([]float64, len(words))
	for i, w := range words {
		lengths[i] = float64(len([]rune(w)))
	}
	return 1 - textmetrics.Clamp(textmetrics.StdDev(lengths)/2.8)
}

// coherenceScore measures lexical overlap of words longer than three
// characters between adjacent sentences. High uniform overlap reads as
// machine-like; zero overlap across all pairs is a valid low signal.
func coherenceScore(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0.5
	}
	overlaps := make([]float64, 0, len(sentences)-1)
	prev := longWordSet(sentences[0])
	for _, s := range sentences[1:] {
		curr := longWordSet(s)
		overlaps = append(overlaps, overlapRatio(prev, curr))
		prev = curr
	}
	return textmetrics.Clamp(textmetrics.Mean(overlaps) * 2.5)
}

func longWordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range textseg.Words(s) {
		if len([]rune(w)) > 3 {
			set[strings.ToLower(w)] = struct{}{}
		}
	}
	return set
}

func overlapRatio(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	return float64(shared) / float64(smaller)
}

// grammarScore uses paragraph-length uniformity as a proxy for mechanical
// structuring: identical paragraph sizes read as machine-like.
func grammarScore(text string) float64 {
	paragraphs := textseg.Paragraphs(text)
	if len(paragraphs) < 2 {
		return 0.5
	}
	counts := make([]float64, len(paragraphs))
	for i, p := range paragraphs {
		counts[i] = float64(textseg.WordCount(p))
	}
	if textmetrics.Mean(counts) == 0 {
		return 0.5
	}
	cv := textmetrics.CoefficientOfVariation(counts)
	return 1 - textmetrics.Clamp(cv/0.8)
}

// openingsScore measures repetition of sentence-starting words;
// consecutive identical openers push the score toward the artificial end.
func openingsScore(sentences []string) float64 {
	openers := make([]string, 0, len(sentences))
	for _, s := range sentences {
		words := textseg.Words(s)
		if len(words) > 0 {
			openers = append(openers, strings.ToLower(words[0]))
		}
	}
	if len(openers) < 3 {
		return 0.5
	}

	unique := map[string]struct{}{}
	consecutive := 0
	for i, o := range openers {
		unique[o] = struct{}{}
		if i > 0 && o == openers[i-1] {
			consecutive++
		}
	}
	repeatRatio := 1 - float64(len(unique))/float64(len(openers))
	consecRatio := float64(consecutive) / float64(len(openers)-1)
	return textmetrics.Clamp(repeatRatio + 0.5*consecRatio)
}

// readabilityWindow is the sentence count per sliding window for the
// readability-consistency feature.
const readabilityWindow = 3

// readabilityScore measures variance of a readability proxy across sliding
// sentence windows; suspiciously consistent readability is machine-like.
func readabilityScore(sentences []string) float64 {
	windows := len(sentences) - readabilityWindow + 1
	if windows < 3 {
		return 0.5
	}
	proxies := make([]float64, 0, windows)
	for i := 0; i < windows; i++ {
		proxies = append(proxies, readabilityProxy(sentences[i:i+readabilityWindow]))
	}
	if textmetrics.Mean(proxies) == 0 {
		return 0.5
	}
	cv := textmetrics.CoefficientOfVariation(proxies)
	return 1 - textmetrics.Clamp(cv/0.3)
}

// readabilityProxy approximates grade level from sentence length and word
// length, enough to compare windows against each other.
func readabilityProxy(sentences []string) float64 {
	totalWords, totalRunes := 0, 0
	for _, s := range sentences {
		for _, w := range textseg.Words(s) {
			totalWords++
			totalRunes += len([]rune(w))
		}
	}
	if totalWords == 0 {
		return 0
	}
	wordsPerSentence := float64(totalWords) / float64(len(sentences))
	runesPerWord := float64(totalRunes) / float64(totalWords)
	return 0.39*wordsPerSentence + 11.8*runesPerWord/4.7
}

// Sentence-length category bounds for the rhythm feature.
const (
	shortSentenceMax  = 7
	mediumSentenceMax = 20
)

// rhythmScore buckets sentences into short/medium/long and measures
// run-length uniformity of the category sequence. All-same-length texts
// score high; alternating rhythms score low.
func rhythmScore(sentences []string) float64 {
	cats := make([]int, 0, len(sentences))
	for _, s := range sentences {
		wc := textseg.WordCount(s)
		switch {
		case wc == 0:
			continue
		case wc <= shortSentenceMax:
			cats = append(cats, 0)
		case wc <= mediumSentenceMax:
			cats = append(cats, 1)
		default:
			cats = append(cats, 2)
		}
	}
	if len(cats) < 4 {
		return 0.5
	}
	runs := 1
	for i := 1; i < len(cats); i++ {
		if cats[i] != cats[i-1] {
			runs++
		}
	}
	avgRun := float64(len(cats)) / float64(runs)
	return textmetrics.Clamp((avgRun - 1) / 4)
}
