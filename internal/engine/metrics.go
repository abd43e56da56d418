package engine

import (
	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/textmetrics"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// Metrics summarizes a text with the same primitives the detection scorer
// uses, so before/after comparisons line up with detection features.
type Metrics struct {
	SentenceCount          int     `json:"sentence_count"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	SentenceLengthVariance float64 `json:"sentence_length_variance"`
	Burstiness             float64 `json:"burstiness"`
}

func computeMetrics(text string, pack *langpack.Pack) Metrics {
	sentences := textseg.Split(text, pack)
	return Metrics{
		SentenceCount:          len(sentences),
		AvgSentenceLength:      textmetrics.AvgSentenceLength(sentences),
		SentenceLengthVariance: textmetrics.SentenceLengthVariance(sentences),
		Burstiness:             textmetrics.Burstiness(sentences),
	}
}
