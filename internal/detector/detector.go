// Package detector scores texts for signals of machine authorship. It is
// read-only and independent of the transform pipeline; every feature is
// total over arbitrary UTF-8 input and falls back to a neutral midpoint on
// degenerate input.
package detector

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/obs"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// Feature names double as sub-score keys in the report; the set is a
// contract with the CLI/API layer.
const (
	FeatureEntropy     = "entropy"
	FeatureBurstiness  = "burstiness"
	FeatureZipf        = "zipf"
	FeatureStylometry  = "stylometry"
	FeatureCoherence   = "coherence"
	FeatureGrammar     = "grammar"
	FeatureOpenings    = "openings"
	FeatureReadability = "readability"
	FeatureRhythm      = "rhythm"
)

// Verdict bands partition the combined score.
const (
	VerdictHuman = "human"
	VerdictMixed = "mixed"
	VerdictAI    = "ai"
)

const (
	humanThreshold = 0.35
	aiThreshold    = 0.65
)

// Result is the detection report. Field names are a contract with the
// CLI/API layer.
type Result struct {
	Score     float64            `json:"score"`
	Verdict   string             `json:"verdict"`
	SubScores map[string]float64 `json:"sub_scores"`
}

// defaultWeights combine sub-scores into the artificiality score. They sum
// to 1; burstiness and openings carry extra weight as the most reliable
// signals on short texts.
func defaultWeights() map[string]float64 {
	return map[string]float64{
		FeatureEntropy:     0.10,
		FeatureBurstiness:  0.15,
		FeatureZipf:        0.10,
		FeatureStylometry:  0.10,
		FeatureCoherence:   0.10,
		FeatureGrammar:     0.10,
		FeatureOpenings:    0.15,
		FeatureReadability: 0.10,
		FeatureRhythm:      0.10,
	}
}

// Scorer computes the artificiality score. Safe for concurrent use.
type Scorer struct {
	weights  map[string]float64
	log      *slog.Logger
	recorder obs.Recorder
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the scorer logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scorer) { s.log = l }
}

// WithRecorder sets the observability recorder.
func WithRecorder(r obs.Recorder) Option {
	return func(s *Scorer) { s.recorder = r }
}

// New creates a Scorer with the default weights.
func New(options ...Option) *Scorer {
	s := &Scorer{
		weights:  defaultWeights(),
		log:      slog.Default(),
		recorder: obs.NoopRecorder{},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Detect scores a text. Unknown language codes are a caller contract
// violation; any text content, including empty, yields a valid result.
func (s *Scorer) Detect(text, lang string) (*Result, error) {
	start := time.Now()

	if lang == "" || lang == "auto" {
		lang = textseg.DetectLang(text)
	}
	pack, err := langpack.Get(lang)
	if err != nil {
		return nil, apperr.Validation("language: %v", err)
	}

	sentences := textseg.Split(text, pack)
	words := textseg.Words(text)

	sub := map[string]float64{
		FeatureEntropy:     entropyScore(text),
		FeatureBurstiness:  burstinessScore(sentences),
		FeatureZipf:        zipfScore(words),
		FeatureStylometry:  stylometryScore(words),
		FeatureCoherence:   coherenceScore(sentences),
		FeatureGrammar:     grammarScore(text),
		FeatureOpenings:    openingsScore(sentences),
		FeatureReadability: readabilityScore(sentences),
		FeatureRhythm:      rhythmScore(sentences),
	}

	score := 0.0
	for name, weight := range s.weights {
		score += weight * sub[name]
	}

	verdict := VerdictMixed
	switch {
	case score < humanThreshold:
		verdict = VerdictHuman
	case score >= aiThreshold:
		verdict = VerdictAI
	}

	s.log.Debug("detection complete",
		slog.String("lang", lang),
		slog.Float64("score", score),
		slog.String("verdict", verdict))
	s.recorder.ObserveDetectDuration(time.Since(start))
	s.recorder.IncDetectVerdict(verdict)

	return &Result{Score: score, Verdict: verdict, SubScores: sub}, nil
}
