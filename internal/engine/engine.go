// Package engine orchestrates the humanize pipeline: language resolution,
// pass sequencing, protected-term masking, and change-ratio budgeting.
package engine

import (
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/prosal/internal/apperr"
	"git.home.luguber.info/inful/prosal/internal/config"
	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/obs"
	"git.home.luguber.info/inful/prosal/internal/textseg"
	"git.home.luguber.info/inful/prosal/internal/transform"
)

// Request are the caller-supplied humanize parameters.
type Request struct {
	Text string `json:"text"`
	// Lang is a language code or "auto".
	Lang string `json:"lang"`
	// Profile names the pass bundle: web, chat, formal, academic.
	Profile string `json:"profile"`
	// Intensity dials edit aggressiveness, 0-100.
	Intensity int `json:"intensity"`
	// Seed makes the run reproducible; identical (text, params, seed)
	// yields byte-identical output.
	Seed int64 `json:"seed"`

	BrandTerms   []string `json:"brand_terms,omitempty"`
	KeepKeywords []string `json:"keep_keywords,omitempty"`

	// MaxChangeRatio caps the normalized edit distance between input and
	// output. Nil uses the engine default; an explicit 0 forbids any
	// change. Enforcement is best-effort after the fact: pass results are
	// reverted newest-first until the output fits the cap.
	MaxChangeRatio *float64 `json:"max_change_ratio,omitempty"`
}

// Result is the humanize report. Field names are a contract with the
// CLI/API layer.
type Result struct {
	Text          string                   `json:"text"`
	Lang          string                   `json:"lang"`
	Profile       string                   `json:"profile"`
	ChangeRatio   float64                  `json:"change_ratio"`
	Changes       []transform.ChangeRecord `json:"changes"`
	MetricsBefore Metrics                  `json:"metrics_before"`
	MetricsAfter  Metrics                  `json:"metrics_after"`
}

const defaultMaxChangeRatio = 0.6

// Engine runs the humanize pipeline. Safe for concurrent use; all mutable
// state is call-scoped.
type Engine struct {
	log      *slog.Logger
	recorder obs.Recorder
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithRecorder sets the observability recorder.
func WithRecorder(r obs.Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// New creates an Engine.
func New(options ...Option) *Engine {
	e := &Engine{log: slog.Default(), recorder: obs.NoopRecorder{}}
	for _, opt := range options {
		opt(e)
	}
	return e
}

// Humanize runs all enabled passes for the profile over the text and
// returns the final text plus the change report. Configuration errors
// (unknown language or profile, out-of-range intensity) fail fast here;
// degenerate text never errors.
func (e *Engine) Humanize(req Request) (*Result, error) {
	start := time.Now()

	if req.Intensity < 0 || req.Intensity > 100 {
		return e.fail(apperr.Validation("intensity must be in [0,100], got %d", req.Intensity))
	}
	profile, err := config.ResolveProfile(req.Profile)
	if err != nil {
		return e.fail(apperr.Validation("profile: %v", err))
	}

	lang := req.Lang
	if lang == "" || lang == "auto" {
		lang = textseg.DetectLang(req.Text)
	}
	pack, err := langpack.Get(lang)
	if err != nil {
		return e.fail(err)
	}
	tag, tagErr := language.Parse(lang)
	if tagErr != nil {
		tag = language.English
	}

	maxRatio := defaultMaxChangeRatio
	if req.MaxChangeRatio != nil {
		if *req.MaxChangeRatio < 0 || *req.MaxChangeRatio > 1 {
			return e.fail(apperr.Validation("max_change_ratio must be in [0,1], got %v", *req.MaxChangeRatio))
		}
		maxRatio = *req.MaxChangeRatio
	}

	rng := rand.New(rand.NewSource(req.Seed))
	protected := transform.NewProtected(append(append([]string{}, req.BrandTerms...), req.KeepKeywords...))

	treq := transform.Request{
		Strength:          float64(req.Intensity) / 100.0,
		RNG:               rng,
		Pack:              pack,
		Protected:         protected,
		Tag:               tag,
		TargetSentenceLen: profile.TargetSentenceLen,
		MaxConnectorSwaps: profile.MaxConnectorSwaps,
	}

	metricsBefore := computeMetrics(req.Text, pack)

	// Each pass result is snapshotted so budget enforcement can revert
	// newest-first.
	type step struct {
		text    string
		changes []transform.ChangeRecord
	}
	steps := []step{{text: req.Text}}

	current := req.Text
	for _, name := range profile.Passes {
		pass, ok := passRegistry[name]
		if !ok {
			return e.fail(apperr.Internal("profile %s references unknown pass %s", profile.Name, name))
		}
		next, changes := pass.Apply(current, treq)
		if len(changes) > 0 {
			e.log.Debug("pass applied edits",
				slog.String("pass", pass.Name()),
				slog.Int("edits", len(changes)))
			e.recorder.AddPassEdits(pass.Name(), len(changes))
		}
		current = next
		steps = append(steps, step{text: current, changes: changes})
	}

	// Best-effort budget: walk back whole pass results until the output
	// fits the cap. The original text always fits (ratio 0).
	idx := len(steps) - 1
	ratio := changeRatio(req.Text, steps[idx].text)
	for ratio > maxRatio && idx > 0 {
		idx--
		ratio = changeRatio(req.Text, steps[idx].text)
	}
	final := steps[idx].text
	var kept []transform.ChangeRecord
	for _, s := range steps[1 : idx+1] {
		kept = append(kept, s.changes...)
	}
	if idx < len(steps)-1 {
		e.log.Info("change budget exceeded, reverted trailing passes",
			slog.Int("reverted_passes", len(steps)-1-idx),
			slog.Float64("max_change_ratio", maxRatio))
	}

	result := &Result{
		Text:          final,
		Lang:          lang,
		Profile:       profile.Name,
		ChangeRatio:   ratio,
		Changes:       kept,
		MetricsBefore: metricsBefore,
		MetricsAfter:  computeMetrics(final, pack),
	}

	e.recorder.ObserveHumanizeDuration(profile.Name, time.Since(start))
	e.recorder.IncHumanizeOutcome("success")
	return result, nil
}

// fail records the error outcome so the outcome counter covers every
// terminal status, not just successes.
func (e *Engine) fail(err error) (*Result, error) {
	e.recorder.IncHumanizeOutcome("error")
	return nil, err
}

var passRegistry = map[config.PassName]transform.Pass{
	config.PassStructural:  transform.StructuralDiversification{},
	config.PassRepetition:  transform.RepetitionReduction{},
	config.PassLengthVar:   transform.LengthVariation{},
	config.PassPunctuation: transform.PunctuationVariation{},
	config.PassParagraph:   transform.ParagraphRhythm{},
	config.PassLiveliness:  transform.LivelinessInjection{},
	config.PassBurstiness:  transform.BurstinessInjection{},
}
