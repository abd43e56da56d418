// Package obs defines observability hooks for the humanize engine and the
// detection scorer, with a no-op default and a Prometheus implementation.
package obs

import "time"

// Recorder defines the metric hooks. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveHumanizeDuration(profile string, d time.Duration)
	ObserveDetectDuration(d time.Duration)
	IncHumanizeOutcome(outcome string) // outcome: success|error
	IncDetectVerdict(verdict string)   // verdict: human|mixed|ai
	AddPassEdits(pass string, n int)
	IncCacheResult(hit bool)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveHumanizeDuration(string, time.Duration) {}
func (NoopRecorder) ObserveDetectDuration(time.Duration)           {}
func (NoopRecorder) IncHumanizeOutcome(string)                     {}
func (NoopRecorder) IncDetectVerdict(string)                       {}
func (NoopRecorder) AddPassEdits(string, int)                      {}
func (NoopRecorder) IncCacheResult(bool)                           {}
