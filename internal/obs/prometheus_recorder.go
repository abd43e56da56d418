package obs

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	humanizeDuration *prom.HistogramVec
	detectDuration   prom.Histogram
	humanizeOutcome  *prom.CounterVec
	detectVerdicts   *prom.CounterVec
	passEdits        *prom.CounterVec
	cacheResults     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.humanizeDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "prosal",
			Name:      "humanize_duration_seconds",
			Help:      "Duration of humanize calls by profile",
			Buckets:   prom.DefBuckets,
		}, []string{"profile"})
		pr.detectDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "prosal",
			Name:      "detect_duration_seconds",
			Help:      "Duration of detect calls",
			Buckets:   prom.DefBuckets,
		})
		pr.humanizeOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "prosal",
			Name:      "humanize_outcomes_total",
			Help:      "Humanize outcomes by final status",
		}, []string{"outcome"})
		pr.detectVerdicts = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "prosal",
			Name:      "detect_verdicts_total",
			Help:      "Detection verdicts by band",
		}, []string{"verdict"})
		pr.passEdits = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "prosal",
			Name:      "pass_edits_total",
			Help:      "Edits applied per transform pass",
		}, []string{"pass"})
		pr.cacheResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "prosal",
			Name:      "cache_results_total",
			Help:      "Result cache hits and misses",
		}, []string{"result"})
		reg.MustRegister(pr.humanizeDuration, pr.detectDuration, pr.humanizeOutcome,
			pr.detectVerdicts, pr.passEdits, pr.cacheResults)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveHumanizeDuration(profile string, d time.Duration) {
	if p == nil || p.humanizeDuration == nil {
		return
	}
	p.humanizeDuration.WithLabelValues(profile).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveDetectDuration(d time.Duration) {
	if p == nil || p.detectDuration == nil {
		return
	}
	p.detectDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncHumanizeOutcome(outcome string) {
	if p == nil || p.humanizeOutcome == nil {
		return
	}
	p.humanizeOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) IncDetectVerdict(verdict string) {
	if p == nil || p.detectVerdicts == nil {
		return
	}
	p.detectVerdicts.WithLabelValues(verdict).Inc()
}

func (p *PrometheusRecorder) AddPassEdits(pass string, n int) {
	if p == nil || p.passEdits == nil || n <= 0 {
		return
	}
	p.passEdits.WithLabelValues(pass).Add(float64(n))
}

func (p *PrometheusRecorder) IncCacheResult(hit bool) {
	if p == nil || p.cacheResults == nil {
		return
	}
	label := "miss"
	if hit {
		label = "hit"
	}
	p.cacheResults.WithLabelValues(label).Inc()
}
