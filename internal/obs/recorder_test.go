package obs

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveHumanizeDuration("web", time.Second)
	r.ObserveDetectDuration(time.Second)
	r.IncHumanizeOutcome("success")
	r.IncDetectVerdict("human")
	r.AddPassEdits("structural", 3)
	r.IncCacheResult(true)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.ObserveHumanizeDuration("web", 120*time.Millisecond)
	r.ObserveDetectDuration(40 * time.Millisecond)
	r.IncHumanizeOutcome("success")
	r.IncHumanizeOutcome("success")
	r.IncDetectVerdict("mixed")
	r.AddPassEdits("structural", 2)
	r.AddPassEdits("structural", 0)
	r.IncCacheResult(true)
	r.IncCacheResult(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.humanizeOutcome.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.detectVerdicts.WithLabelValues("mixed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.passEdits.WithLabelValues("structural")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheResults.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheResults.WithLabelValues("miss")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var r *PrometheusRecorder
	r.ObserveHumanizeDuration("web", time.Second)
	r.IncHumanizeOutcome("success")
	r.AddPassEdits("structural", 1)
	r.IncCacheResult(false)
}
