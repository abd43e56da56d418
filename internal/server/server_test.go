package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/prosal/internal/cache"
	"git.home.luguber.info/inful/prosal/internal/detector"
	"git.home.luguber.info/inful/prosal/internal/engine"
	"git.home.luguber.info/inful/prosal/internal/obs"
)

func newTestServer(t *testing.T, c *cache.Cache) http.Handler {
	t.Helper()
	s := New(Options{
		Addr:     ":0",
		Engine:   engine.New(),
		Scorer:   detector.New(),
		Cache:    c,
		Registry: prom.NewRegistry(),
	})
	return s.httpServer.Handler
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHumanizeEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	rec := postJSON(t, h, "/v1/humanize", map[string]any{
		"text":      "Furthermore, it is important to note this fact.",
		"lang":      "en",
		"profile":   "web",
		"intensity": 80,
		"seed":      42,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result engine.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Text)
	assert.NotEqual(t, "Furthermore, it is important to note this fact.", result.Text)
	assert.Equal(t, "en", result.Lang)
	assert.Equal(t, "web", result.Profile)
	assert.Positive(t, result.ChangeRatio)
	assert.NotEmpty(t, result.Changes)
	assert.Positive(t, result.MetricsBefore.SentenceCount)
}

func TestHumanizeEndpointValidation(t *testing.T) {
	h := newTestServer(t, nil)

	rec := postJSON(t, h, "/v1/humanize", map[string]any{
		"text": "", "lang": "en", "profile": "web", "intensity": 50,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h, "/v1/humanize", map[string]any{
		"text": "x", "lang": "en", "profile": "corporate", "intensity": 50,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, h, "/v1/humanize", map[string]any{
		"text": "x", "lang": "en", "profile": "web", "intensity": 50, "bogus": true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHumanizeEndpointMalformedBody(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/humanize", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload["error"], "invalid request body")
}

func TestDetectEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	rec := postJSON(t, h, "/v1/detect", map[string]any{
		"text": "The system works. The system fails. The system retries. The system stops.",
		"lang": "en",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result detector.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.NotEmpty(t, result.Verdict)
	assert.Len(t, result.SubScores, 9)
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCachedResponsesAreIdentical(t *testing.T) {
	c := cache.New(cache.NewMemoryStore(), obs.NoopRecorder{})
	h := newTestServer(t, c)

	body := map[string]any{
		"text": "Furthermore, it is important to note this fact.",
		"lang": "en", "profile": "web", "intensity": 80, "seed": 42,
	}
	first := postJSON(t, h, "/v1/humanize", body)
	second := postJSON(t, h, "/v1/humanize", body)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
