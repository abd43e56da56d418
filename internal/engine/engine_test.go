package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/prosal/internal/apperr"
)

const sampleText = "Furthermore, it is important to note this fact. " +
	"Furthermore, the important results were consistent across every run we measured. " +
	"The team reviewed the important findings and then prepared a detailed summary for the " +
	"stakeholders before anyone signed off on the final important report last week."

func TestHumanizeIsDeterministic(t *testing.T) {
	e := New()
	req := Request{Text: sampleText, Lang: "en", Profile: "web", Intensity: 80, Seed: 42}

	first, err := e.Humanize(req)
	require.NoError(t, err)
	second, err := e.Humanize(req)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, first.ChangeRatio, second.ChangeRatio)
	assert.Equal(t, first.Changes, second.Changes)
}

func TestHumanizeRewritesConnectorOpener(t *testing.T) {
	e := New()
	res, err := e.Humanize(Request{
		Text:      "Furthermore, it is important to note this fact.",
		Lang:      "en",
		Profile:   "web",
		Intensity: 80,
		Seed:      42,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "Furthermore, it is important to note this fact.", res.Text)
	assert.False(t, strings.HasPrefix(res.Text, "Furthermore"))
	assert.Positive(t, res.ChangeRatio)
	assert.NotEmpty(t, res.Changes)
	assert.Equal(t, "en", res.Lang)
	assert.Equal(t, "web", res.Profile)
}

func TestHumanizeZeroBudgetForbidsAllChanges(t *testing.T) {
	zero := 0.0
	e := New()
	res, err := e.Humanize(Request{
		Text:           sampleText,
		Lang:           "en",
		Profile:        "web",
		Intensity:      80,
		Seed:           42,
		MaxChangeRatio: &zero,
	})
	require.NoError(t, err)

	assert.Equal(t, sampleText, res.Text)
	assert.Zero(t, res.ChangeRatio)
	assert.Empty(t, res.Changes)
}

func TestHumanizeRespectsChangeBudget(t *testing.T) {
	budget := 0.2
	e := New()
	res, err := e.Humanize(Request{
		Text:           sampleText,
		Lang:           "en",
		Profile:        "web",
		Intensity:      100,
		Seed:           42,
		MaxChangeRatio: &budget,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.ChangeRatio, budget)
}

func TestHumanizeProtectedTermsSurvive(t *testing.T) {
	e := New()
	res, err := e.Humanize(Request{
		Text:       "Furthermore, it is important to note this fact.",
		Lang:       "en",
		Profile:    "web",
		Intensity:  80,
		Seed:       42,
		BrandTerms: []string{"Furthermore"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Furthermore, it is important to note this fact.", res.Text)
	assert.Empty(t, res.Changes)
}

func TestHumanizeZeroIntensityIsIdentity(t *testing.T) {
	e := New()
	res, err := e.Humanize(Request{Text: sampleText, Lang: "en", Profile: "web", Intensity: 0, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, sampleText, res.Text)
	assert.Zero(t, res.ChangeRatio)
	assert.Empty(t, res.Changes)
}

func TestHumanizeValidation(t *testing.T) {
	e := New()

	_, err := e.Humanize(Request{Text: "x", Lang: "en", Profile: "web", Intensity: -1})
	assertValidation(t, err)

	_, err = e.Humanize(Request{Text: "x", Lang: "en", Profile: "web", Intensity: 101})
	assertValidation(t, err)

	_, err = e.Humanize(Request{Text: "x", Lang: "en", Profile: "corporate", Intensity: 50})
	assertValidation(t, err)

	bad := 1.5
	_, err = e.Humanize(Request{Text: "x", Lang: "en", Profile: "web", Intensity: 50, MaxChangeRatio: &bad})
	assertValidation(t, err)

	_, err = e.Humanize(Request{Text: "x", Lang: "xx", Profile: "web", Intensity: 50})
	assertValidation(t, err)
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CategoryValidation, appErr.Category)
}

func TestHumanizeDegenerateTextNeverErrors(t *testing.T) {
	e := New()
	for _, text := range []string{"", "   ", ". . .", "?!", "слово"} {
		res, err := e.Humanize(Request{Text: text, Lang: "auto", Profile: "web", Intensity: 100, Seed: 9})
		require.NoError(t, err, "text %q", text)
		require.NotNil(t, res)
	}
}

func TestHumanizeAutoLanguageDetection(t *testing.T) {
	e := New()
	res, err := e.Humanize(Request{
		Text:      "Кроме того, важно отметить этот факт при проверке результатов.",
		Lang:      "auto",
		Profile:   "web",
		Intensity: 40,
		Seed:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, "ru", res.Lang)
}

func TestHumanizeMetricsPopulated(t *testing.T) {
	e := New()
	res, err := e.Humanize(Request{Text: sampleText, Lang: "en", Profile: "web", Intensity: 60, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, 3, res.MetricsBefore.SentenceCount)
	assert.Positive(t, res.MetricsBefore.AvgSentenceLength)
	assert.Positive(t, res.MetricsAfter.SentenceCount)
}

// outcomeRecorder captures outcome increments for assertions.
type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) ObserveHumanizeDuration(string, time.Duration) {}
func (r *outcomeRecorder) ObserveDetectDuration(time.Duration)           {}
func (r *outcomeRecorder) IncHumanizeOutcome(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}
func (r *outcomeRecorder) IncDetectVerdict(string) {}
func (r *outcomeRecorder) AddPassEdits(string, int) {}
func (r *outcomeRecorder) IncCacheResult(bool)      {}

func TestHumanizeRecordsOutcomeOnEveryTerminalPath(t *testing.T) {
	rec := &outcomeRecorder{}
	e := New(WithRecorder(rec))

	_, err := e.Humanize(Request{Text: "x", Lang: "en", Profile: "web", Intensity: 101})
	require.Error(t, err)
	_, err = e.Humanize(Request{Text: "x", Lang: "en", Profile: "corporate", Intensity: 50})
	require.Error(t, err)
	_, err = e.Humanize(Request{Text: "x", Lang: "xx", Profile: "web", Intensity: 50})
	require.Error(t, err)

	_, err = e.Humanize(Request{Text: sampleText, Lang: "en", Profile: "web", Intensity: 60, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"error", "error", "error", "success"}, rec.outcomes)
}

func TestChangeRatio(t *testing.T) {
	assert.Zero(t, changeRatio("same", "same"))
	assert.InDelta(t, 0.25, changeRatio("abcd", "abxd"), 1e-9)
	assert.Equal(t, 1.0, changeRatio("", "anything"))
	assert.Equal(t, 1.0, changeRatio("ab", "zzzzzzzz"))
}
