package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

const longMonotone = "The team reviewed each deployment target in the plan and then compared " +
	"the staging results against the numbers we collected from the earlier production runs " +
	"over the last two weeks."

func TestBurstinessSplitsLongSentences(t *testing.T) {
	pack, err := langpack.Get("en")
	require.NoError(t, err)

	out, changes := BurstinessInjection{}.Apply(longMonotone, newRequest(t, 1.0, 42))
	require.NotEmpty(t, changes)

	orig := textseg.Split(longMonotone, pack)
	got := textseg.Split(out, pack)
	assert.Greater(t, len(got), len(orig))
	for _, s := range got {
		assert.True(t, strings.HasSuffix(s, "."))
	}
}

func TestBurstinessInsertsFragmentsBetweenLongPairs(t *testing.T) {
	pair := "The team compared every staging result against the earlier production " +
		"numbers before anyone signed off on the release. "
	text := strings.TrimSpace(strings.Repeat(pair, 5))

	inserted := 0
	for seed := int64(0); seed < 10; seed++ {
		_, changes := BurstinessInjection{}.Apply(text, newRequest(t, 1.0, seed))
		for _, c := range changes {
			if strings.Contains(c.Description, "fragment") {
				inserted++
			}
		}
	}
	assert.Positive(t, inserted)
}

func TestBurstinessNoFragmentsForShortTexts(t *testing.T) {
	// Three sentences is below the fragment threshold.
	text := "One short line here. Another short line here. A third short line here."
	for seed := int64(0); seed < 10; seed++ {
		out, changes := BurstinessInjection{}.Apply(text, newRequest(t, 1.0, seed))
		assert.Equal(t, text, out, "seed %d", seed)
		assert.Empty(t, changes)
	}
}

func TestBurstinessDegenerateInputUnchanged(t *testing.T) {
	for _, text := range []string{"", "   ", ". . ."} {
		out, changes := BurstinessInjection{}.Apply(text, newRequest(t, 1.0, 42))
		assert.Equal(t, text, out)
		assert.Empty(t, changes)
	}
}
