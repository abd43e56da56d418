package transform

import (
	"fmt"

	"git.home.luguber.info/inful/prosal/internal/textmetrics"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// highCVThreshold is the coefficient of variation above which sentence
// lengths are already varied enough to leave alone.
const highCVThreshold = 0.5

// splitCandidateFactor marks sentences this many times longer than the
// mean as split candidates.
const splitCandidateFactor = 1.8

// LengthVariation splits overlong sentences at clause boundaries to raise
// sentence-length variance. Text whose lengths already vary strongly is
// returned untouched.
type LengthVariation struct{}

func (LengthVariation) Name() string { return "lengthvar" }

func (p LengthVariation) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	all := textseg.Split(text, req.Pack)
	if len(all) == 0 {
		return text, nil
	}

	lengths := textmetrics.SentenceLengths(all)
	mean := textmetrics.Mean(lengths)
	if mean == 0 {
		return text, nil
	}
	if textmetrics.CoefficientOfVariation(lengths) > highCVThreshold {
		return text, nil
	}

	var changes []ChangeRecord
	out := mapParagraphSentences(text, req.Pack, func(sentences []string) []string {
		mapped := make([]string, 0, len(sentences))
		for _, s := range sentences {
			wc := float64(textseg.WordCount(s))
			if wc < splitCandidateFactor*mean {
				mapped = append(mapped, s)
				continue
			}
			if req.RNG.Float64() >= req.Strength {
				mapped = append(mapped, s)
				continue
			}
			first, second, ok := splitSentence(s, req)
			if !ok {
				mapped = append(mapped, s)
				continue
			}
			mapped = append(mapped, first, second)
			changes = append(changes, ChangeRecord{
				Pass:        p.Name(),
				Description: fmt.Sprintf("split %d-word sentence at clause boundary", int(wc)),
				Before:      s,
				After:       first + " " + second,
			})
		}
		return mapped
	})
	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}
