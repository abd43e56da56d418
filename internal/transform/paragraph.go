package transform

import (
	"fmt"

	"git.home.luguber.info/inful/prosal/internal/textmetrics"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// minParagraphsForRhythm is the paragraph count below which there is not
// enough material to vary.
const minParagraphsForRhythm = 3

// shortParagraphFactor marks paragraphs at or below this fraction of the
// average length as merge candidates.
const shortParagraphFactor = 0.7

// ParagraphRhythm merges adjacent short paragraphs to break up the
// uniform paragraphing typical of generated text.
type ParagraphRhythm struct{}

func (ParagraphRhythm) Name() string { return "paragraph" }

func (p ParagraphRhythm) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	paragraphs := textseg.Paragraphs(text)
	if len(paragraphs) < minParagraphsForRhythm {
		return text, nil
	}

	counts := make([]float64, len(paragraphs))
	for i, para := range paragraphs {
		counts[i] = float64(textseg.WordCount(para))
	}
	avg := textmetrics.Mean(counts)
	if avg == 0 {
		return text, nil
	}

	var changes []ChangeRecord
	out := make([]string, 0, len(paragraphs))
	for i := 0; i < len(paragraphs); i++ {
		if i+1 < len(paragraphs) &&
			counts[i] <= shortParagraphFactor*avg &&
			counts[i+1] <= shortParagraphFactor*avg &&
			req.RNG.Float64() < req.Strength {
			out = append(out, paragraphs[i]+" "+paragraphs[i+1])
			changes = append(changes, ChangeRecord{
				Pass:        p.Name(),
				Description: fmt.Sprintf("merged two short paragraphs (%d and %d words)", int(counts[i]), int(counts[i+1])),
			})
			i++
			continue
		}
		out = append(out, paragraphs[i])
	}
	if len(changes) == 0 {
		return text, nil
	}
	return textseg.JoinParagraphs(out), changes
}
