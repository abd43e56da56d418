package transform

import (
	"fmt"

	"git.home.luguber.info/inful/prosal/internal/textmetrics"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// longSentenceWords is the word count beyond which a sentence gets a
// clause-boundary split attempt.
const longSentenceWords = 25

// fragmentPairWords marks adjacent sentence pairs both longer than this as
// monotony candidates for fragment insertion.
const fragmentPairWords = 15

// minSentencesForFragments is the sentence count below which fragment
// insertion would distort rather than vary the text.
const minSentencesForFragments = 4

// fragmentWeight halves fragment-insertion probability relative to splits;
// inserted sentences are new content and should stay rare.
const fragmentWeight = 0.5

// BurstinessInjection breaks up monotonous runs of long sentences: long
// sentences are split at clause boundaries and short fragments are placed
// between adjacent long pairs. Terminal punctuation class is preserved.
type BurstinessInjection struct{}

func (BurstinessInjection) Name() string { return "burstiness" }

func (p BurstinessInjection) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	all := textseg.Split(text, req.Pack)
	if len(all) == 0 {
		return text, nil
	}
	if textmetrics.AvgSentenceLength(all) == 0 {
		return text, nil
	}
	totalSentences := len(all)

	var changes []ChangeRecord
	out := mapParagraphSentences(text, req.Pack, func(sentences []string) []string {
		// Split pass over long sentences.
		split := make([]string, 0, len(sentences))
		for _, s := range sentences {
			if textseg.WordCount(s) > longSentenceWords && req.RNG.Float64() < req.Strength {
				if first, second, ok := splitSentence(s, req); ok {
					split = append(split, first, second)
					changes = append(changes, ChangeRecord{
						Pass:        p.Name(),
						Description: "split long sentence at clause boundary",
						Before:      s,
					})
					continue
				}
			}
			split = append(split, s)
		}

		if totalSentences < minSentencesForFragments || len(req.Pack.Fragments) == 0 {
			return split
		}

		// Fragment insertion between adjacent long pairs.
		mapped := make([]string, 0, len(split))
		for i, s := range split {
			mapped = append(mapped, s)
			if i+1 >= len(split) {
				continue
			}
			if textseg.WordCount(s) <= fragmentPairWords ||
				textseg.WordCount(split[i+1]) <= fragmentPairWords {
				continue
			}
			if req.RNG.Float64() >= req.Strength*fragmentWeight {
				continue
			}
			fragment := req.Pack.Fragments[req.RNG.Intn(len(req.Pack.Fragments))]
			// Keep the surrounding terminal punctuation classes; the
			// fragment carries its own terminator from the pack.
			mapped = append(mapped, fragment)
			changes = append(changes, ChangeRecord{
				Pass:        p.Name(),
				Description: fmt.Sprintf("inserted fragment %q between long sentences", fragment),
			})
		}
		return mapped
	})
	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}
