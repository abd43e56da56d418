package transform

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/prosal/internal/morph"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// RepetitionReduction swaps repeated content words and repeated bigrams
// for pack synonyms, keeping the original casing and trailing punctuation.
// The first occurrence is never touched.
type RepetitionReduction struct{}

func (RepetitionReduction) Name() string { return "repetition" }

func (p RepetitionReduction) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	sentences := textseg.Split(text, req.Pack)
	if len(sentences) == 0 {
		return text, nil
	}

	wordCounts := map[string]int{}
	bigramCounts := map[string]int{}
	for _, s := range sentences {
		prev := ""
		for _, w := range contentWords(s, req) {
			wordCounts[w]++
			if prev != "" {
				bigramCounts[prev+" "+w]++
			}
			prev = w
		}
	}

	var changes []ChangeRecord
	seen := map[string]int{}
	seenBigrams := map[string]int{}

	out := mapParagraphSentences(text, req.Pack, func(paraSentences []string) []string {
		mapped := make([]string, len(paraSentences))
		for si, s := range paraSentences {
			if len(contentWords(s, req)) == 0 {
				mapped[si] = s
				continue
			}
			tokens := textseg.Tokens(s)
			prev := ""
			for ti, tok := range tokens {
				lead, core, trail := splitToken(tok)
				key := strings.ToLower(core)
				isContent := key != "" && !req.Pack.IsStopword(key)
				if !isContent {
					continue
				}

				bigram := ""
				if prev != "" {
					bigram = prev + " " + key
				}
				repeatedWord := wordCounts[key] >= 2 && seen[key] >= 1
				repeatedBigram := bigram != "" && bigramCounts[bigram] >= 2 && seenBigrams[bigram] >= 1

				seen[key]++
				if bigram != "" {
					seenBigrams[bigram]++
				}
				prevWord := prev
				prev = key

				if !repeatedWord && !repeatedBigram {
					continue
				}
				if req.Protected.Blocked(core) {
					continue
				}
				if req.RNG.Float64() >= req.Strength {
					continue
				}
				alts := req.Pack.Synonyms(key)
				if len(alts) == 0 {
					continue
				}
				alt := alts[req.RNG.Intn(len(alts))]
				replacement := morph.MatchFormLang(core, alt, req.Tag)
				tokens[ti] = lead + replacement + trail
				prev = strings.ToLower(replacement)

				what := "word"
				if repeatedBigram && !repeatedWord {
					what = "bigram " + prevWord + " " + key
				}
				changes = append(changes, ChangeRecord{
					Pass:        p.Name(),
					Description: fmt.Sprintf("replaced repeated %s %q with %q", what, core, replacement),
				})
			}
			mapped[si] = strings.Join(tokens, " ")
		}
		return mapped
	})
	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}

// contentWords returns the lowercased open-class words of a sentence.
func contentWords(s string, req Request) []string {
	var words []string
	for _, w := range textseg.Words(s) {
		lw := strings.ToLower(w)
		if req.Pack.IsStopword(lw) {
			continue
		}
		words = append(words, lw)
	}
	return words
}
