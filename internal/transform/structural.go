package transform

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// connectorWeight raises the edit probability for connector openers above
// the base strength; leading connectors are the strongest generated-text
// tell the pass handles.
const connectorWeight = 1.5

// defaultMaxConnectorSwaps bounds connector replacements per call when the
// profile does not set its own limit.
const defaultMaxConnectorSwaps = 3

// StructuralDiversification varies repeated sentence openers, swaps
// overused discourse connectors, and splits overlong sentences.
type StructuralDiversification struct{}

func (StructuralDiversification) Name() string { return "structural" }

func (p StructuralDiversification) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	if len(textseg.Split(text, req.Pack)) == 0 {
		return text, nil
	}

	maxSwaps := req.MaxConnectorSwaps
	if maxSwaps <= 0 {
		maxSwaps = defaultMaxConnectorSwaps
	}
	targetLen := req.TargetSentenceLen
	if targetLen <= 0 {
		targetLen = 20
	}

	var changes []ChangeRecord
	swaps := 0
	prevOpener := ""

	out := mapParagraphSentences(text, req.Pack, func(sentences []string) []string {
		mapped := make([]string, 0, len(sentences))
		for _, s := range sentences {
			opener := strings.ToLower(textseg.CleanWord(firstToken(s)))

			switch {
			case opener != "" && req.Pack.IsConnector(opener):
				if replaced, rec, ok := p.swapConnector(s, req, swaps < maxSwaps); ok {
					s = replaced
					changes = append(changes, rec)
					swaps++
					opener = strings.ToLower(textseg.CleanWord(firstToken(s)))
				}
			case opener != "" && opener == prevOpener && len(req.Pack.Starters) > 0:
				if varied, rec, ok := p.varyOpener(s, req); ok {
					s = varied
					changes = append(changes, rec)
					opener = strings.ToLower(textseg.CleanWord(firstToken(s)))
				}
			}
			prevOpener = opener

			if len(req.Pack.SplitConjunctions) > 0 && textseg.WordCount(s) > 2*targetLen &&
				req.RNG.Float64() < req.Strength {
				if first, second, ok := splitSentence(s, req); ok {
					mapped = append(mapped, first, second)
					changes = append(changes, ChangeRecord{
						Pass:        p.Name(),
						Description: "split overlong sentence",
						Before:      s,
					})
					continue
				}
			}
			mapped = append(mapped, s)
		}
		return mapped
	})
	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}

// swapConnector replaces a sentence-leading discourse connector with an
// alternate from the pack, keeping capitalization and trailing punctuation.
func (p StructuralDiversification) swapConnector(s string, req Request, budgetLeft bool) (string, ChangeRecord, bool) {
	if !budgetLeft {
		return "", ChangeRecord{}, false
	}
	tokens := textseg.Tokens(s)
	if len(tokens) == 0 {
		return "", ChangeRecord{}, false
	}
	lead, core, trail := splitToken(tokens[0])
	if req.Protected.Blocked(core) {
		return "", ChangeRecord{}, false
	}
	if req.RNG.Float64() >= req.Strength*connectorWeight {
		return "", ChangeRecord{}, false
	}

	lower := strings.ToLower(core)
	var alts []string
	for _, c := range req.Pack.Connectors {
		if !strings.EqualFold(c, lower) {
			alts = append(alts, c)
		}
	}
	if len(alts) == 0 {
		return "", ChangeRecord{}, false
	}
	alt := alts[req.RNG.Intn(len(alts))]
	if firstRuneUpper(core) {
		alt = capitalizeFirst(alt)
	}
	tokens[0] = lead + alt + trail
	return strings.Join(tokens, " "), ChangeRecord{
		Pass:        p.Name(),
		Description: fmt.Sprintf("replaced connector %q with %q", core, alt),
	}, true
}

// varyOpener prepends a starter to a sentence that repeats the previous
// sentence's opening word.
func (p StructuralDiversification) varyOpener(s string, req Request) (string, ChangeRecord, bool) {
	if req.Protected.Blocked(firstToken(s)) {
		return "", ChangeRecord{}, false
	}
	if req.RNG.Float64() >= req.Strength {
		return "", ChangeRecord{}, false
	}
	starter := req.Pack.Starters[req.RNG.Intn(len(req.Pack.Starters))]
	return starter + ", " + lowerFirst(s), ChangeRecord{
		Pass:        p.Name(),
		Description: fmt.Sprintf("varied repeated opener with %q", starter),
	}, true
}

func firstToken(s string) string {
	tokens := textseg.Tokens(s)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

func firstRuneUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
