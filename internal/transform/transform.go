// Package transform implements the rewriting passes of the humanize
// pipeline. Each pass is independent, deterministic under a seeded RNG,
// and degrades to a no-op on degenerate input. Local failures (no valid
// split point, no synonym) skip the single candidate and never abort the
// pass.
package transform

import (
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/prosal/internal/langpack"
	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// ChangeRecord describes one applied edit.
type ChangeRecord struct {
	Pass        string `json:"pass"`
	Description string `json:"description"`
	Before      string `json:"before,omitempty"`
	After       string `json:"after,omitempty"`
}

// Request carries the per-call state a pass needs. The RNG is owned by the
// orchestrator and shared across passes within one call; passes must not
// draw from it when Strength is 0.
type Request struct {
	Strength  float64
	RNG       *rand.Rand
	Pack      *langpack.Pack
	Protected *Protected
	Tag       language.Tag

	// TargetSentenceLen bounds sentence length for the structural pass.
	TargetSentenceLen int
	// MaxConnectorSwaps caps connector replacements per structural call.
	MaxConnectorSwaps int
}

// Pass is one rewriting stage. Apply returns the (possibly unchanged) text
// and the edits made. Strength 0 must return the input text untouched
// without consuming RNG state.
type Pass interface {
	Name() string
	Apply(text string, req Request) (string, []ChangeRecord)
}

// splitPoint locates a clause boundary in tokens near the midpoint:
// either a split conjunction token or a token with a trailing comma,
// searched within the middle 40% of the sentence, closest to center first.
// Returns the index where the second clause begins, or -1.
func splitPoint(tokens []string, pack *langpack.Pack) int {
	n := len(tokens)
	if n < 6 {
		return -1
	}
	lo, hi := n*3/10, n*7/10
	if lo < 1 {
		lo = 1
	}
	mid := n / 2

	best, bestDist := -1, n
	for i := lo; i <= hi && i < n; i++ {
		var candidate int
		switch {
		case pack.IsSplitConjunction(strings.ToLower(textseg.CleanWord(tokens[i]))):
			candidate = i
		case strings.HasSuffix(tokens[i-1], ","):
			candidate = i
		default:
			continue
		}
		dist := candidate - mid
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}

// splitSentence breaks a sentence at a clause boundary into two sentences,
// preserving the original terminal punctuation class on the second half.
// A protected token at the boundary keeps its casing.
func splitSentence(sentence string, req Request) (string, string, bool) {
	tokens := textseg.Tokens(sentence)
	k := splitPoint(tokens, req.Pack)
	if k <= 0 || k >= len(tokens) {
		return "", "", false
	}

	first := strings.Join(tokens[:k], " ")
	first = strings.TrimRight(first, ",;")
	if !endsWithTerminator(first) {
		// Keep the sentence's terminal punctuation class on both halves;
		// "!" text split in two should not turn into flat statements.
		first += terminalClass(sentence)
	}

	second := strings.Join(tokens[k:], " ")
	if !req.Protected.Blocked(tokens[k]) {
		second = capitalizeFirst(second)
	}
	return first, second, true
}

func endsWithTerminator(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	if size == 0 {
		return false
	}
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// terminalClass returns the final terminator run of a sentence ("." by
// default) so re-punctuation keeps exclamations and questions intact.
func terminalClass(s string) string {
	trimmed := strings.TrimRight(s, ".!?…")
	if term := s[len(trimmed):]; term != "" {
		return term
	}
	return "."
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Single capitals like "I" and all-caps tokens stay as they are.
	next, _ := utf8.DecodeRuneInString(s[size:])
	if unicode.IsUpper(next) || size == len(s) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// splitToken separates a raw token into leading punctuation, core word,
// and trailing punctuation so replacements keep the original marks.
func splitToken(token string) (lead, core, trailing string) {
	end := len(token)
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(token[:end])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		end -= size
	}
	start := 0
	for start < end {
		r, size := utf8.DecodeRuneInString(token[start:end])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			break
		}
		start += size
	}
	return token[:start], token[start:end], token[end:]
}

func joinSentences(sentences []string) string {
	return strings.Join(sentences, " ")
}

// mapParagraphSentences applies fn to the sentence list of each paragraph
// and reassembles the text, preserving blank-line paragraph structure.
// Returns the input unchanged when fn changes nothing.
func mapParagraphSentences(text string, pack *langpack.Pack, fn func([]string) []string) string {
	paragraphs := textseg.Paragraphs(text)
	if len(paragraphs) == 0 {
		return text
	}
	changed := false
	out := make([]string, len(paragraphs))
	for i, para := range paragraphs {
		sentences := textseg.Split(para, pack)
		mapped := fn(sentences)
		joined := joinSentences(mapped)
		out[i] = joined
		if joined != joinSentences(sentences) {
			changed = true
		}
	}
	if !changed {
		return text
	}
	return textseg.JoinParagraphs(out)
}
