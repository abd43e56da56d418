// Package textseg segments raw text into sentences, words, and paragraphs.
// All functions are pure; callers re-derive segments from their current
// buffer instead of sharing them across passes.
package textseg

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"git.home.luguber.info/inful/prosal/internal/langpack"
)

// terminators end a sentence when followed by whitespace or end of input.
func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

// isClosing matches quote and bracket runes that may trail a terminator.
func isClosing(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '»', '”', '’':
		return true
	}
	return false
}

// Split segments text into sentence strings. It does not split on decimal
// points or known abbreviations from the pack. Joining the result with a
// single space reproduces the input up to whitespace normalization.
func Split(text string, pack *langpack.Pack) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if !isTerminator(r) {
			continue
		}

		// Consume a terminator run ("...", "?!") as one boundary.
		for i+1 < len(runes) && isTerminator(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		// Attach trailing closing quotes/brackets to this sentence.
		for i+1 < len(runes) && isClosing(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}

		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue // mid-token period, e.g. "3.14" or "v1.2"
		}
		if r := nextNonSpace(runes, i); unicode.IsLower(r) {
			continue // lowercase continuation, e.g. after an ellipsis
		}
		if r == '.' {
			if prevDigit(runes, i) && nextNonSpaceDigit(runes, i) {
				continue // decimal split across whitespace is unlikely but cheap to check
			}
			if word := trailingWord(current.String()); word != "" {
				if pack != nil && pack.IsAbbreviation(word) {
					continue
				}
				// Single-letter initials ("J. Smith").
				if utf8.RuneCountInString(word) == 1 && isUpperWord(word) {
					continue
				}
			}
		}
		flush()
	}
	flush()
	return sentences
}

func prevDigit(runes []rune, i int) bool {
	return i > 0 && unicode.IsDigit(runes[i-1])
}

func nextNonSpace(runes []rune, i int) rune {
	for j := i + 1; j < len(runes); j++ {
		if !unicode.IsSpace(runes[j]) {
			return runes[j]
		}
	}
	return 0
}

func nextNonSpaceDigit(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if unicode.IsSpace(runes[j]) {
			continue
		}
		return unicode.IsDigit(runes[j])
	}
	return false
}

// trailingWord extracts the word immediately before the final period of s,
// excluding the period itself but keeping interior periods ("e.g").
func trailingWord(s string) string {
	s = strings.TrimRight(s, ".!?…")
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	return s[idx+1:]
}

func isUpperWord(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}

// Tokens splits a sentence into whitespace-delimited raw tokens with
// punctuation still attached.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// CleanWord strips non-letter, non-digit runes from both edges of a token.
// Interior punctuation (apostrophes, hyphens) is preserved.
func CleanWord(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// WordCount counts tokens that contain at least one letter or digit.
func WordCount(s string) int {
	n := 0
	for _, tok := range Tokens(s) {
		if CleanWord(tok) != "" {
			n++
		}
	}
	return n
}

// Words returns the cleaned, non-empty words of a sentence.
func Words(s string) []string {
	var words []string
	for _, tok := range Tokens(s) {
		if w := CleanWord(tok); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// Paragraphs splits text on blank lines into trimmed paragraph strings.
// Empty paragraphs are dropped.
func Paragraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinParagraphs reassembles paragraphs with blank-line separators.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}
