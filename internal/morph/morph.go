// Package morph adjusts replacement words to carry the surface form of the
// word they replace: casing pattern first, then a best-effort inflection
// match for languages with rules.
package morph

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchForm returns candidate shaped like original. Rules, in priority
// order: ALL-CAPS originals (length > 1) upper-case the candidate;
// capitalized originals capitalize the candidate's first letter; everything
// else returns the candidate as-is. Inflection matching runs first and
// feeds its result through the casing rules. Given a non-empty candidate
// the result is always non-empty.
func MatchForm(original, candidate string) string {
	return MatchFormLang(original, candidate, language.English)
}

// MatchFormLang is MatchForm with an explicit language tag controlling the
// casing tables and the inflection rules.
func MatchFormLang(original, candidate string, tag language.Tag) string {
	if candidate == "" {
		return candidate
	}
	if original == "" {
		return candidate
	}

	inflected := matchInflection(original, candidate, tag)

	if isAllUpper(original) && utf8.RuneCountInString(original) > 1 {
		return cases.Upper(tag).String(inflected)
	}
	if startsUpper(original) {
		return capitalizeFirst(inflected)
	}
	return inflected
}

func matchInflection(original, candidate string, tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return matchEnglishSuffix(strings.ToLower(original), candidate)
	case "ru":
		return matchSlavicSuffix(strings.ToLower(original), candidate)
	}
	return candidate
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
