package textseg

import (
	"strings"
	"unicode"

	"git.home.luguber.info/inful/prosal/internal/langpack"
)

// DetectLang resolves lang="auto" with a lightweight script and stopword
// heuristic across the supported languages. Defaults to English when
// nothing matches.
func DetectLang(text string) string {
	cyrillic, latin := 0, 0
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	if cyrillic > latin {
		return "ru"
	}
	if latin == 0 {
		return "en"
	}

	// Same script family: pick the language whose stopwords hit most.
	best, bestHits := "en", -1
	words := Words(text)
	for _, lang := range langpack.Languages() {
		pack, err := langpack.Get(lang)
		if err != nil {
			continue
		}
		hits := 0
		for _, w := range words {
			if pack.IsStopword(strings.ToLower(w)) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = lang, hits
		}
	}
	return best
}
