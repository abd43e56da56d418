package morph

import "strings"

// matchEnglishSuffix carries common English verb/plural endings from the
// original onto the candidate. Best effort: unknown shapes leave the
// candidate untouched and the casing rule still applies.
func matchEnglishSuffix(original, candidate string) string {
	lc := strings.ToLower(candidate)

	switch {
	case strings.HasSuffix(original, "ing") && len(original) > 4:
		if strings.HasSuffix(lc, "ing") {
			return candidate
		}
		return gerund(candidate)
	case strings.HasSuffix(original, "ed") && len(original) > 3:
		if strings.HasSuffix(lc, "ed") {
			return candidate
		}
		return past(candidate)
	case strings.HasSuffix(original, "s") && !strings.HasSuffix(original, "ss") && len(original) > 3:
		if strings.HasSuffix(lc, "s") {
			return candidate
		}
		return plural(candidate)
	}
	return candidate
}

func gerund(w string) string {
	switch {
	case strings.HasSuffix(w, "ie"):
		return w[:len(w)-2] + "ying"
	case strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "ee"):
		return w[:len(w)-1] + "ing"
	default:
		return w + "ing"
	}
}

func past(w string) string {
	switch {
	case strings.HasSuffix(w, "e"):
		return w + "d"
	case strings.HasSuffix(w, "y") && len(w) > 2 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ied"
	default:
		return w + "ed"
	}
}

func plural(w string) string {
	switch {
	case strings.HasSuffix(w, "y") && len(w) > 2 && !isVowel(w[len(w)-2]):
		return w[:len(w)-1] + "ies"
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"),
		strings.HasSuffix(w, "ch"), strings.HasSuffix(w, "sh"):
		return w + "es"
	default:
		return w + "s"
	}
}

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
