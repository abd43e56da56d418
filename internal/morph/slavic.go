package morph

import "strings"

// Common Russian endings ordered longest-first so the most specific match
// wins. Covers frequent verb and adjective paradigm endings only; anything
// else falls through to casing-only matching.
var ruEndings = []string{
	"ться", "ется", "ются", "ится",
	"ать", "ять", "еть", "ить", "уть",
	"ала", "яла", "ела", "ила",
	"али", "яли", "ели", "или",
	"ает", "яет", "еет", "ует",
	"ают", "яют", "уют",
	"ый", "ий", "ой", "ая", "яя", "ое", "ее", "ые", "ие",
	"ого", "его", "ому", "ему", "ыми", "ими",
}

// matchSlavicSuffix transfers the original's recognized ending onto the
// candidate when the candidate carries a recognized ending of the same
// paradigm length class. Best effort.
func matchSlavicSuffix(original, candidate string) string {
	origEnd := recognizedEnding(original)
	if origEnd == "" {
		return candidate
	}
	candEnd := recognizedEnding(strings.ToLower(candidate))
	if candEnd == "" || candEnd == origEnd {
		return candidate
	}
	return candidate[:len(candidate)-len(candEnd)] + origEnd
}

func recognizedEnding(w string) string {
	for _, end := range ruEndings {
		if strings.HasSuffix(w, end) && len(w) > len(end)+2 {
			return end
		}
	}
	return ""
}
