package transform

import (
	"strings"
	"unicode"
)

// semicolonWeight halves the edit probability for semicolon rewrites
// relative to other edits; semicolons are rarer and each rewrite is a
// bigger stylistic shift.
const semicolonWeight = 0.5

// colonHeavyThreshold is the colon count above which colon rewriting kicks in.
const colonHeavyThreshold = 2

// PunctuationVariation rewrites semicolons into sentence breaks and thins
// out colons in colon-heavy text, skipping numeric ranges and times.
type PunctuationVariation struct{}

func (PunctuationVariation) Name() string { return "punctuation" }

func (p PunctuationVariation) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	var changes []ChangeRecord

	out, n := rewriteSemicolons(text, req)
	for i := 0; i < n; i++ {
		changes = append(changes, ChangeRecord{
			Pass:        p.Name(),
			Description: "replaced semicolon with sentence break",
		})
	}

	if strings.Count(out, ":") > colonHeavyThreshold {
		var m int
		out, m = rewriteColons(out, req)
		for i := 0; i < m; i++ {
			changes = append(changes, ChangeRecord{
				Pass:        p.Name(),
				Description: "replaced colon with sentence break",
			})
		}
	}

	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}

// rewriteSemicolons replaces "; " with ". " plus a capitalized
// continuation, each occurrence gated at strength * semicolonWeight.
func rewriteSemicolons(text string, req Request) (string, int) {
	runes := []rune(text)
	var b strings.Builder
	n := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != ';' || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			b.WriteRune(r)
			continue
		}
		if req.RNG.Float64() >= req.Strength*semicolonWeight {
			b.WriteRune(r)
			continue
		}
		b.WriteString(". ")
		// Skip the whitespace and capitalize the continuation.
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < len(runes) {
			b.WriteRune(continuationRune(runes, j, req))
			i = j
		} else {
			i = j - 1
		}
		n++
	}
	return b.String(), n
}

// continuationRune capitalizes the first rune of the continuation token
// unless the token is protected; protected terms keep their casing.
func continuationRune(runes []rune, j int, req Request) rune {
	end := j
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}
	if req.Protected.Blocked(string(runes[j:end])) {
		return runes[j]
	}
	return unicode.ToUpper(runes[j])
}

// rewriteColons converts a bounded subset of colons to periods. Colons
// between digits (ranges, clock times) are left alone. At most half of the
// colons are rewritten per call.
func rewriteColons(text string, req Request) (string, int) {
	runes := []rune(text)
	budget := strings.Count(text, ":") / 2
	var b strings.Builder
	n := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != ':' || n >= budget {
			b.WriteRune(r)
			continue
		}
		prevDigit := i > 0 && unicode.IsDigit(runes[i-1])
		nextDigit := i+1 < len(runes) && unicode.IsDigit(runes[i+1])
		if prevDigit && nextDigit {
			b.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			b.WriteRune(r)
			continue
		}
		if req.RNG.Float64() >= req.Strength {
			b.WriteRune(r)
			continue
		}
		b.WriteString(". ")
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < len(runes) {
			b.WriteRune(continuationRune(runes, j, req))
			i = j
		} else {
			i = j - 1
		}
		n++
	}
	return b.String(), n
}
