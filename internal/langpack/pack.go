// Package langpack provides per-language word tables consumed by the
// transform passes and the sentence splitter. Packs are immutable after
// load and shared between calls.
package langpack

import "strings"

// Pack is a typed capability record for one language. Every category is
// always present; missing data yields an empty (never nil) collection so
// call sites need no special-casing.
type Pack struct {
	Lang string

	// Connectors are discourse connectors commonly opening machine-written
	// sentences ("furthermore", "moreover"). Ordered; alternates are drawn
	// from the same set.
	Connectors []string

	// Starters are casual sentence openers used when diversifying repeated
	// opening words.
	Starters []string

	// SplitConjunctions mark clause boundaries eligible as split points.
	SplitConjunctions []string

	// DiscourseMarkers are short interjections prepended by the liveliness
	// pass ("honestly", "look").
	DiscourseMarkers []string

	// Fragments are short standalone sentences inserted between runs of
	// long sentences.
	Fragments []string

	// SynonymGroups are interchangeable word sets for repetition reduction.
	SynonymGroups [][]string

	// Stopwords are closed-class words excluded from content-word tracking.
	Stopwords []string

	// Abbreviations are period-terminated tokens that never end a sentence
	// ("dr", "e.g"). Stored without the trailing period, lowercase.
	Abbreviations []string

	stopwordSet map[string]struct{}
	abbrevSet   map[string]struct{}
	conjSet     map[string]struct{}
	connSet     map[string]struct{}
	synIndex    map[string][]string
}

// normalize fills nil categories with empties and builds lookup indexes.
func (p *Pack) normalize() {
	if p.Connectors == nil {
		p.Connectors = []string{}
	}
	if p.Starters == nil {
		p.Starters = []string{}
	}
	if p.SplitConjunctions == nil {
		p.SplitConjunctions = []string{}
	}
	if p.DiscourseMarkers == nil {
		p.DiscourseMarkers = []string{}
	}
	if p.Fragments == nil {
		p.Fragments = []string{}
	}
	if p.SynonymGroups == nil {
		p.SynonymGroups = [][]string{}
	}
	if p.Stopwords == nil {
		p.Stopwords = []string{}
	}
	if p.Abbreviations == nil {
		p.Abbreviations = []string{}
	}

	p.stopwordSet = toSet(p.Stopwords)
	p.abbrevSet = toSet(p.Abbreviations)
	p.conjSet = toSet(p.SplitConjunctions)
	p.connSet = toSet(p.Connectors)

	p.synIndex = make(map[string][]string)
	for _, group := range p.SynonymGroups {
		for _, w := range group {
			key := strings.ToLower(w)
			for _, alt := range group {
				if !strings.EqualFold(alt, w) {
					p.synIndex[key] = append(p.synIndex[key], alt)
				}
			}
		}
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// IsStopword reports whether the lowercased word is a closed-class word.
func (p *Pack) IsStopword(word string) bool {
	_, ok := p.stopwordSet[strings.ToLower(word)]
	return ok
}

// IsAbbreviation reports whether the token (without trailing period) is a
// known abbreviation.
func (p *Pack) IsAbbreviation(token string) bool {
	_, ok := p.abbrevSet[strings.ToLower(strings.TrimSuffix(token, "."))]
	return ok
}

// IsSplitConjunction reports whether the word marks a clause boundary.
func (p *Pack) IsSplitConjunction(word string) bool {
	_, ok := p.conjSet[strings.ToLower(word)]
	return ok
}

// IsConnector reports whether the word is a discourse connector.
func (p *Pack) IsConnector(word string) bool {
	_, ok := p.connSet[strings.ToLower(word)]
	return ok
}

// Synonyms returns the alternates for a word, or an empty slice when the
// word belongs to no synonym group. Lookup is case-insensitive; returned
// words keep their pack casing (lowercase by convention).
func (p *Pack) Synonyms(word string) []string {
	return p.synIndex[strings.ToLower(word)]
}
