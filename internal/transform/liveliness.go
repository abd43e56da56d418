package transform

import (
	"fmt"
	"strings"
	"unicode"

	"git.home.luguber.info/inful/prosal/internal/textseg"
)

// minWordsForMarker is the sentence length below which a discourse marker
// would dominate the sentence.
const minWordsForMarker = 5

// markerWeight scales down the per-sentence insertion probability; markers
// lose their effect when every sentence carries one.
const markerWeight = 0.4

// LivelinessInjection prepends conversational discourse markers to longer
// sentences and rewrites semicolons. Each marker is used at most once per
// call; an exhausted pool ends insertion for the call.
type LivelinessInjection struct{}

func (LivelinessInjection) Name() string { return "liveliness" }

func (p LivelinessInjection) Apply(text string, req Request) (string, []ChangeRecord) {
	if req.Strength <= 0 {
		return text, nil
	}
	if len(req.Pack.DiscourseMarkers) == 0 {
		return text, nil
	}
	if len(textseg.Split(text, req.Pack)) == 0 {
		return text, nil
	}

	// Shuffled copy; markers are popped as they are consumed.
	pool := make([]string, len(req.Pack.DiscourseMarkers))
	copy(pool, req.Pack.DiscourseMarkers)
	req.RNG.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	var changes []ChangeRecord
	out := mapParagraphSentences(text, req.Pack, func(sentences []string) []string {
		mapped := make([]string, len(sentences))
		for i, s := range sentences {
			if rewritten, n := rewriteSemicolons(s, req); n > 0 {
				s = rewritten
				for k := 0; k < n; k++ {
					changes = append(changes, ChangeRecord{
						Pass:        p.Name(),
						Description: "replaced semicolon with sentence break",
					})
				}
			}

			if len(pool) > 0 && textseg.WordCount(s) >= minWordsForMarker &&
				!startsWithMarker(s) &&
				req.RNG.Float64() < req.Strength*markerWeight {
				marker := pool[len(pool)-1]
				pool = pool[:len(pool)-1]
				rest := s
				if !req.Protected.Blocked(firstToken(s)) {
					rest = lowerFirst(s)
				}
				s = marker + ", " + rest
				changes = append(changes, ChangeRecord{
					Pass:        p.Name(),
					Description: fmt.Sprintf("prepended discourse marker %q", marker),
				})
			}
			mapped[i] = s
		}
		return mapped
	})
	if len(changes) == 0 {
		return text, nil
	}
	return out, changes
}

// startsWithMarker avoids stacking a marker onto a sentence that already
// opens with an interjection followed by a comma.
func startsWithMarker(s string) bool {
	idx := strings.IndexRune(s, ',')
	if idx < 0 || idx > 20 {
		return false
	}
	head := s[:idx]
	for _, r := range head {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '\'' {
			return false
		}
	}
	return len(strings.Fields(head)) <= 2
}
