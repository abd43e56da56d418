package langpack

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/prosal/internal/apperr"
)

//go:embed data/*.yaml
var packData embed.FS

// packFile mirrors the on-disk YAML shape.
type packFile struct {
	Connectors        []string   `yaml:"connectors"`
	Starters          []string   `yaml:"starters"`
	SplitConjunctions []string   `yaml:"split_conjunctions"`
	DiscourseMarkers  []string   `yaml:"discourse_markers"`
	Fragments         []string   `yaml:"fragments"`
	SynonymGroups     [][]string `yaml:"synonym_groups"`
	Stopwords         []string   `yaml:"stopwords"`
	Abbreviations     []string   `yaml:"abbreviations"`
}

// registry is the process-wide pack cache. Packs are loaded once and are
// read-only afterwards; the mutex guards first-load only, to avoid
// duplicate parsing, not for data-race correctness on reads.
type registry struct {
	mu    sync.Mutex
	packs map[string]*Pack
}

var global = &registry{packs: map[string]*Pack{}}

// Languages lists the languages with embedded pack data.
func Languages() []string {
	return []string{"en", "ru"}
}

// Get returns the pack for a language code, loading and caching it on
// first access. Unknown language codes are a caller contract violation.
func Get(lang string) (*Pack, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if p, ok := global.packs[lang]; ok {
		return p, nil
	}

	data, err := packData.ReadFile(fmt.Sprintf("data/%s.yaml", lang))
	if err != nil {
		return nil, apperr.Validation("unknown language %q (available: %v)", lang, Languages())
	}

	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, apperr.Wrap(err, apperr.CategoryInternal, apperr.SeverityFatal, "parse language pack "+lang)
	}

	pack := &Pack{
		Lang:              lang,
		Connectors:        pf.Connectors,
		Starters:          pf.Starters,
		SplitConjunctions: pf.SplitConjunctions,
		DiscourseMarkers:  pf.DiscourseMarkers,
		Fragments:         pf.Fragments,
		SynonymGroups:     pf.SynonymGroups,
		Stopwords:         pf.Stopwords,
		Abbreviations:     pf.Abbreviations,
	}
	pack.normalize()
	global.packs[lang] = pack
	return pack, nil
}

// Reset clears the process-wide pack cache. Intended for tests.
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.packs = map[string]*Pack{}
}
