package transform

import (
	"strings"

	"github.com/gobwas/glob"
)

// Protected holds the brand/keep-list tokens no pass may alter. Matching
// is exact and case-insensitive; entries containing glob metacharacters
// ('*', '?', '[') are compiled as patterns.
type Protected struct {
	exact    map[string]struct{}
	patterns []glob.Glob
}

// NewProtected builds a protected-term matcher from the union of brand
// terms and keep keywords. Invalid glob patterns degrade to exact matches.
func NewProtected(terms []string) *Protected {
	p := &Protected{exact: map[string]struct{}{}}
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.ContainsAny(t, "*?[") {
			if g, err := glob.Compile(t); err == nil {
				p.patterns = append(p.patterns, g)
				continue
			}
		}
		p.exact[t] = struct{}{}
	}
	return p
}

// Blocked reports whether a token is protected. Trailing and leading
// punctuation on the token is ignored. Nil receivers block nothing.
func (p *Protected) Blocked(token string) bool {
	if p == nil {
		return false
	}
	_, core, _ := splitToken(token)
	key := strings.ToLower(core)
	if key == "" {
		return false
	}
	if _, ok := p.exact[key]; ok {
		return true
	}
	for _, g := range p.patterns {
		if g.Match(key) {
			return true
		}
	}
	return false
}

// BlockedIn reports whether any token of the given text is protected.
func (p *Protected) BlockedIn(text string) bool {
	if p == nil {
		return false
	}
	for _, tok := range strings.Fields(text) {
		if p.Blocked(tok) {
			return true
		}
	}
	return false
}
