// Package mdmask shields markdown code and links from the humanize
// pipeline. Code spans, code block content, and URLs are swapped for
// opaque placeholder tokens before processing and restored afterwards;
// the placeholders double as protected terms so no pass rewrites them.
package mdmask

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Replacement pairs a placeholder token with the original source snippet.
type Replacement struct {
	Token    string
	Original string
}

var urlPattern = regexp.MustCompile(`https?://[^\s)\]>]+`)

type span struct{ start, stop int }

// Mask replaces code content and URLs with placeholder tokens. The
// returned replacements restore the text via Unmask; their tokens should
// be added to the keep-list of the humanize call.
func Mask(source string) (string, []Replacement) {
	src := []byte(source)
	spans := codeSpans(src)
	spans = mergeSpans(spans)

	var replacements []Replacement
	nextToken := func(original string) string {
		token := fmt.Sprintf("XMD%04dX", len(replacements))
		replacements = append(replacements, Replacement{Token: token, Original: original})
		return token
	}

	// Replace code ranges back to front so earlier offsets stay valid.
	masked := source
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		if s.start < 0 || s.stop > len(masked) || s.start >= s.stop {
			continue
		}
		masked = masked[:s.start] + nextToken(masked[s.start:s.stop]) + masked[s.stop:]
	}

	masked = urlPattern.ReplaceAllStringFunc(masked, func(url string) string {
		return nextToken(url)
	})

	return masked, replacements
}

// Unmask restores the original snippets for all placeholder tokens.
func Unmask(masked string, replacements []Replacement) string {
	out := masked
	for _, r := range replacements {
		out = strings.ReplaceAll(out, r.Token, r.Original)
	}
	return out
}

// Tokens returns just the placeholder tokens, for the protected-term list.
func Tokens(replacements []Replacement) []string {
	tokens := make([]string, len(replacements))
	for i, r := range replacements {
		tokens[i] = r.Token
	}
	return tokens
}

// codeSpans parses the markdown AST and collects source byte ranges of
// code span and code block content.
func codeSpans(src []byte) []span {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var spans []span

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		addLines := func(lines *text.Segments) {
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				spans = append(spans, span{seg.Start, seg.Stop})
			}
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			addLines(node.Lines())
		case *ast.CodeBlock:
			addLines(node.Lines())
		case *ast.CodeSpan:
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					spans = append(spans, span{t.Segment.Start, t.Segment.Stop})
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return spans
}

// mergeSpans sorts and coalesces overlapping or adjacent ranges.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return spans
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.stop {
			if s.stop > last.stop {
				last.stop = s.stop
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}
