// Package region selects the main content region of a stripped HTML
// document. Candidates are gathered from a fixed preference order of
// container patterns and scored by the length of their normalized text, so
// a short decorative <article> never beats a long content div.
package region

import (
	"regexp"

	"github.com/hyperifyio/goarticle/internal/plaintext"
)

// Kind names the container pattern a region was selected from.
type Kind string

const (
	KindArticle   Kind = "article"
	KindMain      Kind = "main"
	KindContainer Kind = "container"
	KindBody      Kind = "body"
	KindDocument  Kind = "document"
)

// Candidate is a region of the stripped document under consideration as the
// main content, scored by normalized text length.
type Candidate struct {
	Kind  Kind
	Inner string
	Score int
}

// candidatePatterns in preference order. Each pattern captures the inner
// HTML of one container occurrence; all occurrences are scored, not just
// the first.
var candidatePatterns = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{KindArticle, regexp.MustCompile(`(?is)<article\b[^>]*>(.*?)</article\s*>`)},
	{KindMain, regexp.MustCompile(`(?is)<main\b[^>]*>(.*?)</main\s*>`)},
	{KindContainer, regexp.MustCompile(`(?is)<(?:div|section)\b[^>]*\bclass\s*=\s*["'][^"']*(?:post-content|entry-content|article-content|article-body|post-body|content-area|content)[^"']*["'][^>]*>(.*?)</(?:div|section)\s*>`)},
}

var bodyRe = regexp.MustCompile(`(?is)<body\b[^>]*>(.*?)</body\s*>`)

// Select returns the best-scoring candidate region of stripped. Ties resolve
// by pattern preference order, then by earliest position in the document.
// When every candidate is empty after normalization, the <body> region is
// used; a document without a body tag is used whole.
func Select(stripped string) Candidate {
	best := Candidate{Score: -1}
	for _, p := range candidatePatterns {
		for _, m := range p.re.FindAllStringSubmatchIndex(stripped, -1) {
			inner := stripped[m[2]:m[3]]
			score := len(plaintext.Clean(inner))
			if score > best.Score {
				best = Candidate{Kind: p.kind, Inner: inner, Score: score}
			}
		}
	}
	if best.Score > 0 {
		return best
	}
	if m := bodyRe.FindStringSubmatchIndex(stripped); m != nil {
		inner := stripped[m[2]:m[3]]
		return Candidate{Kind: KindBody, Inner: inner, Score: len(plaintext.Clean(inner))}
	}
	return Candidate{Kind: KindDocument, Inner: stripped, Score: len(plaintext.Clean(stripped))}
}
