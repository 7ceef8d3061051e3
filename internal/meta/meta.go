// Package meta extracts short metadata fields (title, author) from stripped
// HTML using ordered preference lists. The first pattern producing non-empty
// text after cleanup wins; nothing matching yields an empty string.
package meta

import (
	"regexp"

	"github.com/hyperifyio/goarticle/internal/plaintext"
)

var (
	h1Re      = regexp.MustCompile(`(?is)<h1\b[^>]*>(.*?)</h1\s*>`)
	ogTitleRe = regexp.MustCompile(`(?is)<meta\b[^>]+property\s*=\s*["']og:title["'][^>]*content\s*=\s*["']([^"']+)["']`)
	titleRe   = regexp.MustCompile(`(?is)<title\b[^>]*>(.*?)</title\s*>`)
	// RE2 has no backreferences, so the heading close tag is an alternation
	// rather than a match of the opening tag.
	classTitleRe = regexp.MustCompile(`(?is)<h[12]\b[^>]*\bclass\s*=\s*["'][^"']*(?:post-title|entry-title|article-title)[^"']*["'][^>]*>(.*?)</h[12]\s*>`)

	metaAuthorRe  = regexp.MustCompile(`(?is)<meta\b[^>]+name\s*=\s*["']author["'][^>]*content\s*=\s*["']([^"']+)["']`)
	classAuthorRe = regexp.MustCompile(`(?is)<(?:span|div)\b[^>]*\bclass\s*=\s*["'][^"']*(?:author|byline|post-author)[^"']*["'][^>]*>(.*?)</(?:span|div)\s*>`)
	relAuthorRe   = regexp.MustCompile(`(?is)<a\b[^>]+rel\s*=\s*["']author["'][^>]*>(.*?)</a\s*>`)
)

// Title returns the page title, preferring an <h1> inside the selected main
// region, then og:title, then the <title> tag, then headings with a known
// title class anywhere in the stripped document.
func Title(mainRegion, stripped string) string {
	if t := firstClean(h1Re, mainRegion); t != "" {
		return t
	}
	for _, re := range []*regexp.Regexp{ogTitleRe, titleRe, classTitleRe} {
		if t := firstClean(re, stripped); t != "" {
			return t
		}
	}
	return ""
}

// Author returns the byline, preferring the author meta tag, then elements
// with byline/author class names, then rel="author" link text.
func Author(stripped string) string {
	for _, re := range []*regexp.Regexp{metaAuthorRe, classAuthorRe, relAuthorRe} {
		if a := firstClean(re, stripped); a != "" {
			return a
		}
	}
	return ""
}

func firstClean(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return plaintext.Clean(m[1])
}
