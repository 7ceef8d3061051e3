// Package strip removes non-content regions from raw HTML before any
// extraction pass runs. Stripping is pure pattern matching over the markup
// string; malformed or unclosed tags simply fail to match and pass through.
package strip

import (
	"fmt"
	"regexp"
)

// pairedTags are elements whose entire region, tags and inner content, is
// boilerplate for article extraction purposes.
var pairedTags = []string{
	"script", "style", "noscript",
	"nav", "aside", "footer", "header", "iframe", "template",
}

// classMarkers are substrings that flag a class or id attribute as an
// ad/consent/boilerplate container. Matching is case-insensitive substring.
var classMarkers = []string{
	"advert", "ads", "ad-", "promo", "sponsor",
	"cookie", "consent", "gdpr",
	"newsletter", "subscribe",
	"social-share", "share-buttons", "related-posts",
	"comment", "sidebar", "popup", "modal",
}

var (
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	pairedRes = compilePaired()
	markersRe = regexp.MustCompile(
		`(?is)<\w+[^>]*\b(?:class|id)\s*=\s*["'][^"']*(?:` + alternation(classMarkers) + `)[^"']*["'][^>]*>.*?</\w+[^>]*>`)
)

func compilePaired() []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(pairedTags))
	for _, tag := range pairedTags {
		out = append(out, regexp.MustCompile(fmt.Sprintf(`(?is)<%s\b[^>]*>.*?</%s\s*>`, tag, tag)))
	}
	return out
}

func alternation(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "|"
		}
		s += regexp.QuoteMeta(p)
	}
	return s
}

// Strip returns html with scripts, styles, comments, structural chrome
// (nav/aside/footer/header/iframe/template) and elements whose class or id
// marks them as ad/cookie/newsletter boilerplate removed entirely. Regions
// whose closing tag never appears are left untouched rather than guessed at.
func Strip(html string) string {
	out := commentRe.ReplaceAllString(html, "")
	for _, re := range pairedRes {
		out = re.ReplaceAllString(out, "")
	}
	out = markersRe.ReplaceAllString(out, "")
	return out
}
