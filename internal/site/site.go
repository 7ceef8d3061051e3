// Package site resolves the page URL and derives a domain and a short site
// name from it. Site naming uses a deliberately small static suffix list,
// an approximation of public-suffix semantics, not a replacement for them.
package site

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

const unknown = "unknown"

var (
	canonicalRe = regexp.MustCompile(`(?is)<link\b[^>]+rel\s*=\s*["']canonical["'][^>]*href\s*=\s*["']([^"']+)["']`)
	ogURLRe     = regexp.MustCompile(`(?is)<meta\b[^>]+property\s*=\s*["']og:url["'][^>]*content\s*=\s*["']([^"']+)["']`)
	baseRe      = regexp.MustCompile(`(?is)<base\b[^>]*href\s*=\s*["']([^"']+)["']`)

	// bareHostRe is the last-resort host sniff for URLs net/url rejects.
	bareHostRe = regexp.MustCompile(`(?i)https?://(?:www\.)?([^/\s]+)`)
)

// knownSuffixes is the static public-suffix approximation, longest match
// first. Unlisted TLDs intentionally fall through.
var knownSuffixes = buildSuffixes()

func buildSuffixes() []string {
	s := []string{
		".co.uk", ".com.au", ".co.za", ".co.in", ".co.jp", ".co.kr",
		".com", ".net", ".org", ".edu", ".gov", ".mil", ".int",
		".info", ".biz", ".name", ".pro", ".museum", ".coop",
		".uk", ".de", ".fr", ".it", ".es", ".nl", ".be", ".ch", ".at",
		".se", ".no", ".dk", ".fi", ".pl", ".cz", ".hu",
		".io", ".ai", ".ly", ".me", ".tv", ".cc", ".ws", ".blog",
	}
	sort.Slice(s, func(i, j int) bool { return len(s[i]) > len(s[j]) })
	return s
}

// Resolve returns the page URL: the supplied one when non-blank, otherwise
// the first of canonical link, og:url meta, or base href found in the
// document. An empty string means no URL could be discovered.
func Resolve(html, supplied string) string {
	if s := strings.TrimSpace(supplied); s != "" {
		return s
	}
	for _, re := range []*regexp.Regexp{canonicalRe, ogURLRe, baseRe} {
		if m := re.FindStringSubmatch(html); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// Split derives (domain, siteName) from a URL. The domain is the lowercased
// host without a leading "www."; the site name is the domain with one known
// suffix stripped, falling back to the first domain label when no suffix
// from the static list matches. Unresolvable input yields "unknown" twice.
func Split(rawURL string) (string, string) {
	host := hostOf(rawURL)
	if host == "" {
		return unknown, unknown
	}
	domain := strings.TrimPrefix(strings.ToLower(host), "www.")
	if domain == "" {
		return unknown, unknown
	}
	for _, suffix := range knownSuffixes {
		if strings.HasSuffix(domain, suffix) && len(domain) > len(suffix) {
			return domain, domain[:len(domain)-len(suffix)]
		}
	}
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain, domain[:i]
	}
	return domain, domain
}

func hostOf(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return ""
	}
	if u, err := url.Parse(s); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	if m := bareHostRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
