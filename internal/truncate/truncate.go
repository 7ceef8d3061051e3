// Package truncate applies character budgets to extracted content.
package truncate

import (
	"strings"
	"unicode"
)

// Disabled is the sentinel cap disabling truncation entirely.
const Disabled = -1

// Cap truncates s to at most maxChars characters (runes, never split).
// A maxChars of Disabled returns s unchanged; any other negative value is
// clamped to zero. With wordSafe set, a cut that would land inside a word
// is moved back to the last whitespace boundary before the cut point, so
// the result never ends mid-word when such a boundary exists.
func Cap(s string, maxChars int, wordSafe bool) string {
	if maxChars == Disabled {
		return s
	}
	if maxChars < 0 {
		maxChars = 0
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	cut := string(runes[:maxChars])
	if wordSafe && !unicode.IsSpace(runes[maxChars]) {
		if i := strings.LastIndexFunc(cut, unicode.IsSpace); i >= 0 {
			cut = cut[:i]
		}
	}
	return strings.TrimRightFunc(cut, unicode.IsSpace)
}

// WordCount counts whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
