// Package plaintext flattens HTML fragments into readable plain text.
// It is a sequence of regex substitution passes, not a DOM walk: list items
// become bullet lines, table rows become space-joined lines, block elements
// are separated by blank lines and inline markup is dropped keeping its text.
package plaintext

import (
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	brRe      = regexp.MustCompile(`(?i)<br\s*/?>`)
	tableRe   = regexp.MustCompile(`(?is)<table\b.*?</table\s*>`)
	trOpenRe  = regexp.MustCompile(`(?i)<tr\b[^>]*>`)
	trCloseRe = regexp.MustCompile(`(?i)</tr\s*>`)
	cellRe    = regexp.MustCompile(`(?i)</?t[dh]\b[^>]*>`)
	liOpenRe  = regexp.MustCompile(`(?i)<li\b[^>]*>`)
	blockRe   = regexp.MustCompile(`(?i)</?(?:p|div|section|article|ul|ol|li|h[1-6]|blockquote)\b[^>]*>`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]*>`)

	hspaceRe   = regexp.MustCompile(`[ \t]+`)
	edgeRe     = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	blanksRe   = regexp.MustCompile(`\n{3,}`)
	anySpaceRe = regexp.MustCompile(`\s+`)
)

// Flatten converts an HTML fragment to plain text following the conventions
// above. Output is NFC-normalized and fully entity-unescaped, with runs of
// horizontal whitespace collapsed and at most one blank line between blocks.
func Flatten(fragment string) string {
	s := strings.ReplaceAll(fragment, "\r", "")
	s = brRe.ReplaceAllString(s, "\n")
	s = tableRe.ReplaceAllStringFunc(s, flattenTable)
	s = liOpenRe.ReplaceAllString(s, "\n• ")
	s = blockRe.ReplaceAllStringFunc(s, blockSeparator)
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")

	s = hspaceRe.ReplaceAllString(s, " ")
	s = edgeRe.ReplaceAllString(s, "\n")
	s = blanksRe.ReplaceAllString(s, "\n\n")
	return norm.NFC.String(strings.TrimSpace(s))
}

// blockSeparator maps a matched block-level tag to the separator that stands
// in for it. List scaffolding produces single newlines so bullets stay
// grouped; paragraph-like blocks produce blank lines.
func blockSeparator(tag string) string {
	name := strings.ToLower(strings.Trim(tag, "</> \t"))
	if i := strings.IndexAny(name, " \t\n"); i >= 0 {
		name = name[:i]
	}
	switch name {
	case "ul", "ol":
		return "\n"
	case "li":
		// the bullet substitution already starts each item on its own line
		return ""
	}
	return "\n\n"
}

// flattenTable renders one <table> region as plain rows: each <tr> on its
// own line, cell texts space-separated, no column alignment.
func flattenTable(table string) string {
	t := trOpenRe.ReplaceAllString(table, "\n")
	t = trCloseRe.ReplaceAllString(t, "")
	t = cellRe.ReplaceAllString(t, "  ")
	t = tagRe.ReplaceAllString(t, "")
	return t
}

// Collapse reduces every whitespace run in s to a single space and trims the
// ends. It operates on text as-is and is what candidate scoring measures.
func Collapse(s string) string {
	return strings.TrimSpace(anySpaceRe.ReplaceAllString(s, " "))
}

// Clean strips tags from an HTML snippet, unescapes entities and collapses
// whitespace, treating non-breaking spaces as whitespace. Used for short
// fields such as titles and bylines.
func Clean(snippet string) string {
	s := html.UnescapeString(tagRe.ReplaceAllString(snippet, ""))
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return Collapse(s)
}
