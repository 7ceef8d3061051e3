// Package article assembles the full extraction pipeline: strip, select the
// main region, pull metadata fields, flatten to plain text, cap, and emit a
// structured result. Every operation here is total over string input; a
// field that cannot be resolved becomes "" or "unknown", never an error.
package article

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/hyperifyio/goarticle/internal/meta"
	"github.com/hyperifyio/goarticle/internal/plaintext"
	"github.com/hyperifyio/goarticle/internal/prompt"
	"github.com/hyperifyio/goarticle/internal/region"
	"github.com/hyperifyio/goarticle/internal/site"
	"github.com/hyperifyio/goarticle/internal/strip"
	"github.com/hyperifyio/goarticle/internal/truncate"
)

// Version is the extraction format version reported in every result.
const Version = "1.0.0"

// snipChars is the budget for the {content_snip} prompt placeholder.
const snipChars = 1000

// Result is the assembled extraction record. String fields are never
// absent: unresolved URL-derived fields read "unknown", unresolved text
// fields are empty.
type Result struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	SiteName    string `json:"site_name"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	WordCount   int    `json:"word_count"`
	Version     string `json:"version"`
	ExtractedAt string `json:"extracted_at"`
}

// Options configures a single extraction.
type Options struct {
	// URL is the page URL when the caller knows it; blank triggers
	// in-document discovery (canonical, og:url, base href).
	URL string
	// MaxChars caps the content length in characters. truncate.Disabled
	// turns the cap off; other negative values clamp to zero.
	MaxChars int
	// WordSafe moves a mid-word cut back to the previous word boundary.
	WordSafe bool
}

// Extract runs the full pipeline over raw HTML. It never fails: empty or
// malformed input produces a well-formed Result with defaulted fields.
func Extract(html string, opt Options) Result {
	if opt.MaxChars < 0 && opt.MaxChars != truncate.Disabled {
		opt.MaxChars = 0
	}

	resolvedURL := site.Resolve(html, opt.URL)
	domain, siteName := site.Split(resolvedURL)

	stripped := strip.Strip(html)
	main := region.Select(stripped)

	content := plaintext.Flatten(main.Inner)
	content = truncate.Cap(content, opt.MaxChars, opt.WordSafe)

	urlField := resolvedURL
	if urlField == "" {
		urlField = "unknown"
	}
	return Result{
		URL:         urlField,
		Domain:      domain,
		SiteName:    siteName,
		Title:       meta.Title(main.Inner, stripped),
		Content:     content,
		Author:      meta.Author(stripped),
		WordCount:   truncate.WordCount(content),
		Version:     Version,
		ExtractedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// JSON serializes the result with HTML escaping off so non-ASCII and markup
// characters appear literally.
func (r Result) JSON() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Result contains only strings and an int; encoding cannot fail.
	_ = enc.Encode(r)
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// Fields exposes the result as prompt-template variables.
func (r Result) Fields() map[string]string {
	return map[string]string{
		"title":        r.Title,
		"author":       r.Author,
		"content":      r.Content,
		"content_snip": truncate.Cap(r.Content, snipChars, true),
		"domain":       r.Domain,
		"site_name":    r.SiteName,
		"url":          r.URL,
		"word_count":   strconv.Itoa(r.WordCount),
		"version":      r.Version,
		"extracted_at": r.ExtractedAt,
	}
}

// Run is the host invocation contract: one call in, eight strings out, in
// this exact order. word_count is stringified; the prompt is the template
// rendered against the result fields (empty template renders empty).
func Run(html, url string, maxChars int, wordSafe bool, promptTemplate string) (jsonOut, title, content, author, domain, siteName, wordCount, rendered string) {
	r := Extract(html, Options{URL: url, MaxChars: maxChars, WordSafe: wordSafe})
	rendered = prompt.Render(promptTemplate, r.Fields())
	return r.JSON(), r.Title, r.Content, r.Author, r.Domain, r.SiteName, strconv.Itoa(r.WordCount), rendered
}
