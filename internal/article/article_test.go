package article

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

const capDisabled = -1

func TestExtract_BasicScenario(t *testing.T) {
	html := `<html><head><title>X</title></head><body><article><h1>H</h1><p>Body</p></article></body></html>`
	r := Extract(html, Options{MaxChars: capDisabled})

	if r.Title != "H" {
		t.Fatalf("h1 must beat <title>: got %q", r.Title)
	}
	if !strings.Contains(r.Content, "Body") {
		t.Fatalf("content missing body text: %q", r.Content)
	}
	if r.Domain != "unknown" || r.SiteName != "unknown" {
		t.Fatalf("no URL means unknown domain/site, got %q/%q", r.Domain, r.SiteName)
	}
	if r.Author != "" {
		t.Fatalf("expected empty author, got %q", r.Author)
	}
	if r.URL != "unknown" {
		t.Fatalf("unresolved URL serializes as unknown, got %q", r.URL)
	}
}

func TestExtract_SuppliedURL(t *testing.T) {
	r := Extract(`<body><p>text</p></body>`, Options{URL: "https://example.com/post/123"})
	if r.URL != "https://example.com/post/123" {
		t.Fatalf("URL = %q", r.URL)
	}
	if r.Domain != "example.com" || r.SiteName != "example" {
		t.Fatalf("domain/site = %q/%q", r.Domain, r.SiteName)
	}
}

func TestExtract_AuthorMeta(t *testing.T) {
	html := `<html><head><meta name="author" content="Jane Doe"></head><body><p>x</p></body></html>`
	r := Extract(html, Options{})
	if r.Author != "Jane Doe" {
		t.Fatalf("author = %q, want %q", r.Author, "Jane Doe")
	}
}

func TestExtract_BoilerplateNeverLeaks(t *testing.T) {
	html := `<body>
	<div class="cookie-consent">Accept all cookies</div>
	<article><p>Actual story text goes here and keeps going.</p></article>
	<footer>footer junk</footer>
	</body>`
	r := Extract(html, Options{MaxChars: capDisabled})
	if strings.Contains(r.Content, "cookies") || strings.Contains(r.Content, "footer junk") {
		t.Fatalf("boilerplate leaked into content: %q", r.Content)
	}
}

func TestExtract_CapAndWordCount(t *testing.T) {
	html := `<body><article><p>` + strings.Repeat("word ", 100) + `</p></article></body>`
	r := Extract(html, Options{MaxChars: 10, WordSafe: true})
	if len(r.Content) > 10 {
		t.Fatalf("cap exceeded: %d chars", len(r.Content))
	}
	if strings.Contains(r.Content, "wor\n") || strings.HasSuffix(r.Content, "wor") {
		t.Fatalf("cap split a word: %q", r.Content)
	}
	if r.WordCount != len(strings.Fields(r.Content)) {
		t.Fatalf("word count %d does not match content %q", r.WordCount, r.Content)
	}
}

func TestExtract_InvalidCapClamped(t *testing.T) {
	r := Extract(`<body><p>something</p></body>`, Options{MaxChars: -5})
	if r.Content != "" {
		t.Fatalf("negative cap (non-sentinel) clamps to zero, got %q", r.Content)
	}
	if r.WordCount != 0 {
		t.Fatalf("word count of empty content must be 0, got %d", r.WordCount)
	}
}

func TestExtract_EmptyInputWellFormed(t *testing.T) {
	r := Extract("", Options{})
	if r.Domain != "unknown" || r.SiteName != "unknown" || r.URL != "unknown" {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if r.Title != "" || r.Author != "" || r.Content != "" || r.WordCount != 0 {
		t.Fatalf("empty input must produce empty fields: %+v", r)
	}
	if r.Version != Version {
		t.Fatalf("version = %q", r.Version)
	}
	if _, err := time.Parse(time.RFC3339, r.ExtractedAt); err != nil {
		t.Fatalf("extracted_at not RFC3339: %q", r.ExtractedAt)
	}
}

func TestJSON_KeysAndTypes(t *testing.T) {
	r := Extract(`<body><article><p>Two words</p></article></body>`, Options{MaxChars: capDisabled})
	var m map[string]any
	if err := json.Unmarshal([]byte(r.JSON()), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, k := range []string{"url", "domain", "site_name", "title", "content", "author", "word_count", "version", "extracted_at"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing key %q in %v", k, m)
		}
	}
	if _, ok := m["word_count"].(float64); !ok {
		t.Fatalf("word_count must be numeric, got %T", m["word_count"])
	}
	if _, ok := m["title"].(string); !ok {
		t.Fatalf("title must be a string")
	}
}

func TestJSON_NonASCIIPreserved(t *testing.T) {
	html := `<body><article><p>Caf&eacute; r&eacute;sum&eacute; — 日本語</p></article></body>`
	r := Extract(html, Options{MaxChars: capDisabled})
	out := r.JSON()
	if !strings.Contains(out, "Café") || !strings.Contains(out, "日本語") {
		t.Fatalf("non-ASCII must be emitted literally: %s", out)
	}
	if strings.Contains(out, `\u`) {
		t.Fatalf("unicode escapes are not allowed: %s", out)
	}
}

func TestRun_TupleArityAndOrder(t *testing.T) {
	html := `<html><head><title>X</title><meta name="author" content="Jane Doe"></head>` +
		`<body><article><h1>Headline</h1><p>Body text of the article.</p></article></body></html>`

	jsonOut, title, content, author, domain, siteName, wordCount, rendered := Run(
		html, "https://example.co.uk/a", capDisabled, true, "{title} / {author} / {domain} / {site_name} / {word_count}")

	if title != "Headline" {
		t.Fatalf("title = %q", title)
	}
	if !strings.Contains(content, "Body text") {
		t.Fatalf("content = %q", content)
	}
	if author != "Jane Doe" {
		t.Fatalf("author = %q", author)
	}
	if domain != "example.co.uk" || siteName != "example" {
		t.Fatalf("domain/site = %q/%q", domain, siteName)
	}
	// content is "Headline" plus the five words of the paragraph
	if wordCount != "6" {
		t.Fatalf("word count string = %q, content %q", wordCount, content)
	}
	want := "Headline / Jane Doe / example.co.uk / example / 6"
	if rendered != want {
		t.Fatalf("prompt = %q, want %q", rendered, want)
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(jsonOut), &m); err != nil {
		t.Fatalf("first tuple element must be JSON: %v", err)
	}
}

func TestRun_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"<",
		"<html>",
		"<body><article>" + strings.Repeat("<div>", 50),
		"\x00\xff garbage \x80",
		"<script>while(true){}</script>",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if p := recover(); p != nil {
					t.Fatalf("Run panicked on %q: %v", in, p)
				}
			}()
			Run(in, "", 100, true, "{title}")
		}()
	}
}

func TestFields_ContentSnipIsWordSafe(t *testing.T) {
	r := Result{Content: strings.Repeat("lengthy ", 400)} // ~3200 chars
	fields := r.Fields()
	snip := fields["content_snip"]
	if len(snip) > 1000 {
		t.Fatalf("content_snip exceeds budget: %d", len(snip))
	}
	if strings.HasSuffix(snip, "length") || strings.HasSuffix(snip, "lengt") {
		t.Fatalf("content_snip ends mid-word: %q", snip[len(snip)-20:])
	}
}
