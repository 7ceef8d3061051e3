package app

import (
	"errors"
	"strings"

	"github.com/hyperifyio/goarticle/internal/truncate"
)

// Config carries the settings for one extraction run. Flags, environment
// and file config all funnel into this struct before the pipeline runs.
type Config struct {
	// InputPath is the HTML file to read; empty or "-" means stdin.
	InputPath string
	// URL is the page URL when known; blank enables in-document discovery.
	URL string

	// MaxChars caps extracted content length. truncate.Disabled (-1)
	// disables the cap.
	MaxChars int
	// WordSafe avoids cutting content mid-word at the cap boundary.
	WordSafe bool

	// PromptTemplate is an inline prompt template; PromptTemplateFile, when
	// set, takes precedence and is read at startup.
	PromptTemplate     string
	PromptTemplateFile string

	// OutputPath receives the JSON result; empty means stdout.
	OutputPath string
	// OutputPromptPath receives the rendered prompt, when set.
	OutputPromptPath string
	// OutputPDFPath receives an optional PDF rendering of the result.
	OutputPDFPath string

	Verbose bool
}

// Normalize clamps invalid numeric settings to their nearest valid values.
// Negative cap values other than the disable sentinel become zero.
func (c *Config) Normalize() {
	if c.MaxChars < 0 && c.MaxChars != truncate.Disabled {
		c.MaxChars = 0
	}
}

// ValidateConfig performs minimal schema validation. Extraction itself
// accepts any input; only host-side settings can be invalid.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.PromptTemplateFile) != "" && strings.TrimSpace(cfg.PromptTemplate) != "" {
		return errors.New("config: template and template file are mutually exclusive")
	}
	return nil
}
