package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goarticle/internal/article"
	"github.com/hyperifyio/goarticle/internal/prompt"
)

// App hosts one extraction run: it owns the file/stdin plumbing around the
// pure pipeline in internal/article.
type App struct {
	cfg Config
}

func New(cfg Config) (*App, error) {
	cfg.Normalize()
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.PromptTemplateFile) != "" {
		b, err := os.ReadFile(cfg.PromptTemplateFile)
		if err != nil {
			return nil, fmt.Errorf("read template: %w", err)
		}
		cfg.PromptTemplate = string(b)
	}
	return &App{cfg: cfg}, nil
}

// Run reads the input HTML, extracts, and writes the requested artifacts.
// Extraction itself cannot fail; only host I/O surfaces errors.
func (a *App) Run() error {
	htmlBytes, err := a.readInput()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug().Int("bytes", len(htmlBytes)).Str("url", a.cfg.URL).Msg("input loaded")

	result := article.Extract(string(htmlBytes), article.Options{
		URL:      a.cfg.URL,
		MaxChars: a.cfg.MaxChars,
		WordSafe: a.cfg.WordSafe,
	})
	log.Debug().
		Str("domain", result.Domain).
		Str("title", result.Title).
		Int("words", result.WordCount).
		Msg("extraction complete")

	if err := a.writeArtifact(a.cfg.OutputPath, result.JSON()+"\n"); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if a.cfg.OutputPromptPath != "" {
		rendered := prompt.Render(a.cfg.PromptTemplate, result.Fields())
		if err := a.writeArtifact(a.cfg.OutputPromptPath, rendered); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
	}
	if a.cfg.OutputPDFPath != "" {
		if err := writeArticlePDF(result, a.cfg.OutputPDFPath); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("path", a.cfg.OutputPDFPath).Msg("PDF artifact written")
	}
	return nil
}

func (a *App) readInput() ([]byte, error) {
	if a.cfg.InputPath == "" || a.cfg.InputPath == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(a.cfg.InputPath)
}

// writeArtifact writes to path, or to stdout when path is empty.
func (a *App) writeArtifact(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
