package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goarticle/internal/app"
	"github.com/hyperifyio/goarticle/internal/article"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Dotenv defaults are best-effort and never fatal.
	_ = app.LoadEnvFiles(".env")

	var (
		inputPath    string
		pageURL      string
		maxChars     int
		wordSafe     bool
		template     string
		templateFile string
		outputPath   string
		outputPrompt string
		outputPDF    string
		configPath   string
		verbose      bool
		showVersion  bool
	)

	flag.StringVar(&inputPath, "input", os.Getenv("GOARTICLE_INPUT"), "Path to HTML input file ('-' or empty reads stdin)")
	flag.StringVar(&pageURL, "url", os.Getenv("GOARTICLE_URL"), "Page URL; when empty the document is searched for canonical/og:url/base")
	flag.IntVar(&maxChars, "max.chars", envInt("GOARTICLE_MAX_CHARS", 8000), "Maximum content characters (-1 disables the cap)")
	flag.BoolVar(&wordSafe, "word.safe", envBool("GOARTICLE_WORD_SAFE"), "Never cut content mid-word at the cap boundary")
	flag.StringVar(&template, "template", os.Getenv("GOARTICLE_TEMPLATE"), "Inline prompt template, e.g. 'Summarize {title}: {content_snip}'")
	flag.StringVar(&templateFile, "template.file", os.Getenv("GOARTICLE_TEMPLATE_FILE"), "Path to file containing the prompt template")
	flag.StringVar(&outputPath, "output", "", "Path for the JSON result (default stdout)")
	flag.StringVar(&outputPrompt, "output.prompt", "", "Path for the rendered prompt (omitted when unset)")
	flag.StringVar(&outputPDF, "output.pdf", "", "Path for an optional PDF rendering of the result")
	flag.StringVar(&configPath, "config", os.Getenv("GOARTICLE_CONFIG"), "Optional YAML/JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("goarticle %s (format %s, commit %s, built %s)\n",
			app.BuildVersion, article.Version, app.BuildCommit, app.BuildDate)
		return
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:          inputPath,
		URL:                pageURL,
		MaxChars:           maxChars,
		WordSafe:           wordSafe,
		PromptTemplate:     template,
		PromptTemplateFile: templateFile,
		OutputPath:         outputPath,
		OutputPromptPath:   outputPrompt,
		OutputPDFPath:      outputPDF,
		Verbose:            verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration invalid")
	}
	if err := a.Run(); err != nil {
		log.Fatal().Err(err).Msg("extraction run failed")
	}
}

func envInt(key string, def int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}
