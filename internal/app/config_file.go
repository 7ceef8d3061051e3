package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested
// sections improve readability and map naturally to flags/env.
type FileConfig struct {
	Input string `yaml:"input" json:"input"`
	URL   string `yaml:"url" json:"url"`

	Max struct {
		Chars *int `yaml:"chars" json:"chars"`
	} `yaml:"max" json:"max"`
	WordSafe *bool `yaml:"wordSafe" json:"wordSafe"`

	Template     string `yaml:"template" json:"template"`
	TemplateFile string `yaml:"templateFile" json:"templateFile"`

	Output struct {
		JSON   string `yaml:"json" json:"json"`
		Prompt string `yaml:"prompt" json:"prompt"`
		PDF    string `yaml:"pdf" json:"pdf"`
	} `yaml:"output" json:"output"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults, so a config file supplies defaults without
// overriding explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	const maxCharsDefault = 8000

	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.URL == "" && fc.URL != "" {
		cfg.URL = fc.URL
	}
	if cfg.MaxChars == maxCharsDefault && fc.Max.Chars != nil {
		cfg.MaxChars = *fc.Max.Chars
	}
	if !cfg.WordSafe && fc.WordSafe != nil {
		cfg.WordSafe = *fc.WordSafe
	}
	if cfg.PromptTemplate == "" && fc.Template != "" {
		cfg.PromptTemplate = fc.Template
	}
	if cfg.PromptTemplateFile == "" && fc.TemplateFile != "" {
		cfg.PromptTemplateFile = fc.TemplateFile
	}
	if cfg.OutputPath == "" && fc.Output.JSON != "" {
		cfg.OutputPath = fc.Output.JSON
	}
	if cfg.OutputPromptPath == "" && fc.Output.Prompt != "" {
		cfg.OutputPromptPath = fc.Output.Prompt
	}
	if cfg.OutputPDFPath == "" && fc.Output.PDF != "" {
		cfg.OutputPDFPath = fc.Output.PDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
