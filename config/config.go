package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrompt      = "user> "
	DefaultHistoryFile = "~/.mal_history"
)

// Config holds the REPL driver settings, read from a YAML file such as
//
//	prompt: "mal> "
//	history_file: ~/.mal_history
//	prelude:
//	  - ~/lib/util.mal
type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history_file"`
	NoHistory   bool     `yaml:"no_history"`
	Banner      string   `yaml:"banner"`
	Prelude     []string `yaml:"prelude"`
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

func Default() *Config {
	return &Config{
		Prompt:      DefaultPrompt,
		HistoryFile: DefaultHistoryFile,
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.NoHistory {
		cfg.HistoryFile = ""
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var issues []string
	if c.Prompt == "" {
		issues = append(issues, "prompt must not be empty")
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		issues = append(issues, "prompt must be a single line")
	}
	if !c.NoHistory && strings.TrimSpace(c.HistoryFile) == "" {
		issues = append(issues, "history_file must be set unless no_history is true")
	}
	for i, p := range c.Prelude {
		if strings.TrimSpace(p) == "" {
			issues = append(issues, fmt.Sprintf("prelude[%d] is empty", i))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
