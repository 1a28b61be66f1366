package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/interpreter"
)

// Default driver settings, used wherever reef.yml does not override them.
const (
	DefaultPrompt       = "reef> "
	DefaultContinuation = "....> "
	DefaultHistoryFile  = ".reef_history"
)

// Config holds the driver settings an optional reef.yml provides. CLI flags
// override file values; the zero value is not usable, start from
// DefaultConfig.
type Config struct {
	Prompt       string
	Continuation string
	History      string
	MaxCallDepth int
	Debug        int
}

// DefaultConfig returns the settings used when no reef.yml is present.
func DefaultConfig() Config {
	history := DefaultHistoryFile
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, DefaultHistoryFile)
	}
	return Config{
		Prompt:       DefaultPrompt,
		Continuation: DefaultContinuation,
		History:      history,
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
	}
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
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// configFile mirrors reef.yml. Pointer fields distinguish "absent" from an
// explicit zero so file values only override defaults they actually set.
type configFile struct {
	Prompt       *string `yaml:"prompt"`
	Continuation *string `yaml:"continuation"`
	History      *string `yaml:"history"`
	MaxCallDepth *int    `yaml:"max_call_depth"`
	Debug        *int    `yaml:"debug"`
}

// LoadConfig parses a reef.yml from disk, returning a validated Config layered
// over the defaults. Unknown keys are errors; an empty file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	if raw.Continuation != nil {
		cfg.Continuation = *raw.Continuation
	}
	if raw.History != nil {
		cfg.History = expandHome(*raw.History)
	}
	if raw.MaxCallDepth != nil {
		cfg.MaxCallDepth = *raw.MaxCallDepth
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs ValidationError
	if c.MaxCallDepth <= 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_call_depth must be positive, got %d", c.MaxCallDepth))
	}
	if c.Debug < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("debug must be non-negative, got %d", c.Debug))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}
