// Package config loads truncation defaults from TOML or YAML files and
// bridges them to the truncate engine. The CLI uses it for --config; library
// callers can use it to share one truncation policy across services.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/truncyate/tokens"
	"github.com/randalmurphal/truncyate/truncate"
)

// Counter kinds accepted in config files and --counter flags.
const (
	CounterWords    = "words"
	CounterRatio    = "ratio"
	CounterTiktoken = "tiktoken"
)

// File is the on-disk configuration. Zero values mean "use the default";
// at least one of max_tokens/max_chars must be set before Truncator is
// called.
type File struct {
	// --- Budget ---

	// MaxTokens is the token budget. 0 means unset.
	MaxTokens int `json:"max_tokens,omitempty" yaml:"max_tokens" toml:"max_tokens"`

	// MaxChars is the character budget. Takes precedence over MaxTokens.
	MaxChars int `json:"max_chars,omitempty" yaml:"max_chars" toml:"max_chars"`

	// --- Behavior ---

	// Strategy is one of "start", "end", "middle", "smart". Default: "smart".
	Strategy string `json:"strategy,omitempty" yaml:"strategy" toml:"strategy"`

	// --- Counter ---

	// Counter selects the token counter: "words" (default), "ratio", or
	// "tiktoken".
	Counter string `json:"counter,omitempty" yaml:"counter" toml:"counter"`

	// CharsPerToken tunes the "ratio" counter. Default: 4.0.
	CharsPerToken float64 `json:"chars_per_token,omitempty" yaml:"chars_per_token" toml:"chars_per_token"`

	// Encoding selects the "tiktoken" encoding. Default: "cl100k_base".
	Encoding string `json:"encoding,omitempty" yaml:"encoding" toml:"encoding"`

	// --- Markers ---

	// Ellipsis marks a cut at the start or end. Default: "...".
	Ellipsis string `json:"ellipsis,omitempty" yaml:"ellipsis" toml:"ellipsis"`

	// MiddleEllipsis marks removed middle content. Default: " [...] ".
	MiddleEllipsis string `json:"middle_ellipsis,omitempty" yaml:"middle_ellipsis" toml:"middle_ellipsis"`

	// --- Tuning ---

	// MiddleRatio is the prefix share for the middle strategy, in (0, 1).
	MiddleRatio float64 `json:"middle_ratio,omitempty" yaml:"middle_ratio" toml:"middle_ratio"`

	// AlignWindow caps how far boundary alignment may move a cut, in bytes.
	AlignWindow int `json:"align_window,omitempty" yaml:"align_window" toml:"align_window"`
}

// Load reads a config file, choosing the format by extension:
// .toml for TOML, .yaml/.yml for YAML.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("parse TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return f, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		return f, fmt.Errorf("unsupported config format %q (want .toml, .yaml, or .yml)", ext)
	}

	return f, nil
}

// Truncator builds the configured truncation engine.
func (f File) Truncator() (*truncate.Truncator, error) {
	cfg := truncate.Config{
		MaxTokens:      f.MaxTokens,
		MaxChars:       f.MaxChars,
		Ellipsis:       f.Ellipsis,
		MiddleEllipsis: f.MiddleEllipsis,
		MiddleRatio:    f.MiddleRatio,
		AlignWindow:    f.AlignWindow,
	}

	if f.Strategy != "" {
		strategy, err := truncate.ParseStrategy(f.Strategy)
		if err != nil {
			return nil, err
		}
		cfg.Strategy = strategy
	}

	counter, err := f.counter()
	if err != nil {
		return nil, err
	}
	cfg.Counter = counter

	return truncate.New(cfg)
}

// counter resolves the configured token counter.
func (f File) counter() (tokens.Counter, error) {
	switch f.Counter {
	case "", CounterWords:
		return tokens.NewWordCounter(), nil
	case CounterRatio:
		return tokens.NewEstimatingCounterWithRatio(f.CharsPerToken), nil
	case CounterTiktoken:
		return tokens.NewTiktokenCounter(f.Encoding)
	default:
		// Bare encoding names select tiktoken directly, e.g. "cl100k_base".
		if strings.Contains(f.Counter, "_base") || strings.HasPrefix(f.Counter, "o200k") {
			return tokens.NewTiktokenCounter(f.Counter)
		}
		return nil, fmt.Errorf("unknown counter %q (want words, ratio, or tiktoken)", f.Counter)
	}
}
