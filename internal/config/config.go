// SPDX-License-Identifier: MIT

// Package config loads the mat2 host program configuration from the
// environment. Command-line flags override these values in internal/cli.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/mat2/matrix"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Prompt modes for interactive matrix input.
const (
	PromptAuto   = "auto"   // prompt only when stdin is a terminal
	PromptAlways = "always" // always prompt
	PromptNever  = "never"  // never prompt
)

var (
	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("config: invalid format")

	// ErrInvalidPrompt is returned for an unknown prompt mode.
	ErrInvalidPrompt = errors.New("config: invalid prompt mode")

	// ErrInvalidPrecision is returned when precision is outside
	// [0, matrix.MaxPrecision].
	ErrInvalidPrecision = errors.New("config: precision out of range")

	// ErrInvalidLogLevel is returned when the log level does not parse.
	ErrInvalidLogLevel = errors.New("config: invalid log level")
)

// Config controls output format, prompting and logging of the mat2 CLI.
type Config struct {
	Format    string `env:"MAT2_FORMAT"     envDefault:"text"`
	Prompt    string `env:"MAT2_PROMPT"     envDefault:"auto"`
	LogLevel  string `env:"MAT2_LOG_LEVEL"  envDefault:"info"`
	Precision int    `env:"MAT2_PRECISION"  envDefault:"2"`
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Format:    FormatText,
		Prompt:    PromptAuto,
		LogLevel:  "info",
		Precision: 2,
	}
}

// Load parses the process environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return finish(cfg)
}

// LoadFrom is Load over an explicit environment map instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return finish(cfg)
}

// finish normalizes and validates a freshly parsed Config.
func finish(cfg Config) (Config, error) {
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalized trims and lower-cases the enumerated fields.
func (c Config) Normalized() Config {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Prompt = strings.ToLower(strings.TrimSpace(c.Prompt))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	return c
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, c.Format)
	}
	switch c.Prompt {
	case PromptAuto, PromptAlways, PromptNever:
	default:
		return fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidPrompt, c.Prompt)
	}
	if c.Precision < 0 || c.Precision > matrix.MaxPrecision {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidPrecision, c.Precision, matrix.MaxPrecision)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return lvl, nil
}
