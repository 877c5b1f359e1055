// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// ColorAuto styles output only when stdout is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

var (
	// ErrInvalidColorMode is returned when a ColorMode is not one of the known modes.
	ErrInvalidColorMode = errors.New("invalid color mode")
	// ErrInvalidLogLevel is returned when a log level name is unknown.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrEmptyPrompt is returned when the prompt is set to the empty string.
	ErrEmptyPrompt = errors.New("prompt must not be empty")

	logLevels = []string{"debug", "info", "warn", "error"}
)

type (
	// ColorMode selects when terminal styling is applied.
	ColorMode string

	// Config holds the effective fsh configuration.
	Config struct {
		// Prompt is printed before each line read from a terminal.
		Prompt string `json:"prompt" mapstructure:"prompt"`
		// Banner prints "Type 'exit' to quit." and "Program exited.".
		Banner bool `json:"banner" mapstructure:"banner"`
		// LogLevel is one of debug, info, warn, error.
		LogLevel string `json:"log_level" mapstructure:"log_level"`
		// StartDir is the initial virtual working directory; empty means the
		// process working directory.
		StartDir string `json:"start_dir" mapstructure:"start_dir"`
		// Color selects terminal styling.
		Color ColorMode `json:"color" mapstructure:"color"`
	}
)

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   "> ",
		Banner:   true,
		LogLevel: "warn",
		StartDir: "",
		Color:    ColorAuto,
	}
}

// IsValid returns whether m is a known color mode, and a list of
// validation errors if it is not.
func (m ColorMode) IsValid() (bool, []error) {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w: %q (expected auto, always, or never)", ErrInvalidColorMode, m)}
	}
}

// String returns the mode name.
func (m ColorMode) String() string {
	return string(m)
}

// Validate checks the values the schema also constrains, so that flag
// overrides applied after loading are held to the same rules.
func (c *Config) Validate() error {
	var errs []error
	if c.Prompt == "" {
		errs = append(errs, ErrEmptyPrompt)
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidLogLevel, c.LogLevel, logLevels))
	}
	if ok, colorErrs := c.Color.IsValid(); !ok {
		errs = append(errs, colorErrs...)
	}
	return errors.Join(errs...)
}
