// Package config holds the settings shared by the chessrules binaries.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Log output formats understood by the logging package.
const (
	LogFormatText    = "text"
	LogFormatJSON    = "json"
	LogFormatCLI     = "cli"
	LogFormatDiscard = "discard"
)

// Config holds program configuration.
type Config struct {
	// Server
	Listen       string
	AllowOrigins string

	// Logging
	LogLevel  string
	LogFormat string

	// Batch replay
	Workers int
	// SuppressDuplicates drops games that end like an earlier game.
	SuppressDuplicates bool
	// ExactDuplicates also requires the same move sequence.
	ExactDuplicates bool

	// StartFEN is the position new games start from. Empty means the
	// standard initial position.
	StartFEN string

	// JSON switches CLI output from text to JSON.
	JSON bool

	// Output streams
	Output  io.Writer
	LogFile io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Listen:       ":8080",
		AllowOrigins: "*",
		LogLevel:     "info",
		LogFormat:    LogFormatText,
		Workers:      0,
		Output:       os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("empty listen address: %w", errors.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON, LogFormatCLI, LogFormatDiscard:
	default:
		return fmt.Errorf("log format %q: %w", c.LogFormat, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("negative worker count %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewPositionFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewGame starts a game from the configured start position.
func (c *Config) NewGame(opts ...engine.Option) (*engine.Game, error) {
	if c.StartFEN == "" {
		return engine.NewGame(opts...), nil
	}
	return engine.NewGameFromFEN(c.StartFEN, opts...)
}
