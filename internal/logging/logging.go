// Package logging builds apex/log loggers from configuration.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// New returns a logger writing to w in the given format at level or above.
func New(w io.Writer, format, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, errors.ErrInvalidConfig)
	}

	var h log.Handler
	switch strings.ToLower(format) {
	case config.LogFormatText:
		h = text.New(w)
	case config.LogFormatJSON:
		h = json.New(w)
	case config.LogFormatCLI:
		h = cli.New(w)
	case config.LogFormatDiscard:
		h = discard.New()
	default:
		return nil, fmt.Errorf("log format %q: %w", format, errors.ErrInvalidConfig)
	}
	return &log.Logger{Handler: h, Level: lvl}, nil
}

// FromConfig builds the logger described by cfg.
func FromConfig(cfg *config.Config) (*log.Logger, error) {
	return New(cfg.LogFile, cfg.LogFormat, cfg.LogLevel)
}

// Discard returns a logger that drops every entry.
func Discard() *log.Logger {
	return &log.Logger{Handler: discard.New(), Level: log.FatalLevel}
}
