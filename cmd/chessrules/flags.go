// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Input options
	startFEN = flag.String("fen", "", "Start position in FEN (default: standard position)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write log to this file (default: stderr)")
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error (default: info)")
	logFormat = flag.String("logformat", "", "Log format: text, json, cli, discard (default: text)")

	// Batch replay
	numWorkers      = flag.Int("workers", 0, "Worker goroutines for batch replay (0 = one per CPU)")
	suppressDups    = flag.Bool("D", false, "Suppress games that end in the same position as an earlier game")
	exactDuplicates = flag.Bool("exact", false, "With -D, only suppress games with the same move sequence")

	// Rule checking
	perftDepth = flag.Int("perft", 0, "Print perft node counts up to this depth and exit")

	// Misc
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyInputFlags(cfg)
	applyOutputFlags(cfg)
	applyLogFlags(cfg)
	applyBatchFlags(cfg)
}

// applyInputFlags sets the start position.
func applyInputFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
}

// applyOutputFlags configures output format.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSON = *jsonOutput
}

// applyLogFlags configures logging; empty flags keep the defaults.
func applyLogFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
}

// applyBatchFlags configures batch replay.
func applyBatchFlags(cfg *config.Config) {
	cfg.Workers = *numWorkers
	cfg.SuppressDuplicates = *suppressDups
	cfg.ExactDuplicates = *exactDuplicates
}
