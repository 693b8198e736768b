// chessrules plays chess from the terminal and replays files of moves
// against the rules engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *perftDepth > 0 {
		if err := runPerft(cfg.Output, cfg.StartFEN, *perftDepth); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		failed, err := runBatch(ctx, cfg, logger, flag.Args())
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	repl, err := NewREPL(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := repl.Run(os.Stdin); err != nil {
		logger.WithError(err).Error("reading input")
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.Output = file
}

// runPerft prints the perft node count of the start position for each
// depth up to depth.
func runPerft(w io.Writer, fen string, depth int) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	for d := 1; d <= depth; d++ {
		n, err := engine.Perft(pos, d)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "perft(%d) = %d\n", d, n)
	}
	return nil
}

// gameOptions returns the engine options shared by every game.
func gameOptions(logger log.Interface) []engine.Option {
	return []engine.Option{engine.WithLogger(logger)}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [pgn-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Without files, reads moves and commands from stdin.\n")
	fmt.Fprintf(os.Stderr, "With files, replays each game and reports the outcome.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.help)
	}
}
