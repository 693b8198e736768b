// chessd serves chess games over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/session"
)

var (
	listen    = flag.String("listen", "", "Address to listen on (default: :8080)")
	origins   = flag.String("origins", "", "Allowed CORS origins, comma separated (default: *)")
	startFEN  = flag.String("fen", "", "Start position of new games in FEN")
	logLevel  = flag.String("loglevel", "", "Log level: debug, info, warn, error (default: info)")
	logFormat = flag.String("logformat", "", "Log format: text, json, cli, discard (default: text)")
)

func applyFlags(cfg *config.Config) {
	applyServerFlags(cfg)
	applyGameFlags(cfg)
	applyLogFlags(cfg)
}

func applyServerFlags(cfg *config.Config) {
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *origins != "" {
		cfg.AllowOrigins = *origins
	}
}

func applyGameFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
}

func applyLogFlags(cfg *config.Config) {
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
}

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	sessions := session.NewManager(func() (*engine.Game, error) {
		return cfg.NewGame(engine.WithLogger(logger))
	}, logger)
	srv := server.New(cfg, sessions, logger)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		logger.WithField("signal", s.String()).Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			logger.WithError(err).Error("shutdown")
		}
	}()

	if err := srv.Listen(); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
