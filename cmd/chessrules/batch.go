package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// loadItems reads the games of every file. Games without a FEN tag start
// from the configured position.
func loadItems(cfg *config.Config, logger log.Interface, files []string) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	for _, name := range files {
		f, err := os.Open(name) //nolint:gosec // G304: user-supplied input files are intentional
		if err != nil {
			return nil, err
		}
		read := worker.ReadItems(filepath.Base(name), f, logger)
		f.Close()
		for _, item := range read {
			if item.StartFEN == "" {
				item.StartFEN = cfg.StartFEN
			}
			items = append(items, item)
		}
	}
	return items, nil
}

// runBatch replays every game of every file in parallel and writes one
// report per game in input order, skipping duplicates when configured. It
// returns the number of games that failed to replay.
func runBatch(ctx context.Context, cfg *config.Config, logger log.Interface, files []string) (int, error) {
	items, err := loadItems(cfg, logger, files)
	if err != nil {
		return 0, err
	}

	n := cfg.Workers
	if n == 0 {
		n = runtime.NumCPU()
	}
	pool := worker.NewPool(worker.NewReplayFunc(logger), worker.WithWorkers(n), worker.WithBufferSize(len(items)))
	results := pool.Run(ctx, items)

	var w output.GameWriter = output.NewTextWriter(cfg.Output)
	if cfg.JSON {
		w = output.NewJSONWriter(cfg.Output)
	}

	var dups *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		dups = hashing.NewDuplicateDetector(cfg.ExactDuplicates)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			if err := w.WriteFailure(res.Name, res.Err); err != nil {
				return failed, err
			}
			continue
		}
		if dups != nil && dups.CheckAndAdd(res.Game) {
			logger.WithField("game", res.Name).Debug("duplicate suppressed")
			continue
		}
		if err := w.WriteGame(res.Name, res.Game); err != nil {
			return failed, err
		}
	}
	if err := w.Close(); err != nil {
		return failed, err
	}

	fields := log.Fields{
		"games":   len(results),
		"failed":  failed,
		"workers": n,
	}
	if dups != nil {
		fields["duplicates"] = dups.DuplicateCount()
	}
	logger.WithFields(fields).Info("batch replay finished")
	return failed, nil
}
