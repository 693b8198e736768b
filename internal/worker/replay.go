package worker

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// NewReplayFunc returns a ProcessFunc that plays an item's moves on a new
// game, stopping at the first rejected move.
func NewReplayFunc(logger log.Interface) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Index: item.Index, Name: item.Name}
		entry := logger.WithFields(log.Fields{"game": item.Name, "index": item.Index})

		var g *engine.Game
		if item.StartFEN == "" {
			g = engine.NewGame(engine.WithLogger(logger))
		} else {
			var err error
			if g, err = engine.NewGameFromFEN(item.StartFEN, engine.WithLogger(logger)); err != nil {
				res.Err = fmt.Errorf("%s: %w", item.Name, err)
				entry.WithError(err).Warn("bad start position")
				return res
			}
		}
		res.Game = g

		for _, text := range item.Moves {
			if _, err := g.Play(text); err != nil {
				res.Err = err
				entry.WithError(err).Warn("replay stopped")
				return res
			}
		}
		if item.Result != "" && item.Result != g.Result().String() && g.IsOver() {
			entry.WithFields(log.Fields{
				"recorded": item.Result,
				"result":   g.Result().String(),
			}).Warn("recorded result disagrees with final position")
		}
		entry.WithFields(log.Fields{
			"plies":  len(item.Moves),
			"result": g.Result().String(),
		}).Debug("replayed")
		return res
	}
}
