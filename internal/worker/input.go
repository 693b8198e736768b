package worker

import (
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/parser"
)

// ReadItems reads every game of a PGN stream. A stream holding one game
// yields an item called name; otherwise items are called name#1, name#2 and
// so on. Indexes are left for the caller to assign.
func ReadItems(name string, r io.Reader, logger log.Interface) []WorkItem {
	games := parser.NewParser(r, logger.WithField("file", name)).ParseAllGames()
	items := make([]WorkItem, 0, len(games))
	for i, g := range games {
		item := WorkItem{
			Name:     name,
			StartFEN: g.StartFEN(),
			Moves:    g.Moves,
			Result:   g.Result,
		}
		if len(games) > 1 {
			item.Name = fmt.Sprintf("%s#%d", name, i+1)
		}
		items = append(items, item)
	}
	return items
}
