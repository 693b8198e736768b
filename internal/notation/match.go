package notation

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Filter returns the legal moves consistent with the candidate. Castles
// match on kind alone; other moves must agree on piece kind, destination,
// capture and promotion, and on any source file or rank the candidate names.
func Filter(cand *chess.Move, legal []*chess.Move) []*chess.Move {
	if cand == nil || cand.Kind == chess.InvalidMove {
		return nil
	}
	var matches []*chess.Move
	for _, m := range legal {
		if m.Kind != cand.Kind {
			continue
		}
		if cand.IsCastle() {
			matches = append(matches, m)
			continue
		}
		if m.PieceKind != cand.PieceKind || m.To != cand.To ||
			m.IsCapture != cand.IsCapture || m.Promotion != cand.Promotion {
			continue
		}
		if cand.From.File != chess.Unspecified && m.From.File != cand.From.File {
			continue
		}
		if cand.From.Rank != chess.Unspecified && m.From.Rank != cand.From.Rank {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

// Match resolves a candidate to exactly one legal move.
func Match(cand *chess.Move, legal []*chess.Move) (*chess.Move, error) {
	if cand == nil || cand.Kind == chess.InvalidMove {
		return nil, errors.ErrNotationSyntax
	}
	matches := Filter(cand, legal)
	switch len(matches) {
	case 0:
		return nil, errors.ErrNoLegalMatch
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("%d moves fit: %w", len(matches), errors.ErrAmbiguousMatch)
}
