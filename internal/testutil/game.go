package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Positions used across tests.
const (
	// KiwipeteFEN exercises castling, en passant and promotions at once.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	// EndgameFEN has rook and pawn play with discovered checks.
	EndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	// PromotionFEN has pawns one step from promoting on both sides.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	// CastlingFEN has both sides free to castle either way, with the
	// corner files closed by pawns.
	CastlingFEN = "r3k2r/p6p/8/8/8/8/P6P/R3K2R w KQkq - 0 1"
	// FoolsMateFEN is the position after 1.f3 e5 2.g4 Qh4#.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// StalemateFEN has Black to move with no legal moves and not in check.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
)

// MustGame starts a game from the standard position and plays moves,
// failing the test on the first rejected move.
func MustGame(t *testing.T, moves ...string) *engine.Game {
	t.Helper()
	g := engine.NewGame()
	MustPlay(t, g, moves...)
	return g
}

// MustGameFromFEN starts a game from fen and plays moves.
func MustGameFromFEN(t *testing.T, fen string, moves ...string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
	}
	MustPlay(t, g, moves...)
	return g
}

// MustPlay plays moves on g in order.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for i, text := range moves {
		if _, err := g.Play(text); err != nil {
			t.Fatalf("move %d %q rejected: %v", i+1, text, err)
		}
	}
}
