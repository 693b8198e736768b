package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"initial", engine.InitialFEN, engine.InitialFEN},
		{"kiwipete", testutil.KiwipeteFEN, testutil.KiwipeteFEN},
		{"endgame", testutil.EndgameFEN, testutil.EndgameFEN},
		{"promotion", testutil.PromotionFEN, testutil.PromotionFEN},
		{"stalemate", testutil.StalemateFEN, testutil.StalemateFEN},
		{"halfmove clock dropped", testutil.FoolsMateFEN, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 3"},
		{"en passant kept", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3", "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3"},
		{"placement only", "8/8/8/8/8/8/8/K6k", "8/8/8/8/8/8/8/K6k w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, pos.FEN(), tt.want)
		})
	}
}

func TestFENPieceState(t *testing.T) {
	pos, err := engine.NewPositionFromFEN("r3k2r/8/8/8/8/8/1P6/R3K2R b Kq - 0 1")
	testutil.AssertNoError(t, err)

	tests := []struct {
		square string
		moved  bool
	}{
		{"e1", false}, // kept by K
		{"h1", false},
		{"a1", true},
		{"e8", false}, // kept by q
		{"a8", false},
		{"h8", true},
		{"b2", false}, // pawn on its home rank
	}
	for _, tt := range tests {
		pc := pos.Board.Get(chess.MustSquare(tt.square))
		if pc == nil {
			t.Fatalf("no piece on %s", tt.square)
		}
		if pc.HasMoved != tt.moved {
			t.Errorf("%s HasMoved = %v, want %v", tt.square, pc.HasMoved, tt.moved)
		}
	}
	testutil.AssertEqual(t, pos.Turn, chess.Black)
	testutil.AssertEqual(t, len(pos.Player(chess.White).Pieces), 4)
}

func TestFENEnPassantSetsDoublePush(t *testing.T) {
	pos, err := engine.NewPositionFromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	testutil.AssertNoError(t, err)

	white := pos.Player(chess.White)
	testutil.AssertTrue(t, white.DoublePush)
	testutil.AssertEqual(t, white.DoublePushPawn.Pos.String(), "e4")

	g, err := engine.NewGameFromFEN(pos.FEN())
	testutil.AssertNoError(t, err)
	_, err = g.Match("dxe3")
	testutil.AssertNoError(t, err, "en passant from FEN")
}

func TestFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1"},
		{"bad digit", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"missing king", "8/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"two kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"pawn on last rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - e9 0 1"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1"},
		{"en passant off rank 3", "4k3/8/4P3/8/8/8/8/4K3 b - e5 0 1"},
		{"en passant off rank 6", "4k3/8/8/8/8/4p3/8/4K3 w - e4 0 1"},
		{"bad halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"bad fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"side not to move in check", "4k2R/8/8/8/8/8/8/4K3 w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}

func TestFENEnPassantRank(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
	}{
		{"white pushed", "4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1", false},
		{"black pushed", "4k3/8/8/4p3/8/8/8/4K3 w - e6 0 1", false},
		{"white pushed, rank 4", "4k3/8/4P3/8/8/8/8/4K3 b - e5 0 1", true},
		{"black pushed, rank 5", "4k3/8/8/8/8/4p3/8/4K3 w - e4 0 1", true},
		{"rank 6 with black to move", "4k3/4P3/8/8/8/8/8/4K3 b - e6 0 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			if !tt.wantErr {
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, pos.FEN(), tt.fen)
				return
			}
			var fenErr *errors.FENError
			if !stderrors.As(err, &fenErr) {
				t.Fatalf("error = %v, want *FENError", err)
			}
			testutil.AssertEqual(t, fenErr.Field, "en passant")
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
		})
	}
}
