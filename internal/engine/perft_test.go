package engine_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// perftPositions carries known node counts for positions where no
// castle within the counted depth hinges on the rook's corner or the
// b-file square.
var perftPositions = []struct {
	name   string
	fen    string
	counts []int64 // depth 1, 2, ...
}{
	{"initial", engine.InitialFEN, []int64{20, 400, 8902}},
	{"endgame", testutil.EndgameFEN, []int64{14, 191, 2812}},
	{"castling", testutil.CastlingFEN, []int64{16}},
}

// oraclePositions are compared against dragontooth with its castles
// filtered through cornerSafe.
var oraclePositions = []struct {
	name string
	fen  string
}{
	{"initial", engine.InitialFEN},
	{"kiwipete", testutil.KiwipeteFEN},
	{"endgame", testutil.EndgameFEN},
	{"promotion", testutil.PromotionFEN},
	{"talkchess", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"},
	{"open corners", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
	{"b-file attacked", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1"},
	{"castling", testutil.CastlingFEN},
}

func TestPerft(t *testing.T) {
	for _, tt := range perftPositions {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			before := pos.FEN()

			for i, want := range tt.counts {
				depth := i + 1
				if testing.Short() && depth > 2 {
					break
				}
				got, err := engine.Perft(pos, depth)
				testutil.AssertNoError(t, err)
				if got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
			testutil.AssertEqual(t, pos.FEN(), before, "position restored after perft")
		})
	}
}

// cornerSafe reports false for a castle whose rook corner, or b-file
// square on the queenside, is attacked. dragontooth only checks the
// squares the king crosses.
func cornerSafe(b *dragontoothmg.Board, m dragontoothmg.Move) bool {
	kings := b.Black.Kings
	if b.Wtomove {
		kings = b.White.Kings
	}
	from, to := m.From(), m.To()
	if kings&(uint64(1)<<from) == 0 || (from != 4 && from != 60) {
		return true
	}
	var squares []uint8
	switch int(to) - int(from) {
	case 2:
		squares = []uint8{from + 3}
	case -2:
		squares = []uint8{from - 4, from - 3}
	default:
		return true
	}
	for _, sq := range squares {
		if b.UnderDirectAttack(b.Wtomove, sq) {
			return false
		}
	}
	return true
}

// dragontoothMoves returns dragontooth's legal moves under the corner rule.
func dragontoothMoves(b *dragontoothmg.Board) []dragontoothmg.Move {
	var moves []dragontoothmg.Move
	for _, m := range b.GenerateLegalMoves() {
		if cornerSafe(b, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// dragontoothPerft counts nodes with an independent move generator.
func dragontoothPerft(b *dragontoothmg.Board, depth int) int64 {
	moves := dragontoothMoves(b)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerftAgreesWithDragontooth(t *testing.T) {
	const depth = 2
	for _, tt := range oraclePositions {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)

			board := dragontoothmg.ParseFen(tt.fen)
			want := dragontoothPerft(&board, depth)
			got, err := engine.Perft(pos, depth)
			testutil.AssertNoError(t, err)
			if got != want {
				t.Errorf("Perft(%d) = %d, dragontooth = %d", depth, got, want)
			}
		})
	}
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, tt := range oraclePositions {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.NewPositionFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			set, err := pos.LegalMoves()
			testutil.AssertNoError(t, err)

			var got []string
			for _, m := range set.Moves() {
				got = append(got, m.LongAlgebraic())
			}
			board := dragontoothmg.ParseFen(tt.fen)
			var want []string
			for _, m := range dragontoothMoves(&board) {
				want = append(want, m.String())
			}
			testutil.AssertSameStrings(t, got, want)
		})
	}
}

func BenchmarkPerftInitial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		pos := engine.NewPosition()
		if _, err := engine.Perft(pos, 3); err != nil {
			b.Fatal(err)
		}
	}
}
