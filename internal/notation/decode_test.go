package notation

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestDecode(t *testing.T) {
	sq := chess.MustSquare
	u := chess.Unspecified

	tests := []struct {
		name string
		text string
		want chess.Move
	}{
		{"pawn push", "e4", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("e1").File, Rank: u}, To: sq("e4")}},
		{"pawn push with check", " e4+ ", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("e1").File, Rank: u}, To: sq("e4")}},
		{"promotion", "e8=Q", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("e1").File, Rank: u}, To: sq("e8"), Promotion: chess.Queen}},
		{"promotion without equals", "a1N", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("a1").File, Rank: u}, To: sq("a1"), Promotion: chess.Knight}},
		{"pawn capture", "exd5", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("e1").File, Rank: u}, To: sq("d5"), IsCapture: true}},
		{"capture promotion", "bxa8=R#", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, From: chess.Coord{File: sq("b1").File, Rank: u}, To: sq("a8"), IsCapture: true, Promotion: chess.Rook}},
		{"piece move", "Nf3", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Knight, From: chess.Coord{File: u, Rank: u}, To: sq("f3")}},
		{"piece capture", "Bxc6", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Bishop, From: chess.Coord{File: u, Rank: u}, To: sq("c6"), IsCapture: true}},
		{"by file", "Nbd2", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Knight, From: chess.Coord{File: sq("b1").File, Rank: u}, To: sq("d2")}},
		{"by file capture", "Raxd1", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Rook, From: chess.Coord{File: sq("a1").File, Rank: u}, To: sq("d1"), IsCapture: true}},
		{"by rank", "R1a3", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Rook, From: chess.Coord{File: u, Rank: sq("a1").Rank}, To: sq("a3")}},
		{"by square", "Qh4xe1", chess.Move{Kind: chess.NormalMove, PieceKind: chess.Queen, From: sq("h4"), To: sq("e1"), IsCapture: true}},
		{"king move", "Ke2", chess.Move{Kind: chess.NormalMove, PieceKind: chess.King, From: chess.Coord{File: u, Rank: u}, To: sq("e2")}},
		{"kingside castle", "O-O", chess.Move{Kind: chess.KingsideCastle, PieceKind: chess.King, From: chess.Coord{File: u, Rank: u}}},
		{"kingside castle zeros", "0-0+", chess.Move{Kind: chess.KingsideCastle, PieceKind: chess.King, From: chess.Coord{File: u, Rank: u}}},
		{"queenside castle", "O-O-O", chess.Move{Kind: chess.QueensideCastle, PieceKind: chess.King, From: chess.Coord{File: u, Rank: u}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.text)
			if *got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, text := range []string{"", "e9", "i4", "Pe4", "nf3", "Nf", "O-O-O-O", "e4 e5", "Kxx1", "e8=K"} {
		if got := Decode(text); got.Kind != chess.InvalidMove {
			t.Errorf("Decode(%q).Kind = %v, want invalid", text, got.Kind)
		}
	}
}

func TestPatternNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p.name] {
			t.Errorf("duplicate pattern %q", p.name)
		}
		seen[p.name] = true
	}
}
