package notation

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func legalFixture() []*chess.Move {
	knightB := chess.NewPiece(chess.Knight, chess.White, chess.MustSquare("b1"))
	knightF := chess.NewPiece(chess.Knight, chess.White, chess.MustSquare("f3"))
	rook1 := chess.NewPiece(chess.Rook, chess.White, chess.MustSquare("a1"))
	rook5 := chess.NewPiece(chess.Rook, chess.White, chess.MustSquare("a5"))
	mv := func(pc *chess.Piece, to string) *chess.Move {
		return &chess.Move{Kind: chess.NormalMove, Piece: pc, PieceKind: pc.Kind, From: pc.Pos, To: chess.MustSquare(to)}
	}
	return []*chess.Move{
		mv(knightB, "d2"),
		mv(knightF, "d2"),
		mv(knightF, "e5"),
		mv(rook1, "a3"),
		mv(rook5, "a3"),
		{Kind: chess.KingsideCastle, PieceKind: chess.King, From: chess.MustSquare("e1"), To: chess.MustSquare("g1")},
	}
}

func TestMatch(t *testing.T) {
	legal := legalFixture()
	tests := []struct {
		text    string
		want    *chess.Move
		wantErr error
	}{
		{"Ne5", legal[2], nil},
		{"Nbd2", legal[0], nil},
		{"Nfd2", legal[1], nil},
		{"N3d2", legal[1], nil},
		{"R5a3", legal[4], nil},
		{"Ra5a3", legal[4], nil},
		{"O-O", legal[5], nil},
		{"Nd2", nil, errors.ErrAmbiguousMatch},
		{"Ra3", nil, errors.ErrAmbiguousMatch},
		{"Nxe5", nil, errors.ErrNoLegalMatch},
		{"O-O-O", nil, errors.ErrNoLegalMatch},
		{"Ncd2", nil, errors.ErrNoLegalMatch},
		{"??", nil, errors.ErrNotationSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Match(Decode(tt.text), legal)
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("Match(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEncodeDisambiguation(t *testing.T) {
	legal := legalFixture()
	want := []string{"Nbd2", "Nfd2", "Ne5", "R1a3", "R5a3", "O-O"}
	for i, m := range legal {
		if got := Encode(m, legal); got != want[i] {
			t.Errorf("Encode(%s) = %q, want %q", m, got, want[i])
		}
	}
}

func TestEncodeBothCoordinates(t *testing.T) {
	q := func(sq string) *chess.Piece { return chess.NewPiece(chess.Queen, chess.White, chess.MustSquare(sq)) }
	target := chess.MustSquare("e4")
	legal := []*chess.Move{}
	for _, sq := range []string{"e1", "h4", "h1"} {
		pc := q(sq)
		legal = append(legal, &chess.Move{Kind: chess.NormalMove, Piece: pc, PieceKind: chess.Queen, From: pc.Pos, To: target})
	}
	// e1 is on another file and h1 on the same file, so both are needed.
	if got := Encode(legal[1], legal); got != "Qh4e4" {
		t.Errorf("Encode() = %q, want Qh4e4", got)
	}
	got, err := Match(Decode("Qh4e4"), legal)
	if err != nil || got != legal[1] {
		t.Errorf("Match(Qh4e4) = %v, %v", got, err)
	}
}

func TestEncodePawns(t *testing.T) {
	pawn := chess.NewPiece(chess.Pawn, chess.Black, chess.MustSquare("b2"))
	tests := []struct {
		move chess.Move
		want string
	}{
		{chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, Piece: pawn, From: pawn.Pos, To: chess.MustSquare("b1"), Promotion: chess.Queen}, "b1=Q"},
		{chess.Move{Kind: chess.NormalMove, PieceKind: chess.Pawn, Piece: pawn, From: pawn.Pos, To: chess.MustSquare("a1"), IsCapture: true, Promotion: chess.Knight}, "bxa1=N"},
		{chess.Move{Kind: chess.QueensideCastle}, "O-O-O"},
		{chess.Move{Kind: chess.InvalidMove}, ""},
	}
	for _, tt := range tests {
		m := tt.move
		if got := Encode(&m, nil); got != tt.want {
			t.Errorf("Encode(%+v) = %q, want %q", tt.move, got, tt.want)
		}
	}
}
