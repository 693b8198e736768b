package chess

import (
	"testing"
)

// place puts a new piece on the named square and returns it.
func place(b *Board, kind PieceKind, colour Colour, square string) *Piece {
	p := NewPiece(kind, colour, MustSquare(square))
	b.Place(p)
	return p
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("playing surface empty", func(t *testing.T) {
		for file := 0; file < BoardSize; file++ {
			for rank := 0; rank < BoardSize; rank++ {
				sq := SquareAt(file, rank)
				if got := b.Get(sq); got != nil {
					t.Errorf("Get(%s) = %v; want empty", sq, got)
				}
			}
		}
	})

	t.Run("hedge holds sentinels", func(t *testing.T) {
		corners := []Coord{{0, 0}, {1, 1}, {GridSize - 1, GridSize - 1}, {Hedge + BoardSize, Hedge}}
		for _, c := range corners {
			if !b.Get(c).IsSentinel() {
				t.Errorf("Get(%v) is not a sentinel", c)
			}
		}
	})

	t.Run("sentinels are never removed", func(t *testing.T) {
		if got := b.Remove(Coord{0, 0}); got != nil {
			t.Errorf("Remove(hedge) = %v; want nil", got)
		}
		if !b.Get(Coord{0, 0}).IsSentinel() {
			t.Error("hedge cell lost its sentinel")
		}
	})
}

func TestCoordOffset(t *testing.T) {
	e4 := MustSquare("e4")
	got := e4.Offset(Coord{1, 2})
	if got.String() != "f6" {
		t.Errorf("e4.Offset(1,2) = %s; want f6", got)
	}
	if e4.String() != "e4" {
		t.Errorf("Offset mutated receiver: %s", e4)
	}
	if _, ok := ParseSquare("i9"); ok {
		t.Error("ParseSquare(i9) succeeded")
	}
}

func TestCrawl(t *testing.T) {
	b := NewBoard()
	rook := place(b, Rook, White, "a1")
	place(b, Pawn, Black, "a4")

	got := b.Crawl(rook.Pos, Orthogonals)
	// up: a2 a3 then a4 occupied; right: b1..h1 empty then hedge; down and
	// left hit the hedge immediately.
	want := []int{3, 8, 1, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Crawl()[%d] = %d; want %d", i, got[i], want[i])
		}
	}
	if len(got) != len(Orthogonals) {
		t.Errorf("len(Crawl()) = %d; want %d", len(got), len(Orthogonals))
	}
}

func TestAttackers(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		square string
		by     Colour
		want   int
	}{
		{"empty board", func(b *Board) {}, "e4", White, 0},
		{"rook on file", func(b *Board) { place(b, Rook, White, "e1") }, "e4", White, 1},
		{"rook blocked", func(b *Board) {
			place(b, Rook, White, "e1")
			place(b, Knight, Black, "e2")
		}, "e4", White, 0},
		{"bishop diagonal", func(b *Board) { place(b, Bishop, Black, "h7") }, "e4", Black, 1},
		{"queen both lines", func(b *Board) { place(b, Queen, White, "a4") }, "e4", White, 1},
		{"king adjacent", func(b *Board) { place(b, King, White, "d3") }, "e4", White, 1},
		{"king distant", func(b *Board) { place(b, King, White, "c2") }, "e4", White, 0},
		{"knight jump", func(b *Board) { place(b, Knight, Black, "f6") }, "e4", Black, 1},
		{"white pawn attacks forward", func(b *Board) { place(b, Pawn, White, "d3") }, "e4", White, 1},
		{"white pawn does not attack backward", func(b *Board) { place(b, Pawn, White, "d5") }, "e4", White, 0},
		{"black pawn attacks forward", func(b *Board) { place(b, Pawn, Black, "f5") }, "e4", Black, 1},
		{"pawn does not attack ahead", func(b *Board) { place(b, Pawn, Black, "e5") }, "e4", Black, 0},
		{"wrong colour ignored", func(b *Board) { place(b, Rook, Black, "e8") }, "e4", White, 0},
		{"several attackers", func(b *Board) {
			place(b, Rook, White, "e1")
			place(b, Knight, White, "g5")
			place(b, Bishop, White, "b1")
		}, "e4", White, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			tt.setup(b)
			got := b.Attackers(MustSquare(tt.square), tt.by)
			if len(got) != tt.want {
				t.Errorf("Attackers(%s, %v) = %v; want %d attackers", tt.square, tt.by, got, tt.want)
			}
		})
	}
}

func TestCompactString(t *testing.T) {
	b := NewBoard()
	if got := b.CompactString(); got != "8/8/8/8/8/8/8/8" {
		t.Errorf("empty CompactString() = %q", got)
	}

	place(b, King, White, "e1")
	place(b, King, Black, "e8")
	place(b, Pawn, White, "a2")
	place(b, Knight, Black, "h6")
	want := "4k3/8/7n/8/8/8/P7/4K3"
	if got := b.CompactString(); got != want {
		t.Errorf("CompactString() = %q; want %q", got, want)
	}
}

func TestRelocateAndRemove(t *testing.T) {
	b := NewBoard()
	n := place(b, Knight, White, "g1")
	b.Relocate(n, MustSquare("f3"))

	if b.Get(MustSquare("g1")) != nil {
		t.Error("origin not cleared")
	}
	if b.Get(MustSquare("f3")) != n || n.Pos.String() != "f3" {
		t.Errorf("knight at %s; want f3", n.Pos)
	}
	if got := b.Remove(MustSquare("f3")); got != n {
		t.Errorf("Remove(f3) = %v; want knight", got)
	}
}

func TestKindLetters(t *testing.T) {
	for _, kind := range []PieceKind{King, Queen, Rook, Bishop, Knight, Pawn} {
		got, ok := KindFromLetter(kind.Letter())
		if !ok || got != kind {
			t.Errorf("KindFromLetter(%c) = %v, %v; want %v", kind.Letter(), got, ok, kind)
		}
	}
	if _, ok := KindFromLetter('X'); ok {
		t.Error("KindFromLetter(X) succeeded")
	}
	for _, kind := range []MoveKind{NormalMove, KingsideCastle, QueensideCastle, InvalidMove} {
		if got, ok := MoveKindFromString(kind.String()); !ok || got != kind {
			t.Errorf("MoveKindFromString(%q) = %v; want %v", kind.String(), got, kind)
		}
	}
}

func TestMoveClone(t *testing.T) {
	p := NewPiece(Pawn, White, MustSquare("e2"))
	m := &Move{Kind: NormalMove, Piece: p, PieceKind: Pawn, From: p.Pos, To: MustSquare("e4")}
	c := m.Clone()
	c.To = MustSquare("e3")

	if m.To.String() != "e4" {
		t.Errorf("clone shares coordinates: original To = %s", m.To)
	}
	if c.Piece != m.Piece {
		t.Error("clone does not share the piece reference")
	}
	if m.LongAlgebraic() != "e2e4" {
		t.Errorf("LongAlgebraic() = %q; want e2e4", m.LongAlgebraic())
	}
}
