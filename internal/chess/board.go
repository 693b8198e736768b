package chess

import "strings"

// sentinel is the shared marker occupying every hedge cell.
var sentinel = &Piece{Kind: Sentinel}

// Board is the playing surface embedded in a grid whose hedge cells are
// permanently occupied by sentinels, so ray-casts and fixed offsets never
// need bounds checks.
type Board struct {
	// Squares is indexed [file][rank] in padded-grid space.
	Squares [GridSize][GridSize]*Piece
}

// NewBoard creates an empty playing surface with the hedge filled in.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < GridSize; file++ {
		for rank := 0; rank < GridSize; rank++ {
			if !(Coord{File: file, Rank: rank}).OnBoard() {
				b.Squares[file][rank] = sentinel
			}
		}
	}
	return b
}

// Get returns the piece at c, a sentinel in the hedge, or nil if empty.
func (b *Board) Get(c Coord) *Piece {
	return b.Squares[c.File][c.Rank]
}

// IsEmpty reports whether c holds nothing, sentinels included.
func (b *Board) IsEmpty(c Coord) bool {
	return b.Squares[c.File][c.Rank] == nil
}

// Place puts p on the square named by its position.
func (b *Board) Place(p *Piece) {
	b.Squares[p.Pos.File][p.Pos.Rank] = p
}

// Remove clears c and returns what was there. Sentinels are never removed.
func (b *Board) Remove(c Coord) *Piece {
	p := b.Squares[c.File][c.Rank]
	if p.IsSentinel() {
		return nil
	}
	b.Squares[c.File][c.Rank] = nil
	return p
}

// Relocate moves p to an empty square and updates its position.
func (b *Board) Relocate(p *Piece, to Coord) {
	b.Squares[p.Pos.File][p.Pos.Rank] = nil
	p.Pos = to
	b.Squares[to.File][to.Rank] = p
}

// Crawl returns, for each direction, the number of steps from origin to the
// first occupied cell. Every entry is at least 1; sentinels stop every ray.
func (b *Board) Crawl(origin Coord, dirs []Coord) []int {
	extents := make([]int, len(dirs))
	for i, d := range dirs {
		steps := 1
		for c := origin.Offset(d); b.IsEmpty(c); c = c.Offset(d) {
			steps++
		}
		extents[i] = steps
	}
	return extents
}

// Pieces returns every game piece on the board, rank 1 to rank 8 and file a
// to file h.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for rank := Hedge; rank < Hedge+BoardSize; rank++ {
		for file := Hedge; file < Hedge+BoardSize; file++ {
			if p := b.Squares[file][rank]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// CompactString renders piece placement from rank 8 down to rank 1 with
// digits for empty runs and '/' between ranks.
func (b *Board) CompactString() string {
	var sb strings.Builder
	for rank := Hedge + BoardSize - 1; rank >= Hedge; rank-- {
		empty := 0
		for file := Hedge; file < Hedge+BoardSize; file++ {
			p := b.Squares[file][rank]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > Hedge {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// String renders a text diagram with White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := Hedge + BoardSize - 1; rank >= Hedge; rank-- {
		sb.WriteByte(byte('1' + rank - Hedge))
		sb.WriteByte(' ')
		for file := Hedge; file < Hedge+BoardSize; file++ {
			if p := b.Squares[file][rank]; p != nil {
				sb.WriteByte(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
			if file < Hedge+BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
