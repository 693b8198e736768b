package chess

import "fmt"

// Coord is a (file, rank) pair in padded-grid space. Files and ranks of the
// playing surface run from Hedge to Hedge+BoardSize-1.
type Coord struct {
	File int
	Rank int
}

// Offset returns the coordinate reached by stepping d from c.
func (c Coord) Offset(d Coord) Coord {
	return Coord{File: c.File + d.File, Rank: c.Rank + d.Rank}
}

// Scale returns the direction d multiplied by n.
func (d Coord) Scale(n int) Coord {
	return Coord{File: d.File * n, Rank: d.Rank * n}
}

// OnBoard reports whether c lies on the 8x8 playing surface.
func (c Coord) OnBoard() bool {
	return c.File >= Hedge && c.File < Hedge+BoardSize &&
		c.Rank >= Hedge && c.Rank < Hedge+BoardSize
}

// FileLetter returns 'a'..'h' for on-board files.
func (c Coord) FileLetter() byte {
	return byte('a' + c.File - Hedge)
}

// RankDigit returns '1'..'8' for on-board ranks.
func (c Coord) RankDigit() byte {
	return byte('1' + c.Rank - Hedge)
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coord) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{c.FileLetter(), c.RankDigit()})
}

// SquareAt converts 0-based file and rank indices of the playing surface
// into a padded coordinate.
func SquareAt(file, rank int) Coord {
	return Coord{File: file + Hedge, Rank: rank + Hedge}
}

// FileFromLetter converts 'a'..'h' to a padded file index.
func FileFromLetter(letter byte) (int, bool) {
	if letter < 'a' || letter > 'h' {
		return Unspecified, false
	}
	return int(letter-'a') + Hedge, true
}

// RankFromDigit converts '1'..'8' to a padded rank index.
func RankFromDigit(digit byte) (int, bool) {
	if digit < '1' || digit > '8' {
		return Unspecified, false
	}
	return int(digit-'1') + Hedge, true
}

// ParseSquare converts an algebraic square name such as "e4".
func ParseSquare(name string) (Coord, bool) {
	if len(name) != 2 {
		return Coord{}, false
	}
	file, okFile := FileFromLetter(name[0])
	rank, okRank := RankFromDigit(name[1])
	if !okFile || !okRank {
		return Coord{}, false
	}
	return Coord{File: file, Rank: rank}, true
}

// MustSquare is ParseSquare for square names known at compile time.
func MustSquare(name string) Coord {
	c, ok := ParseSquare(name)
	if !ok {
		panic("chess: bad square " + name)
	}
	return c
}

// Direction vectors used by move generation and attack detection.
var (
	Orthogonals = []Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	Diagonals   = []Coord{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}

	AllDirections = []Coord{
		{0, 1}, {1, 1}, {1, 0}, {1, -1},
		{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}

	KnightJumps = []Coord{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
)
