// Package chess provides the core chess value types: colours, piece kinds,
// coordinates on the padded grid, pieces, moves and the board itself.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank direction pawns of this colour advance in.
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind identifies the type of a piece.
type PieceKind int

const (
	NoKind PieceKind = iota // Absent, e.g. no promotion
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	Sentinel // Border marker, never owned by a player
)

var kindNames = [...]string{"None", "King", "Queen", "Rook", "Bishop", "Knight", "Pawn", "Sentinel"}

var kindLetters = [...]byte{0, 'K', 'Q', 'R', 'B', 'N', 'P', '#'}

// String returns the name of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the uppercase letter for a piece kind, or 0 for NoKind.
func (k PieceKind) Letter() byte {
	if k >= 0 && int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

// KindFromLetter converts an uppercase or lowercase piece letter back to
// its kind.
func KindFromLetter(letter byte) (PieceKind, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	switch letter {
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'R':
		return Rook, true
	case 'B':
		return Bishop, true
	case 'N':
		return Knight, true
	case 'P':
		return Pawn, true
	}
	return NoKind, false
}

// PromotionKinds lists the promotion targets in the order they are generated.
var PromotionKinds = [...]PieceKind{Queen, Bishop, Knight, Rook}

// MoveKind categorizes moves.
type MoveKind int

const (
	NormalMove MoveKind = iota
	KingsideCastle
	QueensideCastle
	InvalidMove
)

var moveKindNames = [...]string{"normal", "kingside-castle", "queenside-castle", "invalid"}

// String returns the name of a move kind.
func (k MoveKind) String() string {
	if k >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "invalid"
}

// MoveKindFromString converts a name produced by MoveKind.String back to
// the kind. Unknown names yield InvalidMove and false.
func MoveKindFromString(s string) (MoveKind, bool) {
	for i, name := range moveKindNames {
		if name == s {
			return MoveKind(i), true
		}
	}
	return InvalidMove, false
}

// Board geometry. The playing surface is surrounded by a hedge of
// sentinel cells wide enough for knight jumps.
const (
	BoardSize = 8
	Hedge     = 2
	GridSize  = Hedge + BoardSize + Hedge
)

// Unspecified marks an unknown file or rank in a partially parsed move.
const Unspecified = -1
