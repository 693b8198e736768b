package chess

// Piece is a single unit placed on the board. Its position is kept in step
// with the board by Board.Place, Board.Remove and Board.Relocate.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Pos      Coord
	HasMoved bool
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(kind PieceKind, colour Colour, pos Coord) *Piece {
	return &Piece{Kind: kind, Colour: colour, Pos: pos}
}

// IsSentinel reports whether p is a border marker.
func (p *Piece) IsSentinel() bool {
	return p != nil && p.Kind == Sentinel
}

// IsEnemyOf reports whether p is a game piece of the colour opposite to c.
func (p *Piece) IsEnemyOf(c Colour) bool {
	return p != nil && p.Kind != Sentinel && p.Colour != c
}

// Symbol returns the piece letter, uppercase for White and lowercase for
// Black.
func (p *Piece) Symbol() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && p.Kind != Sentinel {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "white knight on f3".
func (p *Piece) String() string {
	if p == nil {
		return "none"
	}
	if p.Kind == Sentinel {
		return "sentinel"
	}
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Pos.String()
}
