package chess

import "strings"

// Move describes a transition. Generated castles carry the king and its
// squares, but only their kind identifies them: the side is implied by the
// turn. Moves produced by notation parsing have a nil Piece and may leave
// From.File or From.Rank as Unspecified.
type Move struct {
	Kind      MoveKind
	Piece     *Piece    // Mover, nil for parsed candidates and castles
	PieceKind PieceKind // Kind of the mover when the move was generated
	From      Coord
	To        Coord
	IsCapture bool
	Captured  *Piece    // Set by generation, kept after execution for undo
	Promotion PieceKind // NoKind unless the move promotes
}

// MoveKey is the value identity of a move: two legal moves in the same
// position with equal keys are the same move.
type MoveKey struct {
	Kind      MoveKind
	PieceKind PieceKind
	From      Coord
	To        Coord
	IsCapture bool
	Promotion PieceKind
}

// NewInvalidMove returns the move value used for unparseable input.
func NewInvalidMove() *Move {
	return &Move{Kind: InvalidMove}
}

// IsPromotion reports whether the move promotes a pawn.
func (m *Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastle reports whether the move is either castle.
func (m *Move) IsCastle() bool {
	return m.Kind == KingsideCastle || m.Kind == QueensideCastle
}

// Clone returns an independent copy. Coordinates are values so they are
// copied; piece references stay shared.
func (m *Move) Clone() *Move {
	c := *m
	return &c
}

// Key returns the tuple identity of the move.
func (m *Move) Key() MoveKey {
	return MoveKey{
		Kind:      m.Kind,
		PieceKind: m.PieceKind,
		From:      m.From,
		To:        m.To,
		IsCapture: m.IsCapture,
		Promotion: m.Promotion,
	}
}

// LongAlgebraic returns the move in from-to form, e.g. "e2e4" or "e7e8q".
// Castles render as the king's two squares when known.
func (m *Move) LongAlgebraic() string {
	if m.Kind == InvalidMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// String returns a debugging description of the move.
func (m *Move) String() string {
	switch m.Kind {
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	case InvalidMove:
		return "invalid"
	}
	return m.PieceKind.String() + " " + m.LongAlgebraic()
}
