package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleRegion describes one castle for one side: where king and rook
// start and finish, the squares between them that must be empty and the
// squares from the rook's corner to the king's square, none of which may
// be attacked.
type castleRegion struct {
	kind     chess.MoveKind
	letter   byte // FEN castling letter for White
	kingFrom chess.Coord
	kingTo   chess.Coord
	rookFrom chess.Coord
	rookTo   chess.Coord
	empty    []chess.Coord
	safe     []chess.Coord
}

// castleRegions is indexed by colour, kingside first.
var castleRegions = [2][2]castleRegion{
	chess.Black: {kingsideRegion(7), queensideRegion(7)},
	chess.White: {kingsideRegion(0), queensideRegion(0)},
}

func kingsideRegion(rank int) castleRegion {
	sq := func(file int) chess.Coord { return chess.SquareAt(file, rank) }
	return castleRegion{
		kind:     chess.KingsideCastle,
		letter:   'K',
		kingFrom: sq(4),
		kingTo:   sq(6),
		rookFrom: sq(7),
		rookTo:   sq(5),
		empty:    []chess.Coord{sq(5), sq(6)},
		safe:     []chess.Coord{sq(7), sq(6), sq(5), sq(4)},
	}
}

func queensideRegion(rank int) castleRegion {
	sq := func(file int) chess.Coord { return chess.SquareAt(file, rank) }
	return castleRegion{
		kind:     chess.QueensideCastle,
		letter:   'Q',
		kingFrom: sq(4),
		kingTo:   sq(2),
		rookFrom: sq(0),
		rookTo:   sq(3),
		empty:    []chess.Coord{sq(1), sq(2), sq(3)},
		safe:     []chess.Coord{sq(0), sq(1), sq(2), sq(3), sq(4)},
	}
}

// regionFor returns the castle region of kind for colour c.
func regionFor(c chess.Colour, kind chess.MoveKind) *castleRegion {
	for i := range castleRegions[c] {
		if castleRegions[c][i].kind == kind {
			return &castleRegions[c][i]
		}
	}
	return nil
}

// castlingRook returns the unmoved rook of the king's colour standing on
// the region's corner, or nil.
func (p *Position) castlingRook(king *chess.Piece, r *castleRegion) *chess.Piece {
	rook := p.Board.Get(r.rookFrom)
	if rook == nil || rook.IsSentinel() || rook.Kind != chess.Rook ||
		rook.Colour != king.Colour || rook.HasMoved {
		return nil
	}
	return rook
}

// castleMoves generates the castles available to an unmoved king.
func (p *Position) castleMoves(king *chess.Piece) []*chess.Move {
	if king.HasMoved {
		return nil
	}
	var moves []*chess.Move
	for i := range castleRegions[king.Colour] {
		r := &castleRegions[king.Colour][i]
		if king.Pos != r.kingFrom || p.castlingRook(king, r) == nil {
			continue
		}
		if !p.allEmpty(r.empty) || p.anyAttacked(r.safe, king.Colour.Opposite()) {
			continue
		}
		moves = append(moves, &chess.Move{
			Kind:      r.kind,
			Piece:     king,
			PieceKind: chess.King,
			From:      r.kingFrom,
			To:        r.kingTo,
		})
	}
	return moves
}

// allEmpty reports whether every square is unoccupied.
func (p *Position) allEmpty(squares []chess.Coord) bool {
	for _, sq := range squares {
		if !p.Board.IsEmpty(sq) {
			return false
		}
	}
	return true
}
