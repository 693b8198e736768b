package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// InCheck reports whether the king of colour c is attacked.
func (p *Position) InCheck(c chess.Colour) bool {
	king := p.Players[c].King
	return king != nil && p.Board.IsAttacked(king.Pos, c.Opposite())
}

// Checkers returns the pieces giving check to colour c.
func (p *Position) Checkers(c chess.Colour) []*chess.Piece {
	king := p.Players[c].King
	if king == nil {
		return nil
	}
	return p.Board.Attackers(king.Pos, c.Opposite())
}

// anyAttacked reports whether any of squares is attacked by colour by.
func (p *Position) anyAttacked(squares []chess.Coord, by chess.Colour) bool {
	for _, sq := range squares {
		if p.Board.IsAttacked(sq, by) {
			return true
		}
	}
	return false
}
