package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// promotionRank returns the padded rank on which pawns of c promote.
func promotionRank(c chess.Colour) int {
	if c == chess.White {
		return chess.Hedge + chess.BoardSize - 1
	}
	return chess.Hedge
}

// homeRank returns the padded rank pawns of c start on.
func homeRank(c chess.Colour) int {
	if c == chess.White {
		return chess.Hedge + 1
	}
	return chess.Hedge + chess.BoardSize - 2
}

// pawnMoves generates captures, pushes and en passant for a pawn.
func (p *Position) pawnMoves(pc *chess.Piece) []*chess.Move {
	fwd := pc.Colour.Forward()
	var moves []*chess.Move

	for _, side := range []int{-1, 1} {
		to := pc.Pos.Offset(chess.Coord{File: side, Rank: fwd})
		if target := p.Board.Get(to); target.IsEnemyOf(pc.Colour) {
			moves = appendPawnMove(moves, newMove(pc, to, target))
		}
	}

	one := pc.Pos.Offset(chess.Coord{Rank: fwd})
	if p.Board.IsEmpty(one) {
		moves = appendPawnMove(moves, newMove(pc, one, nil))
		two := one.Offset(chess.Coord{Rank: fwd})
		if !pc.HasMoved && p.Board.IsEmpty(two) {
			moves = appendPawnMove(moves, newMove(pc, two, nil))
		}
	}

	if m := p.enPassant(pc); m != nil {
		moves = appendPawnMove(moves, m)
	}
	return moves
}

// enPassant returns the en passant capture available to pc, if any. Only
// the pawn the opponent double pushed on its last move can be taken.
func (p *Position) enPassant(pc *chess.Piece) *chess.Move {
	opp := p.Players[pc.Colour.Opposite()]
	victim := opp.DoublePushPawn
	if !opp.DoublePush || victim == nil || p.Board.Get(victim.Pos) != victim {
		return nil
	}
	if victim.Pos.Rank != pc.Pos.Rank {
		return nil
	}
	if df := victim.Pos.File - pc.Pos.File; df != 1 && df != -1 {
		return nil
	}
	to := victim.Pos.Offset(chess.Coord{Rank: pc.Colour.Forward()})
	if !p.Board.IsEmpty(to) {
		return nil
	}
	return newMove(pc, to, victim)
}

// appendPawnMove appends m, expanding it into one move per promotion kind
// when it lands on the last rank.
func appendPawnMove(moves []*chess.Move, m *chess.Move) []*chess.Move {
	if m.To.Rank != promotionRank(m.Piece.Colour) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		promo := m.Clone()
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}
