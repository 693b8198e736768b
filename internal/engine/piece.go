package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// candidates returns the pseudo-legal moves of pc: moves that follow the
// piece's movement rules but may leave its own king attacked.
func (p *Position) candidates(pc *chess.Piece) []*chess.Move {
	switch pc.Kind {
	case chess.King:
		return append(p.stepMoves(pc, chess.AllDirections), p.castleMoves(pc)...)
	case chess.Knight:
		return p.stepMoves(pc, chess.KnightJumps)
	case chess.Rook:
		return p.slideMoves(pc, chess.Orthogonals)
	case chess.Bishop:
		return p.slideMoves(pc, chess.Diagonals)
	case chess.Queen:
		return p.slideMoves(pc, chess.AllDirections)
	case chess.Pawn:
		return p.pawnMoves(pc)
	}
	return nil
}

// newMove builds a normal move of pc to to, capturing victim if not nil.
func newMove(pc *chess.Piece, to chess.Coord, victim *chess.Piece) *chess.Move {
	return &chess.Move{
		Kind:      chess.NormalMove,
		Piece:     pc,
		PieceKind: pc.Kind,
		From:      pc.Pos,
		To:        to,
		IsCapture: victim != nil,
		Captured:  victim,
	}
}

// stepMoves generates single-step moves along fixed offsets, used for
// knights and the king.
func (p *Position) stepMoves(pc *chess.Piece, offsets []chess.Coord) []*chess.Move {
	var moves []*chess.Move
	for _, off := range offsets {
		to := pc.Pos.Offset(off)
		target := p.Board.Get(to)
		switch {
		case target == nil:
			moves = append(moves, newMove(pc, to, nil))
		case target.IsEnemyOf(pc.Colour):
			moves = append(moves, newMove(pc, to, target))
		}
	}
	return moves
}

// slideMoves generates moves for rooks, bishops and queens: every empty
// square up to the first blocker, then the blocker itself if it is an enemy.
func (p *Position) slideMoves(pc *chess.Piece, dirs []chess.Coord) []*chess.Move {
	var moves []*chess.Move
	for i, steps := range p.Board.Crawl(pc.Pos, dirs) {
		d := dirs[i]
		for n := 1; n < steps; n++ {
			moves = append(moves, newMove(pc, pc.Pos.Offset(d.Scale(n)), nil))
		}
		to := pc.Pos.Offset(d.Scale(steps))
		if blocker := p.Board.Get(to); blocker.IsEnemyOf(pc.Colour) {
			moves = append(moves, newMove(pc, to, blocker))
		}
	}
	return moves
}
