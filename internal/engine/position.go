// Package engine implements the chess rules: move generation, the
// transactional execute/undo machinery, the legality filter and the game
// orchestrator that drives a game turn by turn.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Player is one side's state: the pieces it owns and its en passant
// eligibility, which is valid for exactly one opposing turn.
type Player struct {
	Colour         chess.Colour
	Pieces         []*chess.Piece
	King           *chess.Piece
	DoublePush     bool
	DoublePushPawn *chess.Piece
}

// add appends pc to the player's pieces.
func (pl *Player) add(pc *chess.Piece) {
	pl.Pieces = append(pl.Pieces, pc)
	if pc.Kind == chess.King {
		pl.King = pc
	}
}

// remove drops pc from the player's pieces and returns its index so that
// insert can put it back in the same place.
func (pl *Player) remove(pc *chess.Piece) int {
	for i, owned := range pl.Pieces {
		if owned == pc {
			pl.Pieces = append(pl.Pieces[:i], pl.Pieces[i+1:]...)
			return i
		}
	}
	return -1
}

// insert restores pc at index i.
func (pl *Player) insert(i int, pc *chess.Piece) {
	if i < 0 || i > len(pl.Pieces) {
		i = len(pl.Pieces)
	}
	pl.Pieces = append(pl.Pieces, nil)
	copy(pl.Pieces[i+1:], pl.Pieces[i:])
	pl.Pieces[i] = pc
}

// Position is a board together with both players and the side to move.
// It is not safe for concurrent use.
type Position struct {
	Board    *chess.Board
	Players  [2]*Player // indexed by chess.Colour
	Turn     chess.Colour
	FullMove int

	history []*Delta
}

// newEmptyPosition returns a position with no pieces, White to move.
func newEmptyPosition() *Position {
	return &Position{
		Board: chess.NewBoard(),
		Players: [2]*Player{
			chess.Black: {Colour: chess.Black},
			chess.White: {Colour: chess.White},
		},
		Turn:     chess.White,
		FullMove: 1,
	}
}

var backRank = [chess.BoardSize]chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p := newEmptyPosition()
	for file, kind := range backRank {
		p.addPiece(kind, chess.White, chess.SquareAt(file, 0))
		p.addPiece(chess.Pawn, chess.White, chess.SquareAt(file, 1))
		p.addPiece(chess.Pawn, chess.Black, chess.SquareAt(file, 6))
		p.addPiece(kind, chess.Black, chess.SquareAt(file, 7))
	}
	return p
}

// addPiece creates a piece, places it and hands it to its owner.
func (p *Position) addPiece(kind chess.PieceKind, colour chess.Colour, sq chess.Coord) *chess.Piece {
	pc := chess.NewPiece(kind, colour, sq)
	p.Board.Place(pc)
	p.Players[colour].add(pc)
	return pc
}

// Player returns the state of the given side.
func (p *Position) Player(c chess.Colour) *Player {
	return p.Players[c]
}

// Mover returns the side to move.
func (p *Position) Mover() *Player {
	return p.Players[p.Turn]
}

// Digest returns the compact serialization of the board.
func (p *Position) Digest() string {
	return p.Board.CompactString()
}

// Plies returns the number of moves played on this position and not undone.
func (p *Position) Plies() int {
	return len(p.history)
}
