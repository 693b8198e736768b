package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// applyMode selects how much of a move apply performs.
type applyMode int

const (
	// simulate leaves move-history flags alone and relocates only the king
	// for castles.
	simulate applyMode = iota
	// commit performs the whole move and updates move-history flags.
	commit
)

// Delta records everything one applied move changed, so it can be reverted
// exactly.
type Delta struct {
	Move *chess.Move

	mode     applyMode
	piece    *chess.Piece
	from     chess.Coord
	hadMoved bool

	captured   *chess.Piece
	capturedAt int

	rook         *chess.Piece
	rookFrom     chess.Coord
	rookHadMoved bool

	doublePush     bool
	doublePushPawn *chess.Piece

	turn     chess.Colour
	fullMove int
}

// apply performs m on the board and returns the delta that undoes it.
func (p *Position) apply(m *chess.Move, mode applyMode) (*Delta, error) {
	switch {
	case m == nil:
		return nil, fmt.Errorf("apply nil move: %w", errors.ErrPrecondition)
	case m.Kind == chess.InvalidMove:
		return nil, fmt.Errorf("apply invalid move: %w", errors.ErrPrecondition)
	case m.IsCastle():
		return p.applyCastle(m, mode)
	}

	pc := m.Piece
	if pc == nil || p.Board.Get(m.From) != pc {
		return nil, fmt.Errorf("apply %s: mover not on %s: %w", m, m.From, errors.ErrPrecondition)
	}
	mover := p.Players[pc.Colour]
	d := &Delta{
		Move:           m,
		mode:           mode,
		piece:          pc,
		from:           m.From,
		hadMoved:       pc.HasMoved,
		capturedAt:     -1,
		doublePush:     mover.DoublePush,
		doublePushPawn: mover.DoublePushPawn,
	}

	if m.IsCapture {
		victim := m.Captured
		if victim == nil || p.Board.Get(victim.Pos) != victim {
			return nil, fmt.Errorf("apply %s: captured piece missing: %w", m, errors.ErrPrecondition)
		}
		p.Board.Remove(victim.Pos)
		d.captured = victim
		d.capturedAt = p.Players[victim.Colour].remove(victim)
	}
	if !p.Board.IsEmpty(m.To) {
		p.restoreCaptured(d)
		return nil, fmt.Errorf("apply %s: destination occupied: %w", m, errors.ErrPrecondition)
	}

	p.Board.Relocate(pc, m.To)
	if m.IsPromotion() {
		pc.Kind = m.Promotion
	}

	if mode == commit {
		pc.HasMoved = true
		mover.DoublePush = m.PieceKind == chess.Pawn && abs(m.To.Rank-m.From.Rank) == 2
		mover.DoublePushPawn = nil
		if mover.DoublePush {
			mover.DoublePushPawn = pc
		}
	}
	return d, nil
}

// applyCastle performs a castle for the side to move. Simulated castles
// move only the king; the rook's path was checked during generation.
func (p *Position) applyCastle(m *chess.Move, mode applyMode) (*Delta, error) {
	mover := p.Players[p.Turn]
	king := mover.King
	r := regionFor(p.Turn, m.Kind)
	if king == nil || king.Pos != r.kingFrom {
		return nil, fmt.Errorf("apply %s: king not on %s: %w", m, r.kingFrom, errors.ErrPrecondition)
	}
	rook := p.castlingRook(king, r)
	if rook == nil {
		return nil, fmt.Errorf("apply %s: no rook on %s: %w", m, r.rookFrom, errors.ErrPrecondition)
	}
	if !p.allEmpty(r.empty) {
		return nil, fmt.Errorf("apply %s: path blocked: %w", m, errors.ErrPrecondition)
	}

	d := &Delta{
		Move:           m,
		mode:           mode,
		piece:          king,
		from:           king.Pos,
		hadMoved:       king.HasMoved,
		capturedAt:     -1,
		doublePush:     mover.DoublePush,
		doublePushPawn: mover.DoublePushPawn,
	}
	p.Board.Relocate(king, r.kingTo)
	if mode == simulate {
		return d, nil
	}

	d.rook, d.rookFrom, d.rookHadMoved = rook, rook.Pos, rook.HasMoved
	p.Board.Relocate(rook, r.rookTo)
	king.HasMoved = true
	rook.HasMoved = true
	mover.DoublePush = false
	mover.DoublePushPawn = nil
	return d, nil
}

// revert undoes a delta produced by apply.
func (p *Position) revert(d *Delta) {
	if d.rook != nil {
		p.Board.Relocate(d.rook, d.rookFrom)
		d.rook.HasMoved = d.rookHadMoved
	}
	if d.Move.IsPromotion() {
		d.piece.Kind = d.Move.PieceKind
	}
	p.Board.Relocate(d.piece, d.from)
	d.piece.HasMoved = d.hadMoved
	p.restoreCaptured(d)

	mover := p.Players[d.piece.Colour]
	mover.DoublePush = d.doublePush
	mover.DoublePushPawn = d.doublePushPawn
}

// restoreCaptured puts a captured piece back on the board and in its
// owner's collection.
func (p *Position) restoreCaptured(d *Delta) {
	if d.captured == nil {
		return
	}
	p.Board.Place(d.captured)
	p.Players[d.captured.Colour].insert(d.capturedAt, d.captured)
	d.captured = nil
}

// Try applies m provisionally, without touching move-history flags, calls
// fn, and rolls the position back however fn returns.
func (p *Position) Try(m *chess.Move, fn func() error) error {
	d, err := p.apply(m, simulate)
	if err != nil {
		return err
	}
	defer p.revert(d)
	return fn()
}

// Play commits m, passes the turn and records the delta in the history.
func (p *Position) Play(m *chess.Move) (*Delta, error) {
	d, err := p.apply(m, commit)
	if err != nil {
		return nil, err
	}
	d.turn, d.fullMove = p.Turn, p.FullMove
	if p.Turn == chess.Black {
		p.FullMove++
	}
	p.Turn = p.Turn.Opposite()
	p.history = append(p.history, d)
	return d, nil
}

// Undo reverts d, which must be the most recently played delta.
func (p *Position) Undo(d *Delta) error {
	n := len(p.history)
	if n == 0 || p.history[n-1] != d {
		return fmt.Errorf("undo out of order: %w", errors.ErrPrecondition)
	}
	p.history = p.history[:n-1]
	p.revert(d)
	p.Turn, p.FullMove = d.turn, d.fullMove
	return nil
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
