package engine

import (
	"fmt"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// Markers appended to logged notation.
const (
	CheckMarker = "+"
	MateMarker  = "#"
)

// LogEntry is one executed move as it appears in the move log.
type LogEntry struct {
	Move     *chess.Move
	Notation string // With check or mate marker
	Colour   chess.Colour
	Digest   string // Board after the move

	delta *Delta
}

// Update is what a caller learns after a move is executed.
type Update struct {
	Digest   string
	Notation string
	Status   Status
	Result   Result
}

// Game drives a game turn by turn: it keeps the legal moves of the side to
// move, matches submitted moves against them, executes them and decides
// when the game is over. A Game is not safe for concurrent use; callers
// that share one must serialize access.
type Game struct {
	pos     *Position
	start   string
	log     []LogEntry
	legal   *MoveSet
	check   bool
	result  Result
	phase   Phase
	matched *chess.Move
	logger  log.Interface
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for move and game-end events.
func WithLogger(l log.Interface) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

func newGame(pos *Position, opts []Option) *Game {
	g := &Game{
		pos:    pos,
		start:  pos.FEN(),
		logger: &log.Logger{Handler: discard.New(), Level: log.InfoLevel},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGame starts a game from the standard position.
func NewGame(opts ...Option) *Game {
	g := newGame(NewPosition(), opts)
	if err := g.Resolve(); err != nil {
		panic(err) // the starting position always resolves
	}
	return g
}

// NewGameFromFEN starts a game from a FEN position.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := newGame(pos, opts)
	if err := g.Resolve(); err != nil {
		return nil, err
	}
	return g, nil
}

// Resolve computes the legal moves and check status of the side to move
// and ends the game when there are no legal moves.
func (g *Game) Resolve() error {
	set, err := g.pos.LegalMoves()
	if err != nil {
		return err
	}
	g.legal = set
	g.matched = nil
	g.check = g.pos.InCheck(g.pos.Turn)

	if set.Len() > 0 {
		g.result = Undecided
		g.phase = AwaitingNotation
		return nil
	}

	g.phase = Over
	if g.check {
		g.result = winFor(g.pos.Turn.Opposite())
	} else {
		g.result = Draw
	}
	g.logger.WithFields(log.Fields{
		"result": g.result.String(),
		"status": g.Status().String(),
		"plies":  g.pos.Plies(),
	}).Info("game over")
	return nil
}

// ready checks that a move may be matched this turn.
func (g *Game) ready() error {
	if g.legal == nil {
		return fmt.Errorf("legal moves not computed: %w", errors.ErrPrecondition)
	}
	if g.phase == Over {
		return errors.ErrGameOver
	}
	return nil
}

// Match decodes text and resolves it to exactly one legal move.
func (g *Game) Match(text string) (*chess.Move, error) {
	if err := g.ready(); err != nil {
		return nil, &errors.MoveError{Err: err, Ply: len(g.log) + 1, MoveText: text}
	}
	cand := notation.Decode(text)
	if cand.Kind == chess.InvalidMove {
		return nil, &errors.MoveError{Err: errors.ErrNotationSyntax, Ply: len(g.log) + 1, MoveText: text}
	}
	matches := notation.Filter(cand, g.legal.order)
	switch len(matches) {
	case 0:
		return nil, &errors.MoveError{Err: errors.ErrNoLegalMatch, Ply: len(g.log) + 1, MoveText: text}
	case 1:
		g.matched = matches[0]
		g.phase = Matched
		return matches[0], nil
	}
	return nil, &errors.MoveError{
		Err:      errors.ErrAmbiguousMatch,
		Ply:      len(g.log) + 1,
		MoveText: text,
		Matches:  len(matches),
	}
}

// MatchDigest selects the legal move that produces the given board digest.
func (g *Game) MatchDigest(digest string) (*chess.Move, error) {
	if err := g.ready(); err != nil {
		return nil, &errors.MoveError{Err: err, Ply: len(g.log) + 1, MoveText: digest}
	}
	m := g.legal.Get(digest)
	if m == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoLegalMatch, Ply: len(g.log) + 1, MoveText: digest}
	}
	g.matched = m
	g.phase = Matched
	return m, nil
}

// Execute plays a move taken from the current legal moves, logs it and
// resolves the next turn.
func (g *Game) Execute(m *chess.Move) (Update, error) {
	if err := g.ready(); err != nil {
		return Update{}, err
	}
	if m == nil || m.Kind == chess.InvalidMove {
		return Update{}, fmt.Errorf("execute invalid move: %w", errors.ErrPrecondition)
	}
	if !g.legal.Contains(m) {
		return Update{}, fmt.Errorf("execute %s: not a legal move this turn: %w", m, errors.ErrPrecondition)
	}

	text := notation.Encode(m, g.legal.order)
	colour := g.pos.Turn
	d, err := g.pos.Play(m)
	if err != nil {
		return Update{}, err
	}
	if err := g.Resolve(); err != nil {
		return Update{}, err
	}
	switch {
	case g.phase == Over && g.check:
		text += MateMarker
	case g.check:
		text += CheckMarker
	}

	entry := LogEntry{Move: m, Notation: text, Colour: colour, Digest: g.pos.Digest(), delta: d}
	g.log = append(g.log, entry)
	g.logger.WithFields(log.Fields{
		"ply":    len(g.log),
		"move":   text,
		"colour": colour.String(),
		"digest": entry.Digest,
	}).Debug("move executed")

	return g.update(), nil
}

// Play matches text and executes the resulting move.
func (g *Game) Play(text string) (Update, error) {
	m, err := g.Match(text)
	if err != nil {
		return Update{}, err
	}
	return g.Execute(m)
}

// PlayDigest executes the move that produces digest.
func (g *Game) PlayDigest(digest string) (Update, error) {
	m, err := g.MatchDigest(digest)
	if err != nil {
		return Update{}, err
	}
	return g.Execute(m)
}

// TakeBack reverts the last move in the log and resolves the turn again.
func (g *Game) TakeBack() error {
	n := len(g.log)
	if n == 0 {
		return fmt.Errorf("take back with empty log: %w", errors.ErrPrecondition)
	}
	if err := g.pos.Undo(g.log[n-1].delta); err != nil {
		return err
	}
	g.log = g.log[:n-1]
	return g.Resolve()
}

func (g *Game) update() Update {
	u := Update{Digest: g.pos.Digest(), Status: g.Status(), Result: g.result}
	if n := len(g.log); n > 0 {
		u.Notation = g.log[n-1].Notation
	}
	return u
}

// Status returns the check status of the side to move.
func (g *Game) Status() Status {
	switch {
	case g.phase == Over && g.check:
		return Checkmate
	case g.phase == Over:
		return Stalemate
	case g.check:
		return Check
	}
	return InPlay
}

// Render returns the notation of a legal move of the current turn, without
// check markers.
func (g *Game) Render(m *chess.Move) string {
	if g.legal == nil {
		return ""
	}
	return notation.Encode(m, g.legal.order)
}

// LegalNotations renders every legal move of the side to move, without
// check markers, in generation order.
func (g *Game) LegalNotations() []string {
	if g.legal == nil {
		return nil
	}
	out := make([]string, 0, g.legal.Len())
	for _, m := range g.legal.order {
		out = append(out, notation.Encode(m, g.legal.order))
	}
	return out
}

// LegalMoves returns the legal moves of the side to move. It is empty once
// the game is over.
func (g *Game) LegalMoves() *MoveSet { return g.legal }

// Log returns a copy of the move log.
func (g *Game) Log() []LogEntry { return append([]LogEntry(nil), g.log...) }

// Notations returns the logged notation of every move.
func (g *Game) Notations() []string {
	out := make([]string, len(g.log))
	for i, e := range g.log {
		out[i] = e.Notation
	}
	return out
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour { return g.pos.Turn }

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.check }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.phase == Over }

// Result returns the outcome, Undecided while the game is on.
func (g *Game) Result() Result { return g.result }

// Phase returns where the game stands within the current turn.
func (g *Game) Phase() Phase { return g.phase }

// Matched returns the move accepted by the last successful match this
// turn, or nil.
func (g *Game) Matched() *chess.Move { return g.matched }

// Digest returns the compact serialization of the board.
func (g *Game) Digest() string { return g.pos.Digest() }

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string { return g.start }

// FEN returns the position as a FEN string.
func (g *Game) FEN() string { return g.pos.FEN() }

// Board returns the board. Callers must not modify it.
func (g *Game) Board() *chess.Board { return g.pos.Board }

// Position returns the underlying position. Callers must not modify it.
func (g *Game) Position() *Position { return g.pos }
