package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status is the check status of the side to move.
type Status int

const (
	InPlay Status = iota
	Check
	Checkmate
	Stalemate
)

var statusNames = [...]string{"in-play", "check", "checkmate", "stalemate"}

// String returns the name of the status.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Result is the outcome of a game, rendered as in PGN.
type Result int

const (
	Undecided Result = iota
	WhiteWins
	BlackWins
	Draw
)

var resultNames = [...]string{"*", "1-0", "0-1", "1/2-1/2"}

// String returns the PGN result token.
func (r Result) String() string {
	if r >= 0 && int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "*"
}

// winFor returns the result in which c wins.
func winFor(c chess.Colour) Result {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Phase is where a game stands within the current turn.
//
//	AwaitingNotation -> Matched -> (execute, resolve) -> AwaitingNotation | Over
//
// A rejected match leaves the phase unchanged.
type Phase int

const (
	Unresolved Phase = iota // legal moves not yet computed
	AwaitingNotation
	Matched
	Over
)

var phaseNames = [...]string{"unresolved", "awaiting-notation", "matched", "over"}

// String returns the name of the phase.
func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}
