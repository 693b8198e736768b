// Package errors provides sentinel errors and error types for the rules
// engine and its front ends. Errors are inspected with errors.Is() and
// errors.As(); the types here only add context.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotationSyntax indicates move text that matches no known pattern.
	ErrNotationSyntax = errors.New("unrecognised move notation")

	// ErrNoLegalMatch indicates a parsed move that matches no legal move.
	ErrNoLegalMatch = errors.New("no legal move matches")

	// ErrAmbiguousMatch indicates a parsed move that matches several legal
	// moves and needs more disambiguation.
	ErrAmbiguousMatch = errors.New("ambiguous move")

	// ErrPrecondition indicates an engine call made out of order, such as
	// executing an unvalidated move or undoing out of sequence.
	ErrPrecondition = errors.New("engine precondition violated")

	// ErrGameOver indicates a move submitted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates an unknown game session.
	ErrGameNotFound = errors.New("game not found")

	// ErrNotYourTurn indicates a move from a participant who is not the
	// side to move.
	ErrNotYourTurn = errors.New("not your turn")
)

// IsRecoverable reports whether err is a rejection that leaves the game
// unchanged and can be shown to the user.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrNotationSyntax) ||
		errors.Is(err, ErrNoLegalMatch) ||
		errors.Is(err, ErrAmbiguousMatch) ||
		errors.Is(err, ErrGameOver) ||
		errors.Is(err, ErrNotYourTurn)
}

// MoveError wraps errors with move context: the ply being played, the text
// submitted and how many legal moves it matched.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move was submitted for (0 if unknown)
	MoveText string // The move text as submitted
	Matches  int    // Legal moves matched, meaningful for ambiguity
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.Matches > 1 {
		parts = append(parts, fmt.Sprintf("%d candidates", e.Matches))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError reports which field of a FEN string was rejected.
type FENError struct {
	Field string // placement, side, castling, en passant or counters
	Got   string // The offending text
	Err   error  // Underlying cause, ErrInvalidFEN when nil
}

// Error returns a formatted error message.
func (e *FENError) Error() string {
	cause := e.Unwrap()
	if e.Got != "" {
		return fmt.Sprintf("%s field %q: %v", e.Field, e.Got, cause)
	}
	return fmt.Sprintf("%s field: %v", e.Field, cause)
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidFEN
	}
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
