// Package output renders games as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DefaultLineLength is the movetext wrap column.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// startOf returns the move number and side to move of the game's start
// position.
func startOf(g *engine.Game) (int, chess.Colour) {
	pos, err := engine.NewPositionFromFEN(g.StartFEN())
	if err != nil {
		return 1, chess.White
	}
	return pos.FullMove, pos.Turn
}

// WriteMoveText writes the numbered move list of g followed by its result.
func WriteMoveText(w io.Writer, g *engine.Game, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	moveNum, turn := startOf(g)

	for i, e := range g.Log() {
		switch {
		case turn == chess.White:
			ow.Write(fmt.Sprintf("%d.", moveNum))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(e.Notation)
		if turn == chess.Black {
			moveNum++
		}
		turn = turn.Opposite()
	}
	ow.Write(g.Result().String())
	ow.NewLine()
}

// WriteBoard writes the board diagram of g followed by a status line.
func WriteBoard(w io.Writer, g *engine.Game) {
	fmt.Fprint(w, g.Board().String())
	fmt.Fprintln(w, StatusLine(g))
}

// StatusLine describes whose turn it is or how the game ended.
func StatusLine(g *engine.Game) string {
	switch g.Status() {
	case engine.Checkmate:
		return fmt.Sprintf("Checkmate. %s", g.Result())
	case engine.Stalemate:
		return fmt.Sprintf("Stalemate. %s", g.Result())
	case engine.Check:
		return fmt.Sprintf("%s to move, in check.", g.Turn())
	}
	return fmt.Sprintf("%s to move.", g.Turn())
}
