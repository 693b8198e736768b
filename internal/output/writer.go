package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single named game to the output.
	WriteGame(name string, game *engine.Game) error

	// WriteFailure records a game that could not be replayed.
	WriteFailure(name string, err error) error

	// Close writes any pending output.
	Close() error
}

// TextWriter writes movetext and a status line per game.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w, maxLineLength: DefaultLineLength}
}

// WriteGame writes a game as movetext.
func (tw *TextWriter) WriteGame(name string, game *engine.Game) error {
	if name != "" {
		if _, err := fmt.Fprintf(tw.w, "%s:\n", name); err != nil {
			return err
		}
	}
	WriteMoveText(tw.w, game, tw.maxLineLength)
	_, err := fmt.Fprintln(tw.w, StatusLine(game))
	return err
}

// WriteFailure writes the replay error of a game.
func (tw *TextWriter) WriteFailure(name string, err error) error {
	_, werr := fmt.Fprintf(tw.w, "%s: %v\n", name, err)
	return werr
}

// Close is a no-op for text output.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games until Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(name string, game *engine.Game) error {
	jg := GameToJSON(game)
	jg.Name = name
	return jw.add(jg)
}

// WriteFailure records a failed game with its error.
func (jw *JSONWriter) WriteFailure(name string, err error) error {
	return jw.add(&JSONGame{Name: name, Error: err.Error()})
}

func (jw *JSONWriter) add(jg *JSONGame) error {
	if jw.single {
		return WriteGameJSON(jw.w, jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Close writes all buffered games as a JSON array.
func (jw *JSONWriter) Close() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := WriteGamesJSON(jw.w, jw.games)
	jw.games = jw.games[:0]
	return err
}
