package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Name       string     `json:"name,omitempty"`
	InitialFEN string     `json:"initialFEN"`
	FEN        string     `json:"fen"`
	Digest     string     `json:"digest"`
	Turn       string     `json:"turn"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Legal      []string   `json:"legal,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Digest     string `json:"digest"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format. Legal moves of the side to
// move are listed as resulting board digests.
func GameToJSON(g *engine.Game) *JSONGame {
	jg := &JSONGame{
		InitialFEN: g.StartFEN(),
		FEN:        g.FEN(),
		Digest:     g.Digest(),
		Turn:       strings.ToLower(g.Turn().String()),
		Status:     g.Status().String(),
		Result:     g.Result().String(),
	}

	moveNum, _ := startOf(g)
	for _, e := range g.Log() {
		jg.Moves = append(jg.Moves, moveToJSON(e, moveNum))
		if e.Colour == chess.Black {
			moveNum++
		}
	}
	jg.PlyCount = len(jg.Moves)

	if set := g.LegalMoves(); set != nil && !g.IsOver() {
		jg.Legal = set.Digests()
	}
	return jg
}

func moveToJSON(e engine.LogEntry, moveNum int) JSONMove {
	m := e.Move
	jm := JSONMove{
		MoveNumber: moveNum,
		Color:      strings.ToLower(e.Colour.String()),
		SAN:        e.Notation,
		UCI:        m.LongAlgebraic(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      strings.ToLower(m.PieceKind.String()),
		Digest:     e.Digest,
	}
	if m.Captured != nil {
		jm.Captured = strings.ToLower(m.Captured.Kind.String())
	}
	if m.IsPromotion() {
		jm.Promotion = strings.ToLower(m.Promotion.String())
	}
	return jm
}

// WriteGameJSON writes a single game as indented JSON.
func WriteGameJSON(w io.Writer, jg *JSONGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// WriteGamesJSON writes games as a JSON object holding an array.
func WriteGamesJSON(w io.Writer, games []*JSONGame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: games})
}
