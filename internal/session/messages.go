package session

import (
	"encoding/json"
	stderrors "errors"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MessageType names a relay message.
type MessageType string

// Client to server: move, takeback, state.
// Server to client: assign, state, update, invalid, gameover, error.
const (
	MessageMove     MessageType = "move"
	MessageTakeBack MessageType = "takeback"
	MessageState    MessageType = "state"
	MessageAssign   MessageType = "assign"
	MessageUpdate   MessageType = "update"
	MessageInvalid  MessageType = "invalid"
	MessageGameOver MessageType = "gameover"
	MessageError    MessageType = "error"
)

// Message is the envelope of every relay message.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MovePayload submits a move either as notation or as the board digest
// the move produces. Notation wins when both are set.
type MovePayload struct {
	Notation string `json:"notation,omitempty"`
	Digest   string `json:"digest,omitempty"`
}

// AssignPayload tells a connection its role.
type AssignPayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Role     Role   `json:"role"`
}

// UpdatePayload describes the position after a move or take-back.
type UpdatePayload struct {
	Digest   string   `json:"digest"`
	Notation string   `json:"notation,omitempty"`
	Status   string   `json:"status"`
	Result   string   `json:"result"`
	Turn     string   `json:"turn"`
	Legal    []string `json:"legal,omitempty"`
}

// InvalidPayload rejects a submitted move.
type InvalidPayload struct {
	Notation string `json:"notation,omitempty"`
	Digest   string `json:"digest,omitempty"`
	Code     string `json:"code"`
	Reason   string `json:"reason"`
}

// GameOverPayload announces the end of the game.
type GameOverPayload struct {
	Digest   string `json:"digest"`
	Notation string `json:"notation,omitempty"`
	Status   string `json:"status"`
	Result   string `json:"result"`
}

// ErrorPayload reports a malformed or unknown message.
type ErrorPayload struct {
	Error string `json:"error"`
}

// NewMessage wraps payload in an envelope of type t.
func NewMessage(t MessageType, payload interface{}) (Message, error) {
	if payload == nil {
		return Message{Type: t}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: t, Payload: raw}, nil
}

func updatePayload(g *engine.Game, notation string) UpdatePayload {
	p := UpdatePayload{
		Digest:   g.Digest(),
		Notation: notation,
		Status:   g.Status().String(),
		Result:   g.Result().String(),
		Turn:     roleOf(g.Turn()).String(),
	}
	if !g.IsOver() {
		p.Legal = g.LegalMoves().Digests()
	}
	return p
}

// ErrorCode classifies err for clients.
func ErrorCode(err error) string {
	switch {
	case stderrors.Is(err, errors.ErrNotationSyntax):
		return "syntax"
	case stderrors.Is(err, errors.ErrNoLegalMatch):
		return "no-match"
	case stderrors.Is(err, errors.ErrAmbiguousMatch):
		return "ambiguous"
	case stderrors.Is(err, errors.ErrGameOver):
		return "game-over"
	case stderrors.Is(err, errors.ErrNotYourTurn):
		return "not-your-turn"
	case stderrors.Is(err, errors.ErrGameNotFound):
		return "not-found"
	case stderrors.Is(err, errors.ErrPrecondition):
		return "precondition"
	}
	return "internal"
}
