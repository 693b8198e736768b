// Package session runs shared games: it serializes engine calls per game,
// assigns players and spectators and relays every change to the attached
// connections.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/apex/log"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// Conn is a connection messages can be sent on.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Session is one game and its participants. All methods are safe for
// concurrent use.
type Session struct {
	ID string

	mu     sync.Mutex
	game   *engine.Game
	roles  map[string]Role // playerID -> role
	white  string
	black  string
	conns  map[string]Conn // playerID -> connection
	order  []string        // attach order, for deterministic broadcast
	logger log.Interface
}

func newSession(id string, g *engine.Game, logger log.Interface) *Session {
	return &Session{
		ID:     id,
		game:   g,
		roles:  make(map[string]Role),
		conns:  make(map[string]Conn),
		logger: logger.WithField("game", id),
	}
}

// Join assigns playerID a role: the first player is White, the second
// Black and everyone after that a spectator. Joining again returns the
// role already held.
func (s *Session) Join(playerID string) Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.join(playerID)
}

func (s *Session) join(playerID string) Role {
	if r, ok := s.roles[playerID]; ok {
		return r
	}
	r := RoleSpectator
	switch {
	case s.white == "":
		s.white, r = playerID, RoleWhite
	case s.black == "":
		s.black, r = playerID, RoleBlack
	}
	s.roles[playerID] = r
	s.logger.WithFields(log.Fields{"player": playerID, "role": r}).Info("player joined")
	return r
}

// Role returns the role held by playerID.
func (s *Session) Role(playerID string) (Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.roles[playerID]
	return r, ok
}

// Attach joins playerID and routes its messages to c, replacing any
// earlier connection of the same player. The connection receives its
// assignment and the current position.
func (s *Session) Attach(playerID string, c Conn) Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.join(playerID)
	if _, ok := s.conns[playerID]; !ok {
		s.order = append(s.order, playerID)
	}
	s.conns[playerID] = c
	s.send(playerID, MessageAssign, AssignPayload{GameID: s.ID, PlayerID: playerID, Role: r})
	s.send(playerID, MessageState, output.GameToJSON(s.game))
	return r
}

// Detach removes c if it is still the connection of playerID. The player
// keeps their role.
func (s *Session) Detach(playerID string, c Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.conns[playerID]; ok && cur == c {
		s.drop(playerID)
	}
}

// Connections returns the number of attached connections.
func (s *Session) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// State returns the JSON view of the game.
func (s *Session) State() *output.JSONGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return output.GameToJSON(s.game)
}

// LegalMoves returns the notation and resulting digest of every legal
// move of the side to move.
func (s *Session) LegalMoves() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.game.LegalMoves()
	out := make(map[string]string, set.Len())
	for _, m := range set.Moves() {
		if d, ok := set.DigestOf(m); ok {
			out[s.game.Render(m)] = d
		}
	}
	return out
}

// Move plays a move for playerID. A rejected move is reported to the
// mover as invalid; an accepted one is broadcast as an update, followed
// by gameover when it ends the game.
func (s *Session) Move(playerID string, p MovePayload) (engine.Update, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.play(playerID, p)
	if err != nil {
		s.logger.WithFields(log.Fields{
			"player":   playerID,
			"notation": p.Notation,
			"digest":   p.Digest,
		}).WithError(err).Info("move rejected")
		s.send(playerID, MessageInvalid, InvalidPayload{
			Notation: p.Notation,
			Digest:   p.Digest,
			Code:     ErrorCode(err),
			Reason:   err.Error(),
		})
		return engine.Update{}, err
	}

	s.broadcast(MessageUpdate, updatePayload(s.game, u.Notation))
	if s.game.IsOver() {
		s.broadcast(MessageGameOver, GameOverPayload{
			Digest:   u.Digest,
			Notation: u.Notation,
			Status:   u.Status.String(),
			Result:   u.Result.String(),
		})
	}
	return u, nil
}

func (s *Session) play(playerID string, p MovePayload) (engine.Update, error) {
	if s.game.IsOver() {
		return engine.Update{}, errors.ErrGameOver
	}
	colour, ok := s.roles[playerID].Colour()
	if !ok || colour != s.game.Turn() {
		return engine.Update{}, fmt.Errorf("%s to move: %w", s.game.Turn(), errors.ErrNotYourTurn)
	}
	switch {
	case p.Notation != "":
		return s.game.Play(p.Notation)
	case p.Digest != "":
		return s.game.PlayDigest(p.Digest)
	}
	return engine.Update{}, fmt.Errorf("empty move: %w", errors.ErrNotationSyntax)
}

// TakeBack reverts the last move. Only players may take back.
func (s *Session) TakeBack(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roles[playerID].Colour(); !ok {
		err := fmt.Errorf("spectators cannot take back: %w", errors.ErrNotYourTurn)
		s.send(playerID, MessageError, ErrorPayload{Error: err.Error()})
		return err
	}
	if err := s.game.TakeBack(); err != nil {
		s.send(playerID, MessageError, ErrorPayload{Error: err.Error()})
		return err
	}
	s.logger.WithField("player", playerID).Info("move taken back")
	s.broadcast(MessageUpdate, updatePayload(s.game, ""))
	return nil
}

// Handle dispatches one raw message received from playerID.
func (s *Session) Handle(playerID string, raw []byte) error {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.reply(playerID, fmt.Errorf("malformed message: %w", err))
		return err
	}

	switch msg.Type {
	case MessageMove:
		var p MovePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			s.reply(playerID, fmt.Errorf("malformed move: %w", err))
			return err
		}
		_, err := s.Move(playerID, p)
		return err
	case MessageTakeBack:
		return s.TakeBack(playerID)
	case MessageState:
		s.mu.Lock()
		s.send(playerID, MessageState, output.GameToJSON(s.game))
		s.mu.Unlock()
		return nil
	}
	err := fmt.Errorf("unknown message type %q", msg.Type)
	s.reply(playerID, err)
	return err
}

func (s *Session) reply(playerID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send(playerID, MessageError, ErrorPayload{Error: err.Error()})
}

// send writes one message to playerID's connection, if attached. A failed
// write drops the connection. s.mu must be held.
func (s *Session) send(playerID string, t MessageType, payload interface{}) {
	c, ok := s.conns[playerID]
	if !ok {
		return
	}
	msg, err := NewMessage(t, payload)
	if err != nil {
		s.logger.WithError(err).Error("encode message")
		return
	}
	if err := c.WriteJSON(msg); err != nil {
		s.logger.WithField("player", playerID).WithError(err).Warn("write failed, dropping connection")
		s.drop(playerID)
	}
}

// broadcast sends to every attached connection. s.mu must be held.
func (s *Session) broadcast(t MessageType, payload interface{}) {
	for _, id := range append([]string(nil), s.order...) {
		s.send(id, t, payload)
	}
}

func (s *Session) drop(playerID string) {
	delete(s.conns, playerID)
	for i, id := range s.order {
		if id == playerID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
