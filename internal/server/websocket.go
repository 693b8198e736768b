package server

import (
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/session"
)

// upgradeOnly rejects plain HTTP requests to websocket routes.
func upgradeOnly(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// serveConn relays one websocket connection to its session until the
// client goes away.
func (s *Server) serveConn(c *websocket.Conn) {
	gameID := c.Params("gameId")
	player, _ := c.Locals(playerIDKey).(string)
	logger := s.logger.WithFields(log.Fields{"game": gameID, "player": player})

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		if msg, merr := session.NewMessage(session.MessageError, session.ErrorPayload{Error: err.Error()}); merr == nil {
			_ = c.WriteJSON(msg)
		}
		logger.WithError(err).Warn("websocket rejected")
		_ = c.Close()
		return
	}

	role := sess.Attach(player, c)
	logger.WithField("role", role).Info("websocket attached")
	defer func() {
		sess.Detach(player, c)
		logger.Info("websocket detached")
	}()

	for {
		mt, raw, err := c.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.TextMessage {
			continue
		}
		if err := sess.Handle(player, raw); err != nil {
			logger.WithError(err).Debug("message rejected")
		}
	}
}
