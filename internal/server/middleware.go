package server

import (
	"time"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/session"
)

// PlayerIDHeader carries the player ID on requests and responses.
const PlayerIDHeader = "X-Player-ID"

const playerIDKey = "playerID"

// EnsurePlayerID takes the player ID from the X-Player-ID header or the
// playerId query parameter. Anonymous requests get a fresh ID, echoed in
// the response header.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(playerIDKey) != nil {
			return c.Next()
		}

		playerID := c.Get(PlayerIDHeader)
		if playerID == "" {
			playerID = c.Query("playerId")
		}
		if playerID == "" {
			playerID = session.NewPlayerID()
		}

		c.Locals(playerIDKey, playerID)
		c.Set(PlayerIDHeader, playerID)
		return c.Next()
	}
}

// playerID returns the ID stored by EnsurePlayerID.
func playerID(c *fiber.Ctx) string {
	id, _ := c.Locals(playerIDKey).(string)
	return id
}

// requestLogger logs every request at debug level.
func requestLogger(logger log.Interface) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.WithFields(log.Fields{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Debug("request")
		return err
	}
}
