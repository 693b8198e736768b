package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// errorStatus maps an error to an HTTP status.
func errorStatus(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusForbidden
	case stderrors.Is(err, errors.ErrPrecondition):
		return fiber.StatusConflict
	case errors.IsRecoverable(err):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

func (s *Server) fail(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
		"code":  session.ErrorCode(err),
	})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	sess, err := s.sessions.Create()
	if err != nil {
		return s.fail(c, err)
	}
	role := sess.Join(playerID(c))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"gameId":   sess.ID,
		"playerId": playerID(c),
		"role":     role,
	})
}

func (s *Server) joinGame(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c.Params("gameId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"gameId":   sess.ID,
		"playerId": playerID(c),
		"role":     sess.Join(playerID(c)),
	})
}

func (s *Server) gameState(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c.Params("gameId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(sess.State())
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c.Params("gameId"))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{"moves": sess.LegalMoves()})
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c.Params("gameId"))
	if err != nil {
		return s.fail(c, err)
	}
	var p session.MovePayload
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	u, err := sess.Move(playerID(c), p)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"digest":   u.Digest,
		"notation": u.Notation,
		"status":   u.Status.String(),
		"result":   u.Result.String(),
	})
}

func (s *Server) takeBack(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c.Params("gameId"))
	if err != nil {
		return s.fail(c, err)
	}
	if err := sess.TakeBack(playerID(c)); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(sess.State())
}
