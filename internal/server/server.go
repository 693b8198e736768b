// Package server exposes game sessions over HTTP and websockets.
package server

import (
	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// Server is the relay: REST routes for creating, joining and inspecting
// games, and a websocket per participant for live play.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	sessions *session.Manager
	logger   log.Interface
}

// New builds the server and its routes.
func New(cfg *config.Config, sessions *session.Manager, logger log.Interface) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
			// Player IDs and game IDs outlive the request.
			Immutable: true,
		}),
		cfg:      cfg,
		sessions: sessions,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: s.cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + PlayerIDHeader,
		AllowMethods: "GET, POST, OPTIONS",
	}))
	s.app.Use(requestLogger(s.logger))

	api := s.app.Group("/api", EnsurePlayerID())
	game := api.Group("/game")
	game.Post("/create", s.createGame)
	game.Post("/:gameId/join", s.joinGame)
	game.Get("/:gameId", s.gameState)
	game.Get("/:gameId/moves", s.legalMoves)
	game.Post("/:gameId/move", s.makeMove)
	game.Post("/:gameId/takeback", s.takeBack)

	s.app.Use("/ws", EnsurePlayerID(), upgradeOnly)
	s.app.Get("/ws/game/:gameId", websocket.New(s.serveConn, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	s.logger.WithField("addr", s.cfg.Listen).Info("listening")
	return s.app.Listen(s.cfg.Listen)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
