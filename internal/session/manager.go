package session

import (
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameFactory starts the game of a new session.
type GameFactory func() (*engine.Game, error)

// Manager owns the live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newGame  GameFactory
	logger   log.Interface
}

// NewManager creates a manager whose sessions start games with newGame.
func NewManager(newGame GameFactory, logger log.Interface) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		newGame:  newGame,
		logger:   logger,
	}
}

// Create starts a new session under a fresh ID.
func (m *Manager) Create() (*Session, error) {
	g, err := m.newGame()
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	s := newSession(uuid.New().String(), g, m.logger)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.WithField("game", s.ID).Info("game created")
	return s, nil
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("game %q: %w", id, errors.ErrGameNotFound)
	}
	return s, nil
}

// Remove forgets the session with id.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// IDs returns the IDs of all sessions, sorted.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.sessions)
	slices.Sort(ids)
	return ids
}

// NewPlayerID returns a fresh anonymous player ID.
func NewPlayerID() string {
	return uuid.New().String()
}
