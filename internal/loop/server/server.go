// Package server tracks the sessions connected to one process: it hands out
// client handles, keeps an in-memory leaderboard of finished games and
// broadcasts shutdown. Every session owns its own game; nothing on the board
// is shared.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// GameServer is the interface clients use to communicate with the server.
// Decouples the Client from the concrete Server implementation, enabling
// testing.
type GameServer interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	GetSnapshot() LobbySnapshot
}

// Server manages the set of connected sessions.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	scores       *Leaderboard
	log          *log.Logger
}

var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's registration with the server.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to the client; closed on unregister
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// LobbySnapshot is a copy of the server state for rendering.
type LobbySnapshot struct {
	Players   int
	TopScores []TopScoreEntry
}

// NewServer creates a server keeping the best topN scores. A nil logger
// uses the package default.
func NewServer(topN int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		scores:       NewLeaderboard(topN),
		log:          logger,
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 4),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	s.log.Debug("client registered", "id", handle.ID, "user", username, "players", len(s.clients))
	return handle
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.clients, clientID)
	s.log.Debug("client unregistered", "id", clientID, "players", len(s.clients))
}

// ReportScore records the final score of a finished game.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.clients[clientID]
	if !ok {
		return
	}
	if s.scores.Add(handle.Username, score, clientID) {
		s.log.Info("new top score", "user", handle.Username, "score", score)
	}
}

// GetSnapshot returns the player count and a copy of the leaderboard.
func (s *Server) GetSnapshot() LobbySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LobbySnapshot{
		Players:   len(s.clients),
		TopScores: s.scores.Entries(),
	}
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			s.log.Warn("shutdown timed out", "remaining", s.Players())
			return
		case <-ticker.C:
		}
	}
}
