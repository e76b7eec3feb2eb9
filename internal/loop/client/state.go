package client

import (
	"time"

	"github.com/tomz197/chickens/internal/input"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Session running, paused or over
	GameStateShutdown                  // Server is shutting down
)

// hud mirrors the values the game reports through its callbacks.
type hud struct {
	hearts     int
	score      int
	coins      int
	power      int
	cooldown   time.Duration // Length of the cooldown started by the last shot
	hitAt      time.Time     // When the ship was last hit
	rejectedAt time.Time     // When a shot was last rejected
	gameOver   bool
	finalScore int
}

// ClientState holds per-session UI state (input, screen, HUD values).
type ClientState struct {
	Input         input.Input
	GameState     GameState
	prevGameState GameState
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	wasInactive   bool
	dirty         bool // The game asked for a redraw
	hud           hud
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateStart,
		Running:   true,
		dirty:     true,
	}
}
