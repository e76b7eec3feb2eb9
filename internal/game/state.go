package game

import (
	"slices"
	"time"

	"github.com/tomz197/chickens/internal/object"
)

// Phase is the session-level state of a game.
type Phase int

const (
	PhaseActive   Phase = iota // Steps advance the board
	PhasePaused                // Frozen by the player, reversible
	PhaseGameOver              // Out of lives; only a reset leaves it
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// State is the single mutable aggregate of a session.
// It is owned by a Game and only mutated through it.
type State struct {
	Cols, Rows int
	PlayerCol  int
	Paused     bool
	Over       bool

	Lives int
	Score int
	Coins int // Coins collected, never negative

	InvulnerableUntil time.Duration
	LastShotAt        time.Duration
	HasShot           bool // LastShotAt is meaningful
	Steps             int  // Steps performed since the session started

	Chickens  []object.Chicken
	Bullets   []object.Bullet
	CoinDrops []object.Coin
}

// newState builds a fresh session: ship centred, empty board, zero score.
func newState(cfg Config) *State {
	return &State{
		Cols:      cfg.Cols,
		Rows:      cfg.Rows,
		PlayerCol: cfg.Cols / 2,
		Lives:     cfg.InitialLives,
	}
}

// BottomRow is the row the ship occupies.
func (s *State) BottomRow() int {
	return s.Rows - 1
}

// Invulnerable reports whether the ship ignores contact at now.
func (s *State) Invulnerable(now time.Duration) bool {
	return now < s.InvulnerableUntil
}

// Snapshot is a detached copy of a session for renderers.
type Snapshot struct {
	Cols, Rows int
	PlayerCol  int
	Phase      Phase

	Lives int
	Score int
	Coins int
	Power int

	InvulnerableLeft time.Duration // Zero when vulnerable
	CooldownLeft     time.Duration // Zero when the weapon is ready
	TickInterval     time.Duration

	Chickens  []object.Chicken
	Bullets   []object.Bullet
	CoinDrops []object.Coin
}

// snapshot copies s; the returned slices do not alias the state.
func (s *State) snapshot() Snapshot {
	return Snapshot{
		Cols:      s.Cols,
		Rows:      s.Rows,
		PlayerCol: s.PlayerCol,
		Lives:     s.Lives,
		Score:     s.Score,
		Coins:     s.Coins,
		Chickens:  slices.Clone(s.Chickens),
		Bullets:   slices.Clone(s.Bullets),
		CoinDrops: slices.Clone(s.CoinDrops),
	}
}
