package game

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

// Clock returns the current instant on a monotonic timeline.
// The origin is arbitrary; only differences between instants matter.
type Clock interface {
	Now() time.Duration
}

// Rand returns a uniform integer in [0, n). *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Callbacks is the capability set the host implements to follow a session.
// All calls happen synchronously on the goroutine driving the Game.
type Callbacks interface {
	OnHeartsChanged(lives int)
	OnScoreChanged(score int)
	OnCoinsChanged(coins int)
	// OnWeaponPowerChanged fires at init and whenever coins move the
	// weapon to a different power level.
	OnWeaponPowerChanged(power int)
	OnHitFeedback()
	OnGameOver(finalScore int)
	// OnShootAccepted starts a cooldown of the given length.
	// A zero cooldown means the weapon is ready.
	OnShootAccepted(cooldown time.Duration)
	OnShootRejected()
	// OnRender asks the host to redraw the board.
	OnRender()
}

// NopCallbacks ignores every notification. Embed it to implement a subset.
type NopCallbacks struct{}

func (NopCallbacks) OnHeartsChanged(int) {}
func (NopCallbacks) OnScoreChanged(int) {}
func (NopCallbacks) OnCoinsChanged(int) {}
func (NopCallbacks) OnWeaponPowerChanged(int) {}
func (NopCallbacks) OnHitFeedback() {}
func (NopCallbacks) OnGameOver(int) {}
func (NopCallbacks) OnShootAccepted(time.Duration) {}
func (NopCallbacks) OnShootRejected() {}
func (NopCallbacks) OnRender() {}

var _ Callbacks = NopCallbacks{}

// Options carries the collaborators injected into a Game.
type Options struct {
	Clock     Clock       // Required
	Rand      Rand        // Defaults to the process-wide generator
	Callbacks Callbacks   // Defaults to NopCallbacks
	Logger    *log.Logger // Defaults to a discarding logger
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
