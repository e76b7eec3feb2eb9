// Package loop provides the clocks and step pacing that drive a game session
// from a host frame loop.
package loop

import (
	"time"

	"github.com/tomz197/chickens/internal/game"
)

// TimeSource returns the current wall time.
type TimeSource func() time.Time

// MonotonicClock reports the time elapsed since it was created.
type MonotonicClock struct {
	start time.Time
	now   TimeSource
}

// NewMonotonicClock creates a clock reading from now, or time.Now when nil.
func NewMonotonicClock(now TimeSource) *MonotonicClock {
	if now == nil {
		now = time.Now
	}
	return &MonotonicClock{start: now(), now: now}
}

// Now returns the elapsed time since creation.
func (c *MonotonicClock) Now() time.Duration {
	return c.now().Sub(c.start)
}

// PausableClock provides game time that stands still while paused, so
// cooldowns and invulnerability windows do not run out during a pause.
// It is owned by a single session goroutine.
type PausableClock struct {
	real *MonotonicClock

	paused          bool
	pauseStart      time.Duration // Real time the current pause started
	totalPausedTime time.Duration
}

// NewPausableClock creates a running clock reading from now, or time.Now when nil.
func NewPausableClock(now TimeSource) *PausableClock {
	return &PausableClock{real: NewMonotonicClock(now)}
}

// Now returns game time: real elapsed time minus every pause.
func (pc *PausableClock) Now() time.Duration {
	if pc.paused {
		return pc.pauseStart - pc.totalPausedTime
	}
	return pc.real.Now() - pc.totalPausedTime
}

// Pause stops game time. Pausing a paused clock does nothing.
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.real.Now()
}

// Resume continues game time from where it stopped.
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.paused = false
	pc.totalPausedTime += pc.real.Now() - pc.pauseStart
}

// IsPaused returns the current pause state.
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress.
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.real.Now() - pc.pauseStart
	}
	return total
}

var (
	_ game.Clock = (*MonotonicClock)(nil)
	_ game.Clock = (*PausableClock)(nil)
)
