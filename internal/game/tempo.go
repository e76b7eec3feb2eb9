package game

import "time"

// Tempo derives the step interval from the score. A higher score means a
// shorter interval, never below the floor.
type Tempo struct {
	initial      time.Duration
	floor        time.Duration
	acceleration float64
	current      time.Duration
}

// NewTempo creates a tempo starting at initial.
func NewTempo(initial, floor time.Duration, acceleration float64) *Tempo {
	return &Tempo{
		initial:      initial,
		floor:        floor,
		acceleration: acceleration,
		current:      initial,
	}
}

// Current returns the interval the host should wait before the next step.
func (t *Tempo) Current() time.Duration {
	return t.current
}

// Recompute updates the interval for score and returns it.
func (t *Tempo) Recompute(score int) time.Duration {
	next := time.Duration(float64(t.initial) / (1 + float64(score)*t.acceleration))
	t.current = max(t.floor, next)
	return t.current
}

// Reset returns to the initial interval.
func (t *Tempo) Reset() {
	t.current = t.initial
}
