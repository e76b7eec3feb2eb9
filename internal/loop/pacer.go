package loop

import (
	"time"

	"github.com/tomz197/chickens/internal/game"
)

// Pacer decides when the next game step is due. Deadlines advance by whole
// intervals so frame jitter does not accumulate; a host that falls more than
// one interval behind resynchronizes instead of bursting through the backlog.
type Pacer struct {
	clock game.Clock
	next  time.Duration
	ticks uint64
}

// NewPacer creates a pacer whose first step is due one interval from now.
func NewPacer(clock game.Clock, interval time.Duration) *Pacer {
	p := &Pacer{clock: clock}
	p.Reset(interval)
	return p
}

// Due reports whether the next step deadline has passed.
func (p *Pacer) Due() bool {
	return p.clock.Now() >= p.next
}

// Until returns the time left before the next step, or zero when due.
func (p *Pacer) Until() time.Duration {
	return max(0, p.next-p.clock.Now())
}

// Schedule sets the next deadline one interval after the previous one.
// Call it after every step with the interval the game now reports.
func (p *Pacer) Schedule(interval time.Duration) {
	p.ticks++
	now := p.clock.Now()
	p.next += interval
	if p.next <= now {
		p.next = now + interval
	}
}

// Reset arms the first deadline one interval from now.
func (p *Pacer) Reset(interval time.Duration) {
	p.next = p.clock.Now() + interval
}

// Ticks returns the number of scheduled steps so far.
func (p *Pacer) Ticks() uint64 {
	return p.ticks
}
