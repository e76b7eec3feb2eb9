package object

import "time"

// ShouldRenderBlink returns whether an entity with a timed effect should be
// drawn this frame. frequency is in Hz; without remaining time it is always drawn.
func ShouldRenderBlink(remaining time.Duration, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	phase := int(remaining.Seconds() * frequency)
	return phase%2 != 0
}
