package game

import (
	"testing"
	"time"
)

func TestTempoRecompute(t *testing.T) {
	tp := NewTempo(500*time.Millisecond, 150*time.Millisecond, 0.02)

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 500 * time.Millisecond},
		{50, 250 * time.Millisecond},
		{150, 150 * time.Millisecond}, // 125ms clamped to the floor
		{10000, 150 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := tp.Recompute(tt.score); got != tt.want {
			t.Errorf("Recompute(%d) = %s, want %s", tt.score, got, tt.want)
		}
		if tp.Current() != tt.want {
			t.Errorf("Current() after Recompute(%d) = %s, want %s", tt.score, tp.Current(), tt.want)
		}
	}

	tp.Reset()
	if tp.Current() != 500*time.Millisecond {
		t.Fatalf("Current() after Reset = %s, want 500ms", tp.Current())
	}
}

func TestTempoMonotonic(t *testing.T) {
	floor := 120 * time.Millisecond
	tp := NewTempo(800*time.Millisecond, floor, 0.05)

	prev := tp.Current()
	for score := 0; score <= 500; score++ {
		got := tp.Recompute(score)
		if got > prev {
			t.Fatalf("interval rose from %s to %s at score %d", prev, got, score)
		}
		if got < floor {
			t.Fatalf("interval %s below floor %s at score %d", got, floor, score)
		}
		prev = got
	}
}

func TestTempoWithoutAcceleration(t *testing.T) {
	tp := NewTempo(300*time.Millisecond, 100*time.Millisecond, 0)
	if got := tp.Recompute(1000); got != 300*time.Millisecond {
		t.Fatalf("Recompute with no acceleration = %s, want 300ms", got)
	}
}
