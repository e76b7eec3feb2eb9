package physics

import (
	"slices"
	"testing"
)

func TestColumnSetFree(t *testing.T) {
	s := NewColumnSet(5)
	s.Mark(1)
	s.Mark(3)
	s.Mark(7) // out of range, ignored
	s.Mark(-1)

	got := s.Free(nil)
	want := []int{0, 2, 4}
	if !slices.Equal(got, want) {
		t.Fatalf("Free() = %v, want %v", got, want)
	}
	if !s.Occupied(3) || s.Occupied(2) || s.Occupied(9) {
		t.Fatalf("Occupied mismatch: 3=%v 2=%v 9=%v", s.Occupied(3), s.Occupied(2), s.Occupied(9))
	}
}

func TestColumnSetReset(t *testing.T) {
	s := NewColumnSet(3)
	s.Mark(0)
	s.Mark(1)
	s.Mark(2)
	if got := s.Free(nil); len(got) != 0 {
		t.Fatalf("Free() on full row = %v, want empty", got)
	}

	s.Reset(4)
	if got := s.Free(nil); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("Free() after Reset(4) = %v, want [0 1 2 3]", got)
	}

	s.Mark(2)
	s.Reset(2)
	if got := s.Free(nil); !slices.Equal(got, []int{0, 1}) {
		t.Fatalf("Free() after Reset(2) = %v, want [0 1]", got)
	}
}

func TestInBoundsAndClamp(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"top left", 0, 0, true},
		{"bottom right", 9, 4, true},
		{"below board", 10, 0, false},
		{"above board", -1, 2, false},
		{"right of board", 3, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(tt.row, tt.col, 5, 10); got != tt.want {
				t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}

	if got := ClampCol(-3, 5); got != 0 {
		t.Errorf("ClampCol(-3) = %d, want 0", got)
	}
	if got := ClampCol(8, 5); got != 4 {
		t.Errorf("ClampCol(8) = %d, want 4", got)
	}
	if got := ClampCol(2, 5); got != 2 {
		t.Errorf("ClampCol(2) = %d, want 2", got)
	}
}
