package physics

// ColumnSet tracks which columns of a single board row are occupied.
// The backing slice is reused between Reset calls to avoid allocations.
type ColumnSet struct {
	occupied []bool
}

// NewColumnSet creates an empty set for a row of cols columns.
func NewColumnSet(cols int) *ColumnSet {
	if cols < 0 {
		cols = 0
	}
	return &ColumnSet{occupied: make([]bool, cols)}
}

// Reset clears every column, resizing the set if the width changed.
func (s *ColumnSet) Reset(cols int) {
	if cols < 0 {
		cols = 0
	}
	if cap(s.occupied) < cols {
		s.occupied = make([]bool, cols)
		return
	}
	s.occupied = s.occupied[:cols]
	clear(s.occupied)
}

// Mark flags col as occupied. Out-of-range columns are ignored.
func (s *ColumnSet) Mark(col int) {
	if col >= 0 && col < len(s.occupied) {
		s.occupied[col] = true
	}
}

// Occupied reports whether col is flagged.
func (s *ColumnSet) Occupied(col int) bool {
	return col >= 0 && col < len(s.occupied) && s.occupied[col]
}

// Free appends the unoccupied columns, in ascending order, to dst.
func (s *ColumnSet) Free(dst []int) []int {
	for col, taken := range s.occupied {
		if !taken {
			dst = append(dst, col)
		}
	}
	return dst
}
