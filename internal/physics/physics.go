// Package physics provides grid geometry helpers for the board.
package physics

// InBounds reports whether (row, col) lies on a cols × rows board.
func InBounds(row, col, cols, rows int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// ClampCol clamps col into [0, cols-1].
func ClampCol(col, cols int) int {
	if col < 0 {
		return 0
	}
	if col >= cols {
		return cols - 1
	}
	return col
}
