// Package object holds the plain entity records of the board.
// Records carry no invariants; the game package enforces them.
package object

// Cell is a position on the board. Row 0 is the top row.
type Cell struct {
	Row int
	Col int
}

// At reports whether the cell is at (row, col).
func (c Cell) At(row, col int) bool {
	return c.Row == row && c.Col == col
}

// Up returns the cell one row above.
func (c Cell) Up() Cell {
	return Cell{Row: c.Row - 1, Col: c.Col}
}

// Down returns the cell one row below.
func (c Cell) Down() Cell {
	return Cell{Row: c.Row + 1, Col: c.Col}
}

// Chicken is a descending enemy. It has exactly one hit point.
type Chicken struct {
	Cell
}

// NewChicken creates a chicken at the given cell.
func NewChicken(row, col int) Chicken {
	return Chicken{Cell: Cell{Row: row, Col: col}}
}

// Coin is a descending pickup that feeds weapon power.
type Coin struct {
	Cell
}

// NewCoin creates a coin at the given cell.
func NewCoin(row, col int) Coin {
	return Coin{Cell: Cell{Row: row, Col: col}}
}

// IndexAt returns the index of the first element located at (row, col), or -1.
func IndexAt[T interface{ At(row, col int) bool }](items []T, row, col int) int {
	for i, it := range items {
		if it.At(row, col) {
			return i
		}
	}
	return -1
}

// RemoveAt removes the element at index i, preserving the order of the rest.
func RemoveAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}
