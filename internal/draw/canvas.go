package draw

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Glyphs used on the board and HUD. All of them occupy a single terminal column.
const (
	BlockFull   = '█'
	BlockLight  = '░'
	BlockMedium = '▒'
	BlockEmpty  = ' '
	Heart       = '♥'
	HeartEmpty  = '♡'
)

// Canvas is a character-cell drawing buffer. Render only emits the cells that
// changed since the previous frame, which keeps SSH traffic small.
type Canvas struct {
	width  int
	height int
	cells  []rune // Flat slice: [row * width + col]
	prev   []rune // Cells as last rendered

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	redraw    bool            // Render every cell on the next frame
	renderBuf strings.Builder // Buffer for batching render output
}

// NewCanvas creates a blank canvas of width columns and height rows.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the canvas when its dimensions change. The next Render
// repaints every cell.
func (c *Canvas) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if width == c.width && height == c.height && c.cells != nil {
		return
	}
	c.width = width
	c.height = height
	c.cells = make([]rune, width*height)
	c.prev = make([]rune, width*height)
	c.Clear()
	c.redraw = true
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.redraw = true
	}
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Width returns the canvas column count.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas row count.
func (c *Canvas) Height() int {
	return c.height
}

// ForceRedraw makes the next Render repaint every cell, e.g. after the
// terminal was cleared.
func (c *Canvas) ForceRedraw() {
	c.redraw = true
}

// Clear blanks every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = BlockEmpty
	}
}

// Set puts r at 0-based (col, row). Out-of-range cells are ignored.
func (c *Canvas) Set(col, row int, r rune) {
	if col >= 0 && col < c.width && row >= 0 && row < c.height {
		c.cells[row*c.width+col] = r
	}
}

// At returns the rune at 0-based (col, row), or BlockEmpty outside the canvas.
func (c *Canvas) At(col, row int) rune {
	if col >= 0 && col < c.width && row >= 0 && row < c.height {
		return c.cells[row*c.width+col]
	}
	return BlockEmpty
}

// Text writes s starting at 0-based (col, row), clipped at the right edge.
func (c *Canvas) Text(col, row int, s string) {
	for _, r := range s {
		c.Set(col, row, r)
		col++
	}
}

// TextCentered writes s centered horizontally on row.
func (c *Canvas) TextCentered(row int, s string) {
	c.Text((c.width-utf8.RuneCountInString(s))/2, row, s)
}

// Fill sets every cell of the rectangle to r.
func (c *Canvas) Fill(col, row, width, height int, r rune) {
	for y := row; y < row+height; y++ {
		for x := col; x < col+width; x++ {
			c.Set(x, y, r)
		}
	}
}

// Render writes the changed cells to w. Runs of adjacent changed cells share
// one cursor move.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()

	for row := 0; row < c.height; row++ {
		offset := row * c.width
		inRun := false
		for col := 0; col < c.width; col++ {
			i := offset + col
			if !c.redraw && c.cells[i] == c.prev[i] {
				inRun = false
				continue
			}
			if !inRun {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH", row+1+c.offsetRow, col+1+c.offsetCol)
				inRun = true
			}
			c.renderBuf.WriteRune(c.cells[i])
			c.prev[i] = c.cells[i]
		}
	}
	c.redraw = false

	_ = writeChunks(w, c.renderBuf.String())
}

// RenderBorder draws a box around the canvas when there is room for it.
func (c *Canvas) RenderBorder(w io.Writer) {
	if c.offsetCol < 1 || c.offsetRow < 1 {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.width + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.height + 1

	var buf strings.Builder
	fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.width))
	fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.width))
	for row := top + 1; row < bottom; row++ {
		fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
	}

	io.WriteString(w, buf.String())
}
