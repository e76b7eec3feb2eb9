package draw

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// maxChunkSize keeps each write under a typical 1500 byte MTU so a frame
// travels over SSH as a few whole packets.
const maxChunkSize = 1400

// Terminal control sequences.
const (
	seqClearScreen = "\033[H\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
)

// ChunkWriter collects one frame and sends it in MTU-sized writes on Flush.
type ChunkWriter struct {
	w   io.Writer
	buf strings.Builder
}

var _ io.Writer = (*ChunkWriter)(nil)

// NewChunkWriter creates a ChunkWriter sending frames to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w}
}

// Write appends p to the pending frame. It never fails.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s to the pending frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// Flush sends the pending frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	return writeChunks(cw.w, data)
}

// writeChunks writes data in pieces of at most maxChunkSize bytes, never
// splitting a multi-byte rune.
func writeChunks(w io.Writer, data string) error {
	for len(data) > 0 {
		n := len(data)
		if n > maxChunkSize {
			n = maxChunkSize
			for n > 0 && !utf8.RuneStart(data[n]) {
				n--
			}
		}
		if _, err := io.WriteString(w, data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc reports the terminal size in cells.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of the terminal on stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClearScreen)
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	io.WriteString(w, seqHideCursor)
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	io.WriteString(w, seqShowCursor)
}
