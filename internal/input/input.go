// Package input turns raw terminal bytes into discrete game key presses.
package input

import (
	"bufio"
)

// Input represents the key presses collected since the previous frame.
// Movement and fire are counted so that fast typing is never dropped on a
// grid where every press is one step.
type Input struct {
	Left    int
	Right   int
	Fire    int
	Pause   bool
	Reset   bool
	Enter   bool
	Quit    bool
	Closed  bool // The underlying reader ended
	Pressed []byte
}

// Any reports whether any key was pressed.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// drain collects all available bytes without blocking.
func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// decodes them, including arrow key escape sequences.
func ReadInput(s *Stream) Input {
	buf := s.drain()
	in := Parse(buf)
	in.Closed = s.closed
	return in
}

// ResetKeyInput discards any pending bytes, e.g. keys mashed during a screen
// transition.
func ResetKeyInput(s *Stream) {
	s.drain()
}

// Parse decodes a batch of terminal bytes.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				in.Fire++
				i += 2
				continue
			case 'C': // Right arrow
				in.Right++
				i += 2
				continue
			case 'D': // Left arrow
				in.Left++
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByte(&in, b)
	}
	return in
}

// applyByte maps a single key byte onto the input.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		in.Left++
	case 'd', 'D', 'l', 'L':
		in.Right++
	case ' ', 'w', 'W', 'k', 'K':
		in.Fire++
	case 'p', 'P':
		in.Pause = true
	case 'r', 'R':
		in.Reset = true
	case '\n', '\r':
		in.Enter = true
	}
}
