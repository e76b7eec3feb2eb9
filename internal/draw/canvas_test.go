package draw

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCanvasRenderOnlyChanges(t *testing.T) {
	c := NewCanvas(4, 2)
	var buf bytes.Buffer

	c.Set(1, 0, 'x')
	c.Render(&buf)
	first := buf.String()
	if !strings.HasPrefix(first, "\033[1;1H") || !strings.Contains(first, "x") {
		t.Fatalf("first render = %q, want a full repaint", first)
	}
	if got := strings.Count(first, "\033["); got != 2 {
		t.Fatalf("first render cursor moves = %d, want one per row", got)
	}

	buf.Reset()
	c.Render(&buf)
	if buf.Len() != 0 {
		t.Fatalf("unchanged render = %q, want nothing", buf.String())
	}

	c.Set(3, 1, 'y')
	buf.Reset()
	c.Render(&buf)
	if got, want := buf.String(), "\033[2;4Hy"; got != want {
		t.Fatalf("delta render = %q, want %q", got, want)
	}
}

func TestCanvasOffsetAndForceRedraw(t *testing.T) {
	c := NewCanvas(2, 1)
	var buf bytes.Buffer
	c.Render(&buf)

	c.SetOffset(3, 5)
	buf.Reset()
	c.Render(&buf)
	if got, want := buf.String(), "\033[6;4H  "; got != want {
		t.Fatalf("render after offset change = %q, want %q", got, want)
	}

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	if buf.Len() == 0 {
		t.Fatal("ForceRedraw() did not repaint")
	}
}

func TestCanvasTextClipping(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Text(3, 0, "abc")
	if c.At(3, 0) != 'a' || c.At(4, 0) != 'b' {
		t.Fatalf("cells = %q %q, want a b", c.At(3, 0), c.At(4, 0))
	}
	c.Set(-1, 0, 'z')
	c.Set(0, 7, 'z')
	if c.At(0, 0) != BlockEmpty {
		t.Fatalf("out-of-range Set leaked: %q", c.At(0, 0))
	}

	c.Clear()
	c.TextCentered(0, "♥♥♥")
	if c.At(1, 0) != Heart || c.At(3, 0) != Heart || c.At(0, 0) != BlockEmpty {
		t.Fatal("TextCentered() misplaced multi-byte runes")
	}
}

func TestCanvasRenderBorderNeedsRoom(t *testing.T) {
	c := NewCanvas(3, 2)
	var buf bytes.Buffer
	c.RenderBorder(&buf)
	if buf.Len() != 0 {
		t.Fatalf("border without offset = %q, want nothing", buf.String())
	}

	c.SetOffset(1, 1)
	c.RenderBorder(&buf)
	out := buf.String()
	for _, want := range []string{"┌───┐", "└───┘", "│"} {
		if !strings.Contains(out, want) {
			t.Fatalf("border %q missing %q", out, want)
		}
	}
}

// chunkRecorder keeps every write separately.
type chunkRecorder struct {
	writes []string
}

func (r *chunkRecorder) Write(p []byte) (int, error) {
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

func TestChunkWriterFlushesInChunks(t *testing.T) {
	var rec chunkRecorder
	cw := NewChunkWriter(&rec)

	if err := cw.Flush(); err != nil || len(rec.writes) != 0 {
		t.Fatalf("empty Flush() wrote %d chunks, err = %v", len(rec.writes), err)
	}

	// One byte short of the limit, then a multi-byte rune straddling it.
	frame := strings.Repeat("a", maxChunkSize-1) + "♥" + strings.Repeat("b", maxChunkSize)
	cw.WriteString(frame[:10])
	fmt.Fprint(cw, frame[10:])
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := strings.Join(rec.writes, ""); got != frame {
		t.Fatal("flushed frame differs from the written one")
	}
	for i, w := range rec.writes {
		if len(w) > maxChunkSize {
			t.Errorf("chunk %d is %d bytes, want at most %d", i, len(w), maxChunkSize)
		}
		if !utf8.ValidString(w) {
			t.Errorf("chunk %d splits a rune", i)
		}
	}
	if len(rec.writes) != 3 {
		t.Fatalf("chunks = %d, want 3", len(rec.writes))
	}

	rec.writes = nil
	if err := cw.Flush(); err != nil || len(rec.writes) != 0 {
		t.Fatal("second Flush() resent the frame")
	}
}
