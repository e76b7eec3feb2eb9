package input

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"letters", "aajd", Input{Left: 3, Right: 1}},
		{"arrows", "\x1b[D\x1b[C\x1b[C\x1b[A", Input{Left: 1, Right: 2, Fire: 1}},
		{"fire keys", " wk", Input{Fire: 3}},
		{"controls", "pr\r", Input{Pause: true, Reset: true, Enter: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl c", "\x03", Input{Quit: true}},
		{"down arrow ignored", "\x1b[B", Input{}},
		{"lone escape", "\x1b", Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.in))
			got.Pressed = nil
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadInputDetectsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("ad")))

	var got Input
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		got.Left += in.Left
		got.Right += in.Right
		if in.Closed {
			got.Closed = true
			break
		}
		time.Sleep(time.Millisecond)
	}

	if got.Left != 1 || got.Right != 1 || !got.Closed {
		t.Fatalf("got %+v, want one left, one right and a closed stream", got)
	}
	if in := ReadInput(s); !in.Closed || in.Any() {
		t.Fatalf("ReadInput() after close = %+v", in)
	}
}
