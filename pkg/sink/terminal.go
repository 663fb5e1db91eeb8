package sink

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// cell is how one pixel is drawn: two full blocks make it roughly square.
const cell = "██"

// Terminal writes frames as coloured block characters. Each frame moves the
// cursor home, draws one text row per pixel row and erases anything below.
type Terminal struct {
	w       io.Writer
	profile termenv.Profile
	buf     bytes.Buffer
	out     *termenv.Output
}

// TerminalOption configures a Terminal sink.
type TerminalOption func(*Terminal)

// WithProfile sets the colour profile. The default is true colour.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(t *Terminal) { t.profile = p }
}

// NewTerminal returns a sink writing to w.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{w: w, profile: termenv.TrueColor}
	for _, opt := range opts {
		opt(t)
	}
	t.out = termenv.NewOutput(&t.buf, termenv.WithProfile(t.profile))
	return t
}

// Display implements Sink. The frame is assembled in memory and written with
// a single call.
func (t *Terminal) Display(b *pixel.Buffer) error {
	t.buf.Reset()
	t.out.MoveCursor(1, 1)

	for row := 0; row < b.Height(); row++ {
		line := b.Row(row)
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end] == line[start] {
				end++
			}
			t.writeRun(line[start], end-start)
			start = end
		}
		t.buf.WriteByte('\n')
	}
	fmt.Fprintf(&t.buf, termenv.CSI+termenv.EraseDisplaySeq, 0)

	if _, err := t.w.Write(t.buf.Bytes()); err != nil {
		return errors.Wrap(errors.ErrCodeDevice, err, "write terminal frame")
	}
	return nil
}

func (t *Terminal) writeRun(p pixel.Pixel, n int) {
	s := strings.Repeat(cell, n)
	if !p.Opaque {
		t.buf.WriteString(s)
		return
	}
	t.buf.WriteString(t.out.String(s).Foreground(t.out.Color(p.Hex())).String())
}

// Close implements Sink. It resets colours and leaves the cursor below the frame.
func (t *Terminal) Close() error {
	out := termenv.NewOutput(t.w, termenv.WithProfile(t.profile))
	out.Reset()
	return nil
}
