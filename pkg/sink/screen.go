package sink

import (
	"context"
	stderrors "errors"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// ErrQuit is returned by Screen.WaitQuit when the user presses a quit key.
var ErrQuit = stderrors.New("quit requested")

// Screen draws frames full-screen with tcell. Like Terminal, each pixel is
// two block characters wide.
type Screen struct {
	screen  tcell.Screen
	resized atomic.Bool
}

// NewScreen initialises the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDevice, err, "open screen")
	}
	return NewScreenFrom(s)
}

// NewScreenFrom wraps an existing, uninitialised tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDevice, err, "init screen")
	}
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Display implements Sink.
func (s *Screen) Display(b *pixel.Buffer) error {
	for row := 0; row < b.Height(); row++ {
		for col, p := range b.Row(row) {
			style := tcell.StyleDefault
			if p.Opaque {
				style = style.Foreground(tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B)))
			}
			s.screen.SetContent(2*col, row, '█', nil, style)
			s.screen.SetContent(2*col+1, row, '█', nil, style)
		}
	}
	if s.resized.Swap(false) {
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
	return nil
}

// WaitQuit blocks until a quit key (Esc, Ctrl-C or q) is pressed, ctx is
// done, or the screen is closed. It returns ErrQuit, ctx.Err() or nil
// respectively. WaitQuit only reads events; it never draws.
func (s *Screen) WaitQuit(ctx context.Context) error {
	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return ErrQuit
				}
			case *tcell.EventResize:
				s.resized.Store(true)
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Close implements Sink. It restores the terminal, which also ends WaitQuit.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}
