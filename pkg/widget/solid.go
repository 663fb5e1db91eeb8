package widget

import (
	"fmt"
	"time"

	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// Solid fills its box with Fill and, when Border is opaque, draws a one-cell
// border over it. It holds no state between frames.
type Solid struct {
	Fill   pixel.Pixel
	Border pixel.Pixel
}

// NewSolid returns a borderless solid widget.
func NewSolid(fill pixel.Pixel) *Solid {
	return &Solid{Fill: fill}
}

// NewBordered returns a solid widget with a border.
func NewBordered(fill, border pixel.Pixel) *Solid {
	return &Solid{Fill: fill, Border: border}
}

// Render implements Widget.
func (s *Solid) Render(width, height int, _ time.Duration) *pixel.Buffer {
	b := pixel.Filled(width, height, s.Fill)
	if s.Border.Opaque {
		b.DrawBorder(s.Border)
	}
	return b
}

func (s *Solid) String() string {
	if s.Border.Opaque {
		return fmt.Sprintf("solid(fill=%s border=%s)", s.Fill, s.Border)
	}
	return fmt.Sprintf("solid(fill=%s)", s.Fill)
}
