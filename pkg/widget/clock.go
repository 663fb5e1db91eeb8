package widget

import (
	"fmt"
	"time"

	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// ClockLayout is the time format shown by Clock: zero-padded 24h hours and minutes.
const ClockLayout = "15:04"

// Clock is a Text widget that shows the local time.
type Clock struct {
	text *Text
	now  func() time.Time
}

// NewClock wraps text so every render replaces its content with the current
// time. A nil now uses time.Now.
func NewClock(text *Text, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{text: text, now: now}
}

// Text returns the wrapped widget.
func (c *Clock) Text() *Text { return c.text }

// Render implements Widget.
func (c *Clock) Render(width, height int, elapsed time.Duration) *pixel.Buffer {
	c.text.SetText(c.now().Format(ClockLayout))
	return c.text.Render(width, height, elapsed)
}

func (c *Clock) String() string {
	return fmt.Sprintf("clock(%s fit=%s color=%s)", ClockLayout, c.text.fit, c.text.color)
}
