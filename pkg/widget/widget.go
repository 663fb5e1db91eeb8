package widget

import (
	"time"

	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// Widget renders content for one layout node.
//
// Render must return a buffer of exactly width x height. Repeated calls with
// the same size may differ only through elapsed-driven animation state the
// widget owns.
type Widget interface {
	Render(width, height int, elapsed time.Duration) *pixel.Buffer
}

// Func adapts a function to the Widget interface.
type Func func(width, height int, elapsed time.Duration) *pixel.Buffer

// Render calls f.
func (f Func) Render(width, height int, elapsed time.Duration) *pixel.Buffer {
	return f(width, height, elapsed)
}
