// Package pipeline drives the frame loop for pixelboard.
//
// A [Runner] repeatedly asks a [Renderer] for a canvas and hands it to one
// [sink.Sink]. Timing follows a sleep-then-measure contract:
//
//  1. Sleep for the rest of the frame interval, if the previous frame
//     finished early.
//  2. Measure the actual time since the previous frame began.
//  3. Render with that measured elapsed time, then display.
//
// Widgets animate from the measured time, so scrolling and clocks keep their
// speed whatever frame rate is achieved. There is no backpressure: a frame
// that overruns the interval is followed immediately by the next.
//
// # Usage
//
//	runner := pipeline.NewRunner(board.Composer, sink.NewTerminal(os.Stdout),
//	    pipeline.WithFPS(120),
//	    pipeline.WithLogger(logger),
//	)
//	if err := runner.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns when ctx is cancelled, the frame limit is reached, or a frame
// fails. A frame already in progress always completes.
package pipeline

import (
	"time"

	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

const (
	// DefaultFPS is the target frame rate. LED panels refresh at 120 Hz.
	DefaultFPS = 120

	// MaxFPS bounds WithFPS.
	MaxFPS = 1000
)

// Renderer produces one canvas per frame. [scene.Composer] implements it.
type Renderer interface {
	Render(elapsed time.Duration) (*pixel.Buffer, error)
}

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(elapsed time.Duration) (*pixel.Buffer, error)

// Render calls f(elapsed).
func (f RendererFunc) Render(elapsed time.Duration) (*pixel.Buffer, error) { return f(elapsed) }

// Stats summarises a run.
type Stats struct {
	Frames  int
	Elapsed time.Duration // sum of measured frame intervals
	Render  time.Duration
	Display time.Duration
}

// FPS returns the achieved frame rate, or 0 before the first frame.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// IntervalFor returns the frame interval for a target rate. Rates outside
// [1, MaxFPS] are clamped.
func IntervalFor(fps int) time.Duration {
	fps = max(1, min(fps, MaxFPS))
	return time.Second / time.Duration(fps)
}
