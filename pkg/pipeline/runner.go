package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/K-JBoon/pixelboard/pkg/observability"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

// Runner renders and displays frames on the calling goroutine. It is not
// safe for concurrent use.
type Runner struct {
	renderer Renderer
	sink     sink.Sink
	interval time.Duration
	limit    int
	clock    Clock
	logger   *log.Logger
	stats    Stats
}

// Option configures a Runner.
type Option func(*Runner)

// WithFPS sets the target frame rate.
func WithFPS(fps int) Option {
	return func(r *Runner) { r.interval = IntervalFor(fps) }
}

// WithInterval sets the frame interval directly. Non-positive values are
// ignored.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithFrameLimit stops Run after n frames. Zero means no limit.
func WithFrameLimit(n int) Option {
	return func(r *Runner) { r.limit = max(0, n) }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewRunner returns a runner feeding renderer's frames to s.
func NewRunner(renderer Renderer, s sink.Sink, opts ...Option) *Runner {
	r := &Runner{
		renderer: renderer,
		sink:     s,
		interval: IntervalFor(DefaultFPS),
		clock:    systemClock{},
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Interval returns the target frame interval.
func (r *Runner) Interval() time.Duration { return r.interval }

// Stats returns totals for the frames run so far.
func (r *Runner) Stats() Stats { return r.stats }

// Run loops until ctx is done, the frame limit is reached, or a frame fails.
// It returns ctx.Err() on cancellation, nil at the frame limit, and the
// frame error otherwise. The sink is not closed.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("frame loop starting", "interval", r.interval, "limit", r.limit)

	last := r.clock.Now()
	for r.limit == 0 || r.stats.Frames < r.limit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if since := r.clock.Now().Sub(last); since < r.interval {
			if err := r.clock.Sleep(ctx, r.interval-since); err != nil {
				return err
			}
		}
		now := r.clock.Now()
		elapsed := now.Sub(last)
		last = now

		if err := r.Step(ctx, elapsed); err != nil {
			return err
		}
	}

	r.logger.Debug("frame limit reached", "frames", r.stats.Frames, "fps", fmt.Sprintf("%.1f", r.stats.FPS()))
	return nil
}

// Step renders and displays exactly one frame with the given elapsed time.
func (r *Runner) Step(ctx context.Context, elapsed time.Duration) error {
	r.stats.Frames++
	frame := r.stats.Frames
	hooks := observability.Frame()
	hooks.OnFrameStart(ctx, frame)

	fs := observability.FrameStats{Elapsed: elapsed}
	err := r.step(elapsed, &fs)
	hooks.OnFrameComplete(ctx, frame, fs, err)

	r.stats.Elapsed += fs.Elapsed
	r.stats.Render += fs.Render
	r.stats.Display += fs.Display
	if err != nil {
		r.logger.Error("frame failed", "frame", frame, "err", err)
		return fmt.Errorf("frame %d: %w", frame, err)
	}
	r.logger.Debug("frame", "frame", frame, "elapsed", elapsed, "render", fs.Render, "display", fs.Display)
	return nil
}

func (r *Runner) step(elapsed time.Duration, fs *observability.FrameStats) error {
	start := r.clock.Now()
	buf, err := r.renderer.Render(elapsed)
	rendered := r.clock.Now()
	fs.Render = rendered.Sub(start)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	err = r.sink.Display(buf)
	fs.Display = r.clock.Now().Sub(rendered)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
