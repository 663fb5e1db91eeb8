package cli

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/K-JBoon/pixelboard/pkg/observability"
)

// statsInterval is how often run --stats reports.
const statsInterval = 5 * time.Second

// statsHooks aggregates frame and glyph cache events and logs a summary once
// per interval.
type statsHooks struct {
	logger *log.Logger
	every  time.Duration
	now    func() time.Time

	mu      sync.Mutex
	start   time.Time
	frames  int
	failed  int
	render  time.Duration
	display time.Duration
	hits    int
	misses  int
}

var (
	_ observability.FrameHooks = (*statsHooks)(nil)
	_ observability.CacheHooks = (*statsHooks)(nil)
)

func newStatsHooks(l *log.Logger, every time.Duration) *statsHooks {
	return &statsHooks{logger: l, every: every, now: time.Now}
}

func (h *statsHooks) OnFrameStart(context.Context, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.start.IsZero() {
		h.start = h.now()
	}
}

func (h *statsHooks) OnFrameComplete(_ context.Context, frame int, stats observability.FrameStats, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.frames++
	if err != nil {
		h.failed++
	}
	h.render += stats.Render
	h.display += stats.Display

	now := h.now()
	window := now.Sub(h.start)
	if window < h.every {
		return
	}
	h.logger.Info("frame stats",
		"frame", frame,
		"fps", fmt.Sprintf("%.1f", float64(h.frames)/window.Seconds()),
		"render", (h.render / time.Duration(h.frames)).Round(time.Microsecond),
		"display", (h.display / time.Duration(h.frames)).Round(time.Microsecond),
		"glyph_hits", h.hits,
		"glyph_misses", h.misses,
		"failed", h.failed)

	h.start = now
	h.frames, h.failed, h.hits, h.misses = 0, 0, 0, 0
	h.render, h.display = 0, 0
}

func (h *statsHooks) OnCacheHit(_ context.Context, keyType string) {
	if keyType != "glyph" {
		return
	}
	h.mu.Lock()
	h.hits++
	h.mu.Unlock()
}

func (h *statsHooks) OnCacheMiss(_ context.Context, keyType string) {
	if keyType != "glyph" {
		return
	}
	h.mu.Lock()
	h.misses++
	h.mu.Unlock()
}

func (h *statsHooks) OnCacheSet(context.Context, string, int) {}
