package sink

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// DefaultBrightness is the LED brightness percentage used when none is set.
const DefaultBrightness = 50

// Panel is a double-buffered LED panel.
//
// SetPixel writes to the back buffer; Swap presents it and blocks until the
// panel has picked it up, typically on the next vertical sync.
type Panel interface {
	Size() (width, height int)
	SetPixel(x, y int, r, g, b uint8)
	Swap() error
	Close() error
}

// Matrix drives a Panel. Transparent pixels are shown as black and every
// channel is scaled by the brightness.
type Matrix struct {
	panel      Panel
	brightness int
	logger     *log.Logger
	frames     int
}

// MatrixOption configures a Matrix sink.
type MatrixOption func(*Matrix)

// WithBrightness sets the brightness percentage, clamped to [0, 100].
func WithBrightness(percent int) MatrixOption {
	return func(m *Matrix) { m.brightness = max(0, min(percent, 100)) }
}

// WithMatrixLogger sets the logger for panel diagnostics.
func WithMatrixLogger(l *log.Logger) MatrixOption {
	return func(m *Matrix) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMatrix returns a sink for panel.
func NewMatrix(panel Panel, opts ...MatrixOption) *Matrix {
	m := &Matrix{
		panel:      panel,
		brightness: DefaultBrightness,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	w, h := panel.Size()
	m.logger.Debug("matrix panel ready", "width", w, "height", h, "brightness", m.brightness)
	return m
}

// Brightness returns the configured brightness percentage.
func (m *Matrix) Brightness() int { return m.brightness }

// Display implements Sink. Every panel pixel is written; panel cells outside
// the buffer are black.
func (m *Matrix) Display(b *pixel.Buffer) error {
	w, h := m.panel.Size()
	if m.frames == 0 && (w != b.Width() || h != b.Height()) {
		m.logger.Warn("frame and panel size differ", "frame", [2]int{b.Width(), b.Height()}, "panel", [2]int{w, h})
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := b.At(y, x).OrBlack().Dim(m.brightness)
			m.panel.SetPixel(x, y, p.R, p.G, p.B)
		}
	}
	if err := m.panel.Swap(); err != nil {
		return errors.Wrap(errors.ErrCodeDevice, err, "swap panel")
	}
	m.frames++
	return nil
}

// Close implements Sink.
func (m *Matrix) Close() error {
	if err := m.panel.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeDevice, err, "close panel")
	}
	return nil
}
