package widget

import (
	"fmt"
	"time"

	"github.com/K-JBoon/pixelboard/pkg/glyph"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// Text renders a string with a glyph rasterizer.
//
// With FitScroll the glyphs are rasterized at the box height and bottom
// aligned. If the text is wider than the box it scrolls right at Speed pixels
// per second, and glyph columns that run past the right edge are drawn again
// one box width to the left so the text wraps around. With FitShrink the size
// is reduced until the text fits (or MinSize is reached) and the block is
// centred on a shared baseline.
//
// A Text is not safe for concurrent use.
type Text struct {
	rasterizer glyph.Rasterizer
	text       []rune
	color      pixel.Pixel

	fit          Fit
	speed        float64
	minSize      int
	threshold    uint8
	thresholdSet bool

	set    RasterSet
	scroll float64
}

// TextOption configures a Text widget.
type TextOption func(*Text)

// WithFit selects the fit policy.
func WithFit(f Fit) TextOption {
	return func(t *Text) { t.fit = f }
}

// WithSpeed sets the scroll speed in pixels per second.
func WithSpeed(pxPerSecond float64) TextOption {
	return func(t *Text) {
		if pxPerSecond > 0 {
			t.speed = pxPerSecond
		}
	}
}

// WithThreshold sets the coverage a glyph pixel must exceed to be painted.
// Without it the threshold follows the fit policy.
func WithThreshold(c uint8) TextOption {
	return func(t *Text) {
		t.threshold = c
		t.thresholdSet = true
	}
}

// WithMinSize sets the smallest pixel height FitShrink may reach.
func WithMinSize(px int) TextOption {
	return func(t *Text) {
		if px > 0 {
			t.minSize = px
		}
	}
}

// NewText returns a text widget. A transparent colour is drawn as black.
func NewText(r glyph.Rasterizer, text string, color pixel.Pixel, opts ...TextOption) *Text {
	t := &Text{
		rasterizer: r,
		text:       []rune(text),
		color:      color.OrBlack(),
		fit:        FitScroll,
		speed:      DefaultSpeed,
		minSize:    DefaultMinSize,
	}
	for _, opt := range opts {
		opt(t)
	}
	if !t.thresholdSet {
		t.threshold = t.fit.DefaultThreshold()
	}
	return t
}

// Text returns the current content.
func (t *Text) Text() string { return string(t.text) }

// Fit returns the fit policy.
func (t *Text) Fit() Fit { return t.fit }

// ScrollPosition returns the current marquee offset in pixels.
func (t *Text) ScrollPosition() float64 { return t.scroll }

// RasterSet returns the glyphs built for the last render.
func (t *Text) RasterSet() RasterSet { return t.set }

// SetText replaces the content. Changing the text invalidates the glyph cache.
func (t *Text) SetText(s string) {
	if s == string(t.text) {
		return
	}
	t.text = []rune(s)
	t.set = RasterSet{}
}

// Render implements Widget.
func (t *Text) Render(width, height int, elapsed time.Duration) *pixel.Buffer {
	buf := pixel.New(width, height)
	if len(t.text) == 0 || width == 0 || height == 0 {
		return buf
	}

	if !t.set.builtFor(width, height) {
		t.rebuild(width, height)
	}

	switch t.fit {
	case FitShrink:
		t.paintCentered(buf)
	default:
		t.advance(width, elapsed)
		t.paintScroll(buf)
	}
	return buf
}

func (t *Text) rebuild(width, height int) {
	var set RasterSet
	if t.fit == FitShrink {
		set = FitRasterSet(t.rasterizer, t.text, width, height, t.minSize)
	} else {
		set = BuildRasterSet(t.rasterizer, t.text, height)
	}
	set.BoxWidth, set.BoxHeight = width, height
	t.set = set
	t.scroll = 0
}

// advance moves the marquee. Text that fits never moves.
func (t *Text) advance(width int, elapsed time.Duration) {
	total := t.set.TotalWidth
	if total <= width {
		t.scroll = 0
		return
	}
	t.scroll += t.speed * elapsed.Seconds()
	if t.scroll > float64(total) {
		t.scroll = 0
	}
}

func (t *Text) paintScroll(buf *pixel.Buffer) {
	width, height := buf.Width(), buf.Height()
	col := int(t.scroll)
	for _, ch := range t.text {
		g := t.set.Glyph(ch)
		row := 0
		if g.Height < height {
			row = height - g.Height
		}
		t.paintGlyph(buf, g, row, col, width)
		col += g.Width + 1
	}
}

func (t *Text) paintCentered(buf *pixel.Buffer) {
	width, height := buf.Width(), buf.Height()
	col := max(0, (width-t.set.TotalWidth)/2)
	baseline := (height-(t.set.Ascent+t.set.Descent))/2 + t.set.Ascent
	for _, ch := range t.text {
		g := t.set.Glyph(ch)
		t.paintGlyph(buf, g, baseline-(g.Height+g.YMin), col, 0)
		col += g.Width + 1
	}
}

// paintGlyph draws g with its top-left corner at (row, col). Cells that land
// at or past wrap columns are drawn again at col-wrap; wrap 0 disables this.
func (t *Text) paintGlyph(buf *pixel.Buffer, g glyph.Glyph, row, col, wrap int) {
	width := buf.Width()
	for y := 0; y < g.Height; y++ {
		r := row + y
		if r < 0 || r >= buf.Height() {
			continue
		}
		for x := 0; x < g.Width; x++ {
			c := g.Coverage[y*g.Width+x]
			if c <= t.threshold {
				continue
			}
			dc := col + x
			switch {
			case dc >= 0 && dc < width:
				buf.Set(r, dc, t.color.Scale(c))
			case wrap > 0 && dc >= wrap && dc-wrap < width:
				buf.Set(r, dc-wrap, t.color.Scale(c))
			}
		}
	}
}

func (t *Text) String() string {
	return fmt.Sprintf("text(%q fit=%s color=%s)", string(t.text), t.fit, t.color)
}
