package widget

import (
	"fmt"
	"strings"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/glyph"
)

// Fit selects how Text handles content wider than its box.
type Fit int

const (
	// FitScroll keeps the glyphs at box height and scrolls them as a
	// wrapping marquee.
	FitScroll Fit = iota
	// FitShrink reduces the glyph size until the text fits, then centres it.
	FitShrink
)

// Default tuning for each fit policy.
const (
	DefaultSpeed           = 50.0
	DefaultMinSize         = 6
	DefaultScrollThreshold = 125
	DefaultShrinkThreshold = 150
)

func (f Fit) String() string {
	switch f {
	case FitScroll:
		return "scroll"
	case FitShrink:
		return "shrink"
	default:
		return fmt.Sprintf("fit(%d)", int(f))
	}
}

// DefaultThreshold returns the coverage a pixel must exceed to be painted.
func (f Fit) DefaultThreshold() uint8 {
	if f == FitShrink {
		return DefaultShrinkThreshold
	}
	return DefaultScrollThreshold
}

// ParseFit parses "scroll" or "shrink". The empty string is FitScroll.
func ParseFit(s string) (Fit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scroll":
		return FitScroll, nil
	case "shrink":
		return FitShrink, nil
	default:
		return FitScroll, errors.New(errors.ErrCodeInvalidConfig, "unknown fit %q (want scroll or shrink)", s)
	}
}

// RasterSet holds the glyphs of one text rasterized at one size, together with
// the box it was built for.
type RasterSet struct {
	// BoxWidth and BoxHeight are the dimensions the set was built for.
	BoxWidth, BoxHeight int
	// Size is the pixel height the glyphs were rasterized at.
	Size int
	// TotalWidth is the sum of glyph advances (width + 1) over the text.
	TotalWidth int
	// MaxHeight is the tallest glyph.
	MaxHeight int
	// Ascent and Descent are the largest extents above and below the baseline.
	Ascent, Descent int

	glyphs map[rune]glyph.Glyph
}

// BuildRasterSet rasterizes every distinct rune of text once at size.
func BuildRasterSet(r glyph.Rasterizer, text []rune, size int) RasterSet {
	set := RasterSet{Size: size, glyphs: make(map[rune]glyph.Glyph, len(text))}
	for _, ch := range text {
		g, ok := set.glyphs[ch]
		if !ok {
			g = r.Rasterize(ch, size)
			set.glyphs[ch] = g
			set.MaxHeight = max(set.MaxHeight, g.Height)
			set.Ascent = max(set.Ascent, g.Height+g.YMin)
			set.Descent = max(set.Descent, -g.YMin)
		}
		set.TotalWidth += g.Width + 1
	}
	return set
}

// FitRasterSet builds a set starting at the box height and shrinking by one
// pixel until the text fits the box width or the size reaches minSize.
func FitRasterSet(r glyph.Rasterizer, text []rune, width, height, minSize int) RasterSet {
	size := height
	set := BuildRasterSet(r, text, size)
	for set.TotalWidth > width && size > minSize {
		size--
		set = BuildRasterSet(r, text, size)
	}
	return set
}

// Fits reports whether the text advance fits in width.
func (s RasterSet) Fits(width int) bool { return s.TotalWidth <= width }

// Has reports whether ch was rasterized.
func (s RasterSet) Has(ch rune) bool {
	_, ok := s.glyphs[ch]
	return ok
}

// Glyph returns the raster for ch. A rune outside the set means the cache was
// not rebuilt after the text changed, which is a bug, so Glyph panics.
func (s RasterSet) Glyph(ch rune) glyph.Glyph {
	g, ok := s.glyphs[ch]
	if !ok {
		panic(fmt.Sprintf("widget: no raster for %q at %dpx", ch, s.Size))
	}
	return g
}

func (s RasterSet) builtFor(width, height int) bool {
	return s.glyphs != nil && s.BoxWidth == width && s.BoxHeight == height
}
