// Package glyph turns characters into coverage bitmaps.
//
// A [Rasterizer] is the only thing the text widget needs from a font: given a
// rune and a pixel height it returns the glyph's metrics and a row-major
// coverage bitmap with values 0-255. [OpenType] is the shipped implementation,
// backed by golang.org/x/image and an LRU cache.
package glyph

// Metrics describes the bounding box of a rasterized glyph.
//
// XMin and YMin are the offsets of the bitmap's left and bottom edges from the
// pen position on the baseline; YMin is negative for descenders.
type Metrics struct {
	Width  int
	Height int
	XMin   int
	YMin   int
}

// Glyph is a rasterized character. len(Coverage) == Width*Height.
type Glyph struct {
	Metrics
	Coverage []uint8
}

// At returns the coverage at (x, y), or 0 outside the bitmap.
func (g Glyph) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Coverage[y*g.Width+x]
}

// Rasterizer renders a single character at a given pixel height.
// Implementations must be deterministic for the same inputs.
type Rasterizer interface {
	Rasterize(r rune, pixelHeight int) Glyph
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(r rune, pixelHeight int) Glyph

// Rasterize calls f(r, pixelHeight).
func (f RasterizerFunc) Rasterize(r rune, pixelHeight int) Glyph {
	return f(r, pixelHeight)
}
