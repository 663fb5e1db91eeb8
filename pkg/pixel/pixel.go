package pixel

import "fmt"

// Pixel is an RGB colour that may be transparent.
// The zero value is transparent.
type Pixel struct {
	R, G, B uint8
	Opaque  bool
}

// Transparent is the absence of colour.
var Transparent = Pixel{}

// RGB returns an opaque pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, Opaque: true}
}

// IsTransparent reports whether p carries no colour.
func (p Pixel) IsTransparent() bool { return !p.Opaque }

// Scale multiplies each channel by coverage/255, truncating toward zero.
// Scaling a transparent pixel yields a transparent pixel.
func (p Pixel) Scale(coverage uint8) Pixel {
	if !p.Opaque {
		return Transparent
	}
	c := uint16(coverage)
	return Pixel{
		R:      uint8(uint16(p.R) * c / 255),
		G:      uint8(uint16(p.G) * c / 255),
		B:      uint8(uint16(p.B) * c / 255),
		Opaque: true,
	}
}

// Dim scales each channel by a brightness percentage in [0, 100].
// Values outside the range are clamped.
func (p Pixel) Dim(percent int) Pixel {
	if !p.Opaque {
		return Transparent
	}
	percent = max(0, min(percent, 100))
	return Pixel{
		R:      uint8(int(p.R) * percent / 100),
		G:      uint8(int(p.G) * percent / 100),
		B:      uint8(int(p.B) * percent / 100),
		Opaque: true,
	}
}

// OrBlack returns p, or opaque black if p is transparent.
// Displays without an alpha channel use this to realise transparency.
func (p Pixel) OrBlack() Pixel {
	if !p.Opaque {
		return RGB(0, 0, 0)
	}
	return p
}

// Hex returns the colour as "#rrggbb", or "none" when transparent.
func (p Pixel) Hex() string {
	if !p.Opaque {
		return "none"
	}
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// String implements fmt.Stringer.
func (p Pixel) String() string { return p.Hex() }
