package pixel

import (
	"fmt"
	"image"
	"image/color"
)

// Buffer is a width x height grid of pixels stored row-major.
// The length of the backing slice always equals width*height.
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

// New creates a fully transparent buffer. Zero dimensions are allowed and
// produce an empty buffer; negative dimensions panic.
func New(width, height int) *Buffer {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixel: invalid buffer size %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Filled creates a buffer with every cell set to p.
func Filled(width, height int, p Pixel) *Buffer {
	b := New(width, height)
	b.Fill(p)
	return b
}

// Width returns the number of columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of cells.
func (b *Buffer) Len() int { return len(b.pix) }

// In reports whether (row, col) lies inside the buffer.
func (b *Buffer) In(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the pixel at (row, col), or Transparent when out of bounds.
func (b *Buffer) At(row, col int) Pixel {
	if !b.In(row, col) {
		return Transparent
	}
	return b.pix[row*b.width+col]
}

// Set writes p at (row, col). Writing out of bounds is a caller bug and panics.
func (b *Buffer) Set(row, col int, p Pixel) {
	if !b.In(row, col) {
		panic(fmt.Sprintf("pixel: Set(%d, %d) out of bounds for %dx%d buffer", row, col, b.width, b.height))
	}
	b.pix[row*b.width+col] = p
}

// Row returns the pixels of row i. The slice aliases the buffer and must
// not be modified.
func (b *Buffer) Row(i int) []Pixel {
	if i < 0 || i >= b.height {
		panic(fmt.Sprintf("pixel: Row(%d) out of bounds for %dx%d buffer", i, b.width, b.height))
	}
	return b.pix[i*b.width : (i+1)*b.width]
}

// Fill sets every cell to p.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Merge paints the opaque pixels of src onto b with src's top-left corner at
// (rowOffset, colOffset). Transparent source pixels and source cells that land
// outside b leave b unchanged. Offsets may be negative.
//
// Merge consumes src: it is left as an empty 0x0 buffer.
func (b *Buffer) Merge(src *Buffer, rowOffset, colOffset int) {
	if src == nil {
		return
	}
	// Clip the source rectangle against the destination once, so the inner
	// loop is bounds-free.
	i0, i1 := max(0, -rowOffset), min(src.height, b.height-rowOffset)
	j0, j1 := max(0, -colOffset), min(src.width, b.width-colOffset)

	for i := i0; i < i1; i++ {
		srow := src.pix[i*src.width : (i+1)*src.width]
		drow := b.pix[(i+rowOffset)*b.width : (i+rowOffset+1)*b.width]
		for j := j0; j < j1; j++ {
			if p := srow[j]; p.Opaque {
				drow[j+colOffset] = p
			}
		}
	}

	src.release()
}

// release empties the buffer after it has been merged.
func (b *Buffer) release() {
	b.width, b.height, b.pix = 0, 0, nil
}

// DrawBorder sets the outermost ring of cells to p. Because p is written
// as-is, a transparent p clears the ring. Buffers narrower or shorter than
// two cells are left untouched.
func (b *Buffer) DrawBorder(p Pixel) {
	if b.width < 2 || b.height < 2 {
		return
	}
	last := b.height - 1
	for col := 0; col < b.width; col++ {
		b.pix[col] = p
		b.pix[last*b.width+col] = p
	}
	for row := 1; row < last; row++ {
		b.pix[row*b.width] = p
		b.pix[row*b.width+b.width-1] = p
	}
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	c := New(b.width, b.height)
	copy(c.pix, b.pix)
	return c
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, p := range b.pix {
		if p != o.pix[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells equal to p.
func (b *Buffer) Count(p Pixel) int {
	n := 0
	for _, q := range b.pix {
		if q == p {
			n++
		}
	}
	return n
}

// ToImage converts the buffer to an RGBA image. Transparent cells become
// fully transparent black.
func (b *Buffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			p := b.pix[row*b.width+col]
			if !p.Opaque {
				continue
			}
			img.SetRGBA(col, row, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}
