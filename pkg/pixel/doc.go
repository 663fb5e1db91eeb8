// Package pixel provides the RGB pixel buffer that every frame is composed on.
//
// # Overview
//
// A [Buffer] is a fixed-size, row-major grid of [Pixel] values. A pixel is an
// RGB triple that may be transparent; a transparent pixel never overwrites
// the destination when buffers are merged. This single rule is what lets
// widgets paint over each other, children paint over parents and borders
// paint over fills using one primitive:
//
//	dst.Merge(src, row, col)
//
// copies every opaque pixel of src into dst at the given offset. Cells that
// fall outside dst are clipped silently, so an offset that puts src partially
// or fully off-canvas is never an error. Merge consumes src: once merged the
// source buffer is empty (0x0) and must not be reused.
//
// # Bounds
//
// Reads are total: [Buffer.At] outside the buffer returns [Transparent].
// Writes are not: [Buffer.Set] outside the buffer panics, because it means the
// caller computed a wrong coordinate.
//
// # Colours
//
// [ParseColor] accepts "#rrggbb", "#rgb", a small set of names, and
// "none"/"transparent". [Pixel.Scale] applies a 0-255 coverage value, which
// is how text glyphs are anti-aliased.
package pixel
