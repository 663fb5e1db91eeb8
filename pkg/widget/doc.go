// Package widget provides the renderable content attached to layout nodes.
//
// A [Widget] turns a box size and the time since the previous frame into a
// pixel buffer of exactly that size. The scene composer merges the buffers of
// all widgets on a node in attachment order, so transparent cells let earlier
// widgets show through.
//
// # Variants
//
//   - [Solid] fills its box with one colour and optionally draws a border.
//   - [Text] rasterizes a string and either scrolls it as a marquee or
//     shrinks it until it fits, depending on its [Fit] policy.
//   - [Clock] is a Text whose content is replaced with the wall-clock time
//     on every render.
//
// # Glyph caching
//
// Text keeps a [RasterSet] built for the last box size it rendered at. The
// set is rebuilt by the pure functions [BuildRasterSet] and [FitRasterSet]
// whenever the box size or the text changes, and the scroll position resets
// on every rebuild.
package widget
