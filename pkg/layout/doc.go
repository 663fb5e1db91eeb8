// Package layout computes node geometry for a board.
//
// The scene composer consumes layout through the [Solver] interface: solve the
// tree for a canvas size, then query each node's size, its offset relative to
// its parent and its children in paint order.
//
// [Tree] is the shipped solver. Nodes live in an arena and are addressed by
// small integer [NodeID] handles, so widgets can be keyed by node without
// holding pointers into the tree.
//
// # Grid subset
//
// Tree implements the part of CSS grid a pixel board needs:
//
//   - Column and row templates of fixed (points), percent, fr and auto tracks.
//     Free space goes to fr tracks by weight; auto tracks share it only when
//     no fr track exists. Tracks created implicitly by placement are auto.
//   - Item placement by start line, span, or both. Items with an auto axis
//     are placed row-major into the first free area.
//   - Items stretch to their grid area unless they set a width or height.
//   - Absolutely positioned children are placed at Left/Top inside their parent.
//
// A node without templates lays its children out as one column of implicit
// auto rows. Edges are rounded to whole pixels on absolute coordinates so
// adjacent items always tile without gaps.
package layout
