// Package inspect exports the solved node tree of a board for debugging.
//
// # Formats
//
//   - [ToDOT] produces Graphviz DOT source: one box per node labelled with
//     its name and solved geometry, with edges from parent to child.
//   - [RenderSVG] lays the DOT source out in-process with go-graphviz.
//   - [Wireframe] draws every node's outline onto a canvas-sized buffer,
//     coloured by depth, which can be saved as PNG through the sink package.
//
// # Usage
//
//	dot, err := inspect.ToDOT(board.Composer, inspect.Options{Names: board.Tree})
//	svg, err := inspect.RenderSVG(ctx, dot)
package inspect
