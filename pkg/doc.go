// Package pkg provides the libraries behind pixelboard.
//
// # Overview
//
// Pixelboard renders a tree of rectangular layout nodes onto a fixed-size
// RGB canvas once per frame and pushes the frame to a display. The pkg
// directory is organised by stage:
//
//  1. [config] - Board descriptions in TOML, built into a tree and widgets
//  2. [layout] - Grid solver over an arena of nodes
//  3. [widget] - Per-node content: solid fills, text, clocks
//  4. [scene] - Per-frame compositing of widgets and child nodes
//  5. [pipeline] - The sleep-then-measure frame loop
//  6. [sink] - Terminal, full-screen, LED matrix and PNG outputs
//
// # Architecture
//
// One frame through pixelboard:
//
//	[pipeline] Runner measures elapsed time
//	         ↓
//	[scene] Composer solves the [layout] tree
//	         ↓
//	each node: [widget] buffers merged in attach order, then children
//	         ↓
//	[pixel] canvas handed to one [sink]
//
// # Quick Start
//
// Build the default board and run it on the terminal:
//
//	cfg := config.Default()
//	raster, _ := cfg.Rasterizer()
//	board, _ := cfg.Build(raster)
//
//	runner := pipeline.NewRunner(board.Composer, sink.NewTerminal(os.Stdout))
//	err := runner.Run(ctx)
//
// # Main Packages
//
// [pixel] - Pixels with optional colour and the Buffer compositing algebra:
// merge with transparency and clipping, borders, image export.
//
// [glyph] - The Rasterizer interface and an OpenType implementation with
// LRU caches. [fonts] embeds the Go font family.
//
// [inspect] - DOT, SVG and wireframe exports of the solved tree.
//
// [observability] - Frame, layout and cache hooks with no-op defaults.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./...            # All tests
//	go test ./pkg/widget/... # Specific package
//	go test -run Example     # Examples only
//
// [config]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/config
// [layout]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/layout
// [widget]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/widget
// [scene]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/pipeline
// [sink]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/sink
// [pixel]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/pixel
// [glyph]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/glyph
// [fonts]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/fonts
// [inspect]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/inspect
// [observability]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/K-JBoon/pixelboard/pkg/errors
package pkg
