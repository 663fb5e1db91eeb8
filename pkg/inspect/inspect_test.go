package inspect

import (
	"context"
	"strings"
	"testing"

	"github.com/K-JBoon/pixelboard/pkg/config"
	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
	"github.com/K-JBoon/pixelboard/pkg/scene"
)

func defaultBoard(t *testing.T) *config.Board {
	t.Helper()
	board, err := config.Default().Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	return board
}

func TestToDOT(t *testing.T) {
	board := defaultBoard(t)
	dot, err := ToDOT(board.Composer, Options{Names: board.Tree})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"digraph board {",
		`"n0" [label="root\n96x48+0+0"`,
		`"n1" [label="header\n96x25+0+0"`,
		`"n3" [label="content\n71x23+25+25"`,
		`"n0" -> "n1";`,
		`"n0" -> "n3";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "solid(") {
		t.Error("widgets should only appear in detailed labels")
	}
}

func TestToDOTDetailed(t *testing.T) {
	board := defaultBoard(t)
	dot, err := ToDOT(board.Composer, Options{Detailed: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, `node#1\n96x25+0+0\nsolid(fill=#000000 border=#ff0000)`) {
		t.Errorf("detailed header label missing:\n%s", dot)
	}
}

func TestToDOTSolveError(t *testing.T) {
	c := scene.New(layout.NewTree(), layout.NodeID(7), 4, 4)
	if _, err := ToDOT(c, Options{}); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("ToDOT error = %v, want INVALID_LAYOUT", err)
	}
}

func TestRenderSVG(t *testing.T) {
	board := defaultBoard(t)
	dot, err := ToDOT(board.Composer, Options{Names: board.Tree})
	if err != nil {
		t.Fatal(err)
	}
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "sidebar") {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}
}

func TestWireframe(t *testing.T) {
	board := defaultBoard(t)
	frame, err := Wireframe(board.Composer)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Width() != 96 || frame.Height() != 48 {
		t.Fatalf("wireframe = %dx%d", frame.Width(), frame.Height())
	}

	child := DepthColors[1]
	tests := []struct {
		name     string
		row, col int
		want     pixel.Pixel
	}{
		{"header corner", 0, 0, child},
		{"header bottom", 24, 60, child},
		{"content corner", 25, 25, child},
		{"sidebar right edge", 30, 24, child},
		{"empty interior", 10, 10, pixel.Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frame.At(tt.row, tt.col); got != tt.want {
				t.Errorf("At(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestWireframeNestedOffsets(t *testing.T) {
	tree := layout.NewTree()
	inner := tree.NewLeaf(layout.Style{
		Position: layout.PositionAbsolute,
		Left:     layout.Points(1),
		Top:      layout.Points(1),
		Width:    layout.Points(2),
		Height:   layout.Points(2),
	})
	mid, _ := tree.NewWithChildren(layout.Style{
		Position: layout.PositionAbsolute,
		Left:     layout.Points(2),
		Top:      layout.Points(3),
		Width:    layout.Points(5),
		Height:   layout.Points(5),
	}, inner)
	root, _ := tree.NewWithChildren(layout.Style{}, mid)

	frame, err := Wireframe(scene.New(tree, root, 10, 10))
	if err != nil {
		t.Fatal(err)
	}
	// inner sits at (2+1, 3+1) in canvas coordinates.
	if got := frame.At(4, 3); got != DepthColors[2] {
		t.Errorf("inner origin = %v, want %v", got, DepthColors[2])
	}
	if got := frame.Count(DepthColors[2]); got != 4 {
		t.Errorf("inner outline covers %d pixels, want 4", got)
	}
}
