package inspect

import (
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
	"github.com/K-JBoon/pixelboard/pkg/scene"
)

// DepthColors outline nodes in a wireframe, cycling by depth.
var DepthColors = []pixel.Pixel{
	pixel.RGB(255, 255, 255),
	pixel.RGB(255, 0, 0),
	pixel.RGB(0, 255, 0),
	pixel.RGB(0, 128, 255),
	pixel.RGB(255, 255, 0),
}

// Wireframe solves the board layout and draws each node's outline on a
// canvas-sized buffer. Deeper nodes are drawn over their ancestors.
func Wireframe(c *scene.Composer) (*pixel.Buffer, error) {
	w, h := c.Size()
	canvas := pixel.New(w, h)
	origin := make(map[layout.NodeID][2]int)

	err := c.Walk(func(v scene.Visit) error {
		x, y := v.Geometry.X, v.Geometry.Y
		if p, ok := origin[v.Parent]; ok {
			x, y = x+p[0], y+p[1]
		}
		origin[v.Node] = [2]int{x, y}

		outline := pixel.New(v.Geometry.Width, v.Geometry.Height)
		outline.DrawBorder(DepthColors[v.Depth%len(DepthColors)])
		canvas.Merge(outline, y, x)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canvas, nil
}
