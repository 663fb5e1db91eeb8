package config

import (
	"github.com/K-JBoon/pixelboard/pkg/fonts"
	"github.com/K-JBoon/pixelboard/pkg/glyph"
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
	"github.com/K-JBoon/pixelboard/pkg/scene"
	"github.com/K-JBoon/pixelboard/pkg/widget"
)

// Board is a built board: the layout tree, its composer with every widget
// attached, and the named nodes.
type Board struct {
	Composer *scene.Composer
	Tree     *layout.Tree
	Nodes    map[string]layout.NodeID
}

// Rasterizer returns a glyph rasterizer for the canvas font.
func (c *Config) Rasterizer(opts ...glyph.Option) (*glyph.OpenType, error) {
	data, err := fonts.Lookup(c.Canvas.Font)
	if err != nil {
		return nil, err
	}
	return glyph.NewOpenType(data, opts...)
}

// Build validates c and constructs the board. Text and clock widgets
// rasterize with r.
func (c *Config) Build(r glyph.Rasterizer, opts ...scene.Option) (*Board, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := &builder{tree: layout.NewTree(), nodes: make(map[string]layout.NodeID)}
	root, err := b.node(&c.Root, nodePath("", &c.Root, 0))
	if err != nil {
		return nil, err
	}

	comp := scene.New(b.tree, root, c.Canvas.Width, c.Canvas.Height, opts...)
	for _, a := range b.pending {
		for _, w := range a.widgets {
			comp.Attach(a.id, newWidget(w, r))
		}
	}
	return &Board{Composer: comp, Tree: b.tree, Nodes: b.nodes}, nil
}

type attachment struct {
	id      layout.NodeID
	widgets []Widget
}

type builder struct {
	tree    *layout.Tree
	nodes   map[string]layout.NodeID
	pending []attachment
}

// node adds n and its subtree to the tree. Widgets are queued in pre-order
// so attachment follows the description order.
func (b *builder) node(n *Node, path string) (layout.NodeID, error) {
	style, err := n.style()
	if err != nil {
		return layout.InvalidNode, wrap(path, err)
	}
	id := b.tree.NewLeaf(style)
	if n.Name != "" {
		if err := b.tree.SetName(id, n.Name); err != nil {
			return layout.InvalidNode, wrap(path, err)
		}
		b.nodes[n.Name] = id
	}
	b.pending = append(b.pending, attachment{id: id, widgets: n.Widgets})

	for i := range n.Children {
		child := &n.Children[i]
		cid, err := b.node(child, nodePath(path, child, i))
		if err != nil {
			return layout.InvalidNode, err
		}
		if err := b.tree.AddChild(id, cid); err != nil {
			return layout.InvalidNode, wrap(path, err)
		}
	}
	return id, nil
}

// newWidget builds a validated widget description.
func newWidget(w Widget, r glyph.Rasterizer) widget.Widget {
	color := pixel.MustParseColor(w.Color)
	if w.Kind == KindSolid {
		if w.Border == "" {
			return widget.NewSolid(color)
		}
		return widget.NewBordered(color, pixel.MustParseColor(w.Border))
	}

	fit, _ := widget.ParseFit(w.Fit)
	opts := []widget.TextOption{widget.WithFit(fit), widget.WithMinSize(w.MinSize)}
	if w.Speed != nil {
		opts = append(opts, widget.WithSpeed(*w.Speed))
	}
	if w.Threshold != nil {
		opts = append(opts, widget.WithThreshold(uint8(*w.Threshold)))
	}
	text := widget.NewText(r, w.Text, color, opts...)
	if w.Kind == KindClock {
		return widget.NewClock(text, nil)
	}
	return text
}
