// Package scene composites widgets over a solved layout tree.
//
// A [Composer] owns the widgets attached to each layout node. Every call to
// [Composer.Render] solves the layout for the canvas size and paints the tree
// into one canvas-sized buffer:
//
//   - each node gets a buffer of its solved size;
//   - the node's widgets render into same-sized buffers and are merged at
//     (0, 0) in attachment order;
//   - each child is composited recursively and merged at its offset, in the
//     order the solver reports children.
//
// Transparent cells never overwrite, so a later widget or sibling covers an
// earlier one only where it actually paints.
package scene

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/observability"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
	"github.com/K-JBoon/pixelboard/pkg/widget"
)

// Composer renders a layout tree and its widgets into frames.
// A Composer is not safe for concurrent use.
type Composer struct {
	solver  layout.Solver
	root    layout.NodeID
	width   int
	height  int
	widgets map[layout.NodeID][]widget.Widget
	logger  *log.Logger
	frames  int
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for per-frame debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a composer for the tree rooted at root on a width x height canvas.
func New(solver layout.Solver, root layout.NodeID, width, height int, opts ...Option) *Composer {
	c := &Composer{
		solver:  solver,
		root:    root,
		width:   width,
		height:  height,
		widgets: make(map[layout.NodeID][]widget.Widget),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Composer) Size() (width, height int) { return c.width, c.height }

// Root returns the root node.
func (c *Composer) Root() layout.NodeID { return c.root }

// Attach appends w to the widgets of node. Later widgets paint over earlier ones.
func (c *Composer) Attach(node layout.NodeID, w widget.Widget) {
	c.widgets[node] = append(c.widgets[node], w)
}

// Widgets returns the widgets attached to node in paint order.
func (c *Composer) Widgets(node layout.NodeID) []widget.Widget {
	return c.widgets[node]
}

// Render solves the layout and composites one frame. elapsed is passed to
// every widget. A layout error means the board is malformed; callers should
// stop rather than retry.
func (c *Composer) Render(elapsed time.Duration) (*pixel.Buffer, error) {
	start := time.Now()
	if err := c.solver.Solve(c.root, layout.Size{Width: c.width, Height: c.height}); err != nil {
		observability.Layout().OnSolveComplete(context.Background(), 0, time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "solve layout")
	}

	nodes := 0
	canvas := pixel.New(c.width, c.height)
	root, err := c.renderNode(c.root, elapsed, &nodes)
	observability.Layout().OnSolveComplete(context.Background(), nodes, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	canvas.Merge(root, 0, 0)

	c.frames++
	c.logger.Debug("frame composed", "frame", c.frames, "nodes", nodes, "elapsed", elapsed, "took", time.Since(start))
	return canvas, nil
}

func (c *Composer) renderNode(id layout.NodeID, elapsed time.Duration, nodes *int) (*pixel.Buffer, error) {
	*nodes++
	g, err := c.solver.Geometry(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "geometry of %s", id)
	}

	buf := pixel.New(g.Width, g.Height)
	for _, w := range c.widgets[id] {
		buf.Merge(w.Render(g.Width, g.Height, elapsed), 0, 0)
	}

	children, err := c.solver.Children(id)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "children of %s", id)
	}
	for _, child := range children {
		cg, err := c.solver.Geometry(child)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "geometry of %s", child)
		}
		sub, err := c.renderNode(child, elapsed, nodes)
		if err != nil {
			return nil, err
		}
		buf.Merge(sub, cg.Y, cg.X)
	}
	return buf, nil
}

// Visit describes one node during Walk.
type Visit struct {
	Node     layout.NodeID
	Parent   layout.NodeID
	Depth    int
	Geometry layout.Geometry
	Widgets  []widget.Widget
}

// Walk solves the layout and calls fn for every node in paint order
// (pre-order, children in solver order). Returning an error from fn stops
// the walk and returns that error.
func (c *Composer) Walk(fn func(Visit) error) error {
	if err := c.solver.Solve(c.root, layout.Size{Width: c.width, Height: c.height}); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "solve layout")
	}
	return c.walk(c.root, layout.InvalidNode, 0, fn)
}

func (c *Composer) walk(id, parent layout.NodeID, depth int, fn func(Visit) error) error {
	g, err := c.solver.Geometry(id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "geometry of %s", id)
	}
	if err := fn(Visit{Node: id, Parent: parent, Depth: depth, Geometry: g, Widgets: c.widgets[id]}); err != nil {
		return err
	}
	children, err := c.solver.Children(id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidLayout, err, "children of %s", id)
	}
	for _, child := range children {
		if err := c.walk(child, id, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}
