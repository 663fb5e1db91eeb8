package config

import (
	"fmt"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/fonts"
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/pipeline"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
	"github.com/K-JBoon/pixelboard/pkg/sink"
	"github.com/K-JBoon/pixelboard/pkg/widget"
)

// Validate checks the whole description. Errors carry ErrCodeInvalidConfig
// and name the offending node, e.g. "root.header.widgets[1]".
func (c *Config) Validate() error {
	if err := c.validateCanvas(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	names := make(map[string]string)
	return validateNode(&c.Root, nodePath("", &c.Root, 0), 0, names)
}

func (c *Config) validateCanvas() error {
	cv := c.Canvas
	if cv.Width < 1 || cv.Height < 1 || cv.Width > MaxCanvasSize || cv.Height > MaxCanvasSize {
		return invalid("canvas", "size %dx%d out of range (1-%d)", cv.Width, cv.Height, MaxCanvasSize)
	}
	if cv.FPS < 1 || cv.FPS > pipeline.MaxFPS {
		return invalid("canvas", "fps %d out of range (1-%d)", cv.FPS, pipeline.MaxFPS)
	}
	if _, err := fonts.Lookup(cv.Font); err != nil {
		return wrap("canvas", err)
	}
	return nil
}

func (c *Config) validateOutput() error {
	out := c.Output
	kind, err := sink.ParseKind(out.Kind)
	if err != nil {
		return wrap("output", err)
	}
	if out.Brightness < 0 || out.Brightness > 100 {
		return invalid("output", "brightness %d out of range (0-100)", out.Brightness)
	}
	if out.Scale < 1 || out.Scale > 64 {
		return invalid("output", "scale %d out of range (1-64)", out.Scale)
	}
	if kind == sink.KindMatrix && out.Device != "" {
		if err := errors.ValidateDevicePath(out.Device); err != nil {
			return wrap("output", err)
		}
	}
	return nil
}

func validateNode(n *Node, path string, depth int, names map[string]string) error {
	if depth > MaxDepth {
		return invalid(path, "nodes nested deeper than %d", MaxDepth)
	}
	if n.Name != "" {
		if err := errors.ValidateNodeName(n.Name); err != nil {
			return wrap(path, err)
		}
		if prev, ok := names[n.Name]; ok {
			return invalid(path, "duplicate node name %q (also at %s)", n.Name, prev)
		}
		names[n.Name] = path
	}
	if _, err := n.style(); err != nil {
		return wrap(path, err)
	}
	for i := range n.Widgets {
		if err := n.Widgets[i].validate(); err != nil {
			return wrap(fmt.Sprintf("%s.widgets[%d]", path, i), err)
		}
	}
	for i := range n.Children {
		child := &n.Children[i]
		if err := validateNode(child, nodePath(path, child, i), depth+1, names); err != nil {
			return err
		}
	}
	return nil
}

// style converts the node's textual style to a layout style.
func (n *Node) style() (layout.Style, error) {
	var (
		s   layout.Style
		err error
	)
	if s.Width, err = layout.ParseDimension(n.Width); err != nil {
		return s, err
	}
	if s.Height, err = layout.ParseDimension(n.Height); err != nil {
		return s, err
	}
	if s.Columns, err = layout.ParseTracks(n.Columns); err != nil {
		return s, err
	}
	if s.Rows, err = layout.ParseTracks(n.Rows); err != nil {
		return s, err
	}
	if s.Column, err = layout.ParsePlacement(n.Column); err != nil {
		return s, err
	}
	if s.Row, err = layout.ParsePlacement(n.Row); err != nil {
		return s, err
	}
	if s.Position, err = layout.ParsePosition(n.Position); err != nil {
		return s, err
	}
	if s.Left, err = layout.ParseDimension(n.Left); err != nil {
		return s, err
	}
	if s.Top, err = layout.ParseDimension(n.Top); err != nil {
		return s, err
	}
	return s, nil
}

func (w *Widget) validate() error {
	switch w.Kind {
	case KindSolid:
		if w.Text != "" || w.Fit != "" || w.Speed != nil || w.Threshold != nil || w.MinSize != 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "solid widgets take only color and border")
		}
	case KindText, KindClock:
		if w.Border != "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s widgets have no border", w.Kind)
		}
		if w.Kind == KindClock && w.Text != "" {
			return errors.New(errors.ErrCodeInvalidConfig, "clock widgets show the time; remove text")
		}
		if _, err := widget.ParseFit(w.Fit); err != nil {
			return err
		}
		if w.Speed != nil && *w.Speed <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "speed must be positive, got %g", *w.Speed)
		}
		if w.Threshold != nil && (*w.Threshold < 0 || *w.Threshold > 255) {
			return errors.New(errors.ErrCodeInvalidConfig, "threshold %d out of range (0-255)", *w.Threshold)
		}
		if w.MinSize < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "min_size must not be negative")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown widget kind %q (want solid, text or clock)", w.Kind)
	}
	if _, err := pixel.ParseColor(w.Color); err != nil {
		return err
	}
	if _, err := pixel.ParseColor(w.Border); err != nil {
		return err
	}
	return nil
}

func nodePath(parent string, n *Node, index int) string {
	switch {
	case parent == "" && n.Name != "":
		return n.Name
	case parent == "":
		return "root"
	case n.Name != "":
		return parent + "." + n.Name
	default:
		return fmt.Sprintf("%s.children[%d]", parent, index)
	}
}

func invalid(path, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, "%s: %s", path, fmt.Sprintf(format, args...))
}

func wrap(path string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
}
