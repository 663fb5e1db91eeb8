package inspect

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/layout"
	"github.com/K-JBoon/pixelboard/pkg/scene"
)

// Namer resolves node names. [layout.Tree] implements it.
type Namer interface {
	Name(id layout.NodeID) string
}

// Options configures DOT generation.
type Options struct {
	// Names labels nodes; when nil nodes are shown by id.
	Names Namer
	// Detailed adds the attached widgets to each label.
	Detailed bool
}

// ToDOT solves the board layout and converts the node tree to DOT.
func ToDOT(c *scene.Composer, opts Options) (string, error) {
	var nodes, edges bytes.Buffer
	err := c.Walk(func(v scene.Visit) error {
		fmt.Fprintf(&nodes, "  %q [label=%q, fillcolor=%q];\n", dotID(v.Node), label(v, opts), fill(v.Depth))
		if v.Parent != layout.InvalidNode {
			fmt.Fprintf(&edges, "  %q -> %q;\n", dotID(v.Parent), dotID(v.Node))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph board {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"monospace\", fontsize=12];\n")
	buf.WriteString("\n")
	buf.Write(nodes.Bytes())
	if edges.Len() > 0 {
		buf.WriteString("\n")
		buf.Write(edges.Bytes())
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

func dotID(id layout.NodeID) string { return fmt.Sprintf("n%d", int(id)) }

func label(v scene.Visit, opts Options) string {
	name := v.Node.String()
	if opts.Names != nil {
		if n := opts.Names.Name(v.Node); n != "" {
			name = n
		}
	}
	lines := []string{name, v.Geometry.String()}
	if opts.Detailed {
		for _, w := range v.Widgets {
			lines = append(lines, fmt.Sprint(w))
		}
	}
	return strings.Join(lines, "\n")
}

var fills = []string{"#f2f2f2", "#dbe9f6", "#fde2c8", "#d9f0d3", "#f5d0e0"}

func fill(depth int) string { return fills[depth%len(fills)] }

// RenderSVG lays out DOT source with Graphviz and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return buf.Bytes(), nil
}
