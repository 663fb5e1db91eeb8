package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/inspect"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

// Inspect formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// inspectOptions holds flags for the inspect command.
type inspectOptions struct {
	format   string
	output   string
	detailed bool
	scale    int
}

// inspectCommand creates the inspect command for exporting the node tree.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOptions{format: formatDOT, scale: 4}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Export the solved layout for debugging",
		Long: `Solve the board layout and export it.

Formats:
  dot  Graphviz source of the node tree with solved geometry (default)
  svg  the node tree rendered by Graphviz
  png  a wireframe of every node outline at canvas size`,
		Example: `  pixelboard inspect
  pixelboard inspect --format svg -o tree.svg
  pixelboard inspect --format png --scale 8 -o wireframe.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.inspect(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list widgets in node labels")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixel upscaling factor for png")

	return cmd
}

func (c *CLI) inspect(cmd *cobra.Command, opts inspectOptions) error {
	if opts.format != formatDOT && opts.format != formatSVG && opts.format != formatPNG {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg or png)", opts.format)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	// Inspection never renders widgets, so no rasterizer is needed.
	board, err := cfg.Build(nil)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case formatDOT, formatSVG:
		dot, err := inspect.ToDOT(board.Composer, inspect.Options{Names: board.Tree, Detailed: opts.detailed})
		if err != nil {
			return err
		}
		data = []byte(dot)
		if opts.format == formatSVG {
			if data, err = inspect.RenderSVG(cmd.Context(), dot); err != nil {
				return err
			}
		}
	case formatPNG:
		frame, err := inspect.Wireframe(board.Composer)
		if err != nil {
			return err
		}
		return c.writeOutput(opts.output, func(w io.Writer) error {
			return sink.EncodePNG(w, frame, opts.scale)
		})
	}

	return c.writeOutput(opts.output, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// writeOutput writes to path, or to stdout when path is empty.
func (c *CLI) writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(c.stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "write %s", path)
	}
	printFile(c.stderr, path)
	return nil
}
