package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pipeline"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

// snapshotOptions holds flags for the snapshot command.
type snapshotOptions struct {
	frames  int
	elapsed time.Duration
	scale   int
	output  string
}

// snapshotCommand creates the snapshot command for rendering frames to PNG.
func (c *CLI) snapshotCommand() *cobra.Command {
	opts := snapshotOptions{frames: 1, scale: 4}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames to PNG without a display",
		Long: `Render one or more frames of the board to PNG.

Each frame advances animations by --elapsed. With a single frame the output
is a file; with more it is a directory of frame-0001.png, frame-0002.png, ...`,
		Example: `  pixelboard snapshot -o board.png
  pixelboard snapshot --frames 60 --elapsed 50ms -o frames/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.snapshot(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.frames, "frames", opts.frames, "number of frames to render")
	cmd.Flags().DurationVar(&opts.elapsed, "elapsed", 0, "time between frames (default one frame interval of the board)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixel upscaling factor")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or directory for several frames (default snapshot.png or snapshot/)")

	return cmd
}

func (c *CLI) snapshot(cmd *cobra.Command, opts snapshotOptions) error {
	if opts.frames < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--frames must be at least 1")
	}
	if opts.scale < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "--scale must be at least 1")
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	raster, err := cfg.Rasterizer()
	if err != nil {
		return err
	}
	defer raster.Close()
	board, err := cfg.Build(raster)
	if err != nil {
		return err
	}

	elapsed := opts.elapsed
	if elapsed <= 0 {
		elapsed = pipeline.IntervalFor(cfg.Canvas.FPS)
	}

	out, err := snapshotSink(opts)
	if err != nil {
		return err
	}
	defer out.Close()

	prog := newProgress(c.Logger)
	runner := pipeline.NewRunner(board.Composer, out, pipeline.WithLogger(c.Logger))
	for i := 0; i < opts.frames; i++ {
		if err := runner.Step(cmd.Context(), elapsed); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d frame(s)", opts.frames))

	printSuccess(c.stdout, "Snapshot written")
	printKeyValue(c.stdout, "canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
	printKeyValue(c.stdout, "frames", fmt.Sprintf("%d at %s", opts.frames, elapsed))
	printFile(c.stdout, snapshotPath(opts))
	return nil
}

func snapshotPath(opts snapshotOptions) string {
	if opts.output != "" {
		return opts.output
	}
	if opts.frames == 1 {
		return "snapshot.png"
	}
	return "snapshot"
}

func snapshotSink(opts snapshotOptions) (*sink.PNG, error) {
	path := snapshotPath(opts)
	if opts.frames > 1 {
		return sink.NewPNGDir(path, sink.WithScale(opts.scale))
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOutput, err, "create %s", dir)
		}
	}
	return sink.NewPNGFile(path, sink.WithScale(opts.scale)), nil
}
