package cli

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/K-JBoon/pixelboard/pkg/config"
	"github.com/K-JBoon/pixelboard/pkg/observability"
	"github.com/K-JBoon/pixelboard/pkg/pipeline"
	"github.com/K-JBoon/pixelboard/pkg/scene"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

// runOptions holds flags for the run command.
type runOptions struct {
	output     string
	fps        int
	device     string
	brightness int
	dir        string
	frames     int
	stats      bool
}

// runCommand creates the run command for driving the board.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render the board continuously",
		Long: `Render the board frame by frame until interrupted.

Outputs:
  terminal  coloured block characters on stdout (default)
  screen    full-screen view; press q, Esc or Ctrl-C to quit
  matrix    LED panel behind a Linux framebuffer device
  png       numbered PNG files in a directory`,
		Example: `  pixelboard run
  pixelboard run --output screen --fps 30
  pixelboard run --output matrix --device /dev/fb1 --brightness 80
  pixelboard run -c board.toml --output png --dir frames --frames 120`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, cfg); err != nil {
				return err
			}
			return c.runBoard(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output: terminal, screen, matrix or png (default from board)")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "target frame rate (default from board)")
	cmd.Flags().StringVar(&opts.device, "device", "", "framebuffer device for matrix output")
	cmd.Flags().IntVar(&opts.brightness, "brightness", 0, "LED brightness percent for matrix output")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory for png output")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "log frame rate and timing every few seconds")

	return cmd
}

// apply overrides the board's output and rate with flags the user set.
func (o runOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Kind = o.output
	}
	if flags.Changed("fps") {
		cfg.Canvas.FPS = o.fps
	}
	if flags.Changed("device") {
		cfg.Output.Device = o.device
	}
	if flags.Changed("brightness") {
		cfg.Output.Brightness = o.brightness
	}
	if flags.Changed("dir") {
		cfg.Output.Dir = o.dir
	}
	return cfg.Validate()
}

func (c *CLI) runBoard(ctx context.Context, cfg *config.Config, opts runOptions) error {
	raster, err := cfg.Rasterizer()
	if err != nil {
		return err
	}
	defer raster.Close()

	board, err := cfg.Build(raster, scene.WithLogger(c.Logger))
	if err != nil {
		return err
	}

	out, screen, err := c.openSink(cfg)
	if err != nil {
		return err
	}

	if opts.stats {
		hooks := newStatsHooks(c.Logger, statsInterval)
		observability.SetFrameHooks(hooks)
		observability.SetCacheHooks(hooks)
		defer observability.Reset()
	}

	runner := pipeline.NewRunner(board.Composer, out,
		pipeline.WithFPS(cfg.Canvas.FPS),
		pipeline.WithFrameLimit(opts.frames),
		pipeline.WithLogger(c.Logger),
	)
	c.Logger.Debug("running board",
		"size", [2]int{cfg.Canvas.Width, cfg.Canvas.Height},
		"output", cfg.Output.Kind,
		"fps", cfg.Canvas.FPS)

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		defer stop()
		return runner.Run(loopCtx)
	})
	if screen != nil {
		g.Go(func() error {
			err := screen.WaitQuit(loopCtx)
			if loopCtx.Err() != nil && !stderrors.Is(err, sink.ErrQuit) {
				// The loop ended first.
				return nil
			}
			return err
		})
	}

	err = g.Wait()
	if stderrors.Is(err, sink.ErrQuit) {
		err = nil
	}
	// Close first so the screen sink has restored the terminal before logging.
	if cerr := out.Close(); err == nil {
		err = cerr
	}

	stats := runner.Stats()
	c.Logger.Info("stopped", "frames", stats.Frames, "fps", fmtFPS(stats.FPS()))
	return err
}

func fmtFPS(fps float64) string {
	return strconv.FormatFloat(fps, 'f', 1, 64)
}
