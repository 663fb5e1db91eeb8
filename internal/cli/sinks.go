package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/K-JBoon/pixelboard/pkg/config"
	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

// openSink creates the sink selected by cfg.Output. The screen sink is also
// returned separately so the caller can watch it for quit keys.
func (c *CLI) openSink(cfg *config.Config) (sink.Sink, *sink.Screen, error) {
	kind, err := sink.ParseKind(cfg.Output.Kind)
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case sink.KindTerminal:
		c.checkTerminal(cfg.Canvas.Width, cfg.Canvas.Height)
		return sink.NewTerminal(c.stdout), nil, nil

	case sink.KindScreen:
		s, err := sink.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case sink.KindMatrix:
		if cfg.Output.Device == "" {
			return nil, nil, errors.New(errors.ErrCodeInvalidOutput, "matrix output needs a device (--device /dev/fb0)")
		}
		panel, err := sink.OpenFramebuffer(cfg.Output.Device)
		if err != nil {
			return nil, nil, err
		}
		return sink.NewMatrix(panel,
			sink.WithBrightness(cfg.Output.Brightness),
			sink.WithMatrixLogger(c.Logger),
		), nil, nil

	case sink.KindPNG:
		dir := cfg.Output.Dir
		if dir == "" {
			dir = "frames"
		}
		p, err := sink.NewPNGDir(dir, sink.WithScale(cfg.Output.Scale))
		if err != nil {
			return nil, nil, err
		}
		c.Logger.Info("writing frames", "dir", dir)
		return p, nil, nil
	}
	return nil, nil, errors.New(errors.ErrCodeUnsupported, "output %q", kind)
}

// checkTerminal warns when stdout cannot show a width x height board: each
// pixel takes two columns.
func (c *CLI) checkTerminal(width, height int) {
	f, ok := c.stdout.(*os.File)
	if !ok {
		return
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		printWarning(c.stderr, "stdout is not a terminal; writing escape sequences anyway")
		return
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return
	}
	if cols < 2*width || rows < height {
		printWarning(c.stderr, "terminal is %dx%d but the board needs %dx%d", cols, rows, 2*width, height)
	}
}
