package sink

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// FramePattern names the files written by a PNG sink in directory mode.
const FramePattern = "frame-%04d.png"

// PNG writes frames as PNG images, either one numbered file per frame in a
// directory or every frame over a single file.
type PNG struct {
	dir   string
	file  string
	scale int
	frame int
}

// PNGOption configures a PNG sink.
type PNGOption func(*PNG)

// WithScale upscales each pixel to a scale x scale block.
func WithScale(scale int) PNGOption {
	return func(p *PNG) {
		if scale > 0 {
			p.scale = scale
		}
	}
}

// NewPNGDir returns a sink that writes frame-0001.png, frame-0002.png, ...
// into dir, creating it if needed.
func NewPNGDir(dir string, opts ...PNGOption) (*PNG, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOutput, err, "create %s", dir)
	}
	p := &PNG{dir: dir, scale: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewPNGFile returns a sink that overwrites path with every frame, so the
// file holds the most recent one.
func NewPNGFile(path string, opts ...PNGOption) *PNG {
	p := &PNG{file: path, scale: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Frames returns the number of frames written.
func (p *PNG) Frames() int { return p.frame }

// Display implements Sink.
func (p *PNG) Display(b *pixel.Buffer) error {
	p.frame++
	path := p.file
	if path == "" {
		path = filepath.Join(p.dir, fmt.Sprintf(FramePattern, p.frame))
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "create %s", path)
	}
	if err := EncodePNG(f, b, p.scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "write %s", path)
	}
	return nil
}

// Close implements Sink.
func (p *PNG) Close() error { return nil }

// EncodePNG writes b as a PNG, nearest-neighbour upscaled by scale.
// Transparent pixels stay transparent.
func EncodePNG(w io.Writer, b *pixel.Buffer, scale int) error {
	var img image.Image = b.ToImage()
	if scale > 1 {
		src := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*scale, src.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
		img = dst
	}
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "encode png")
	}
	return nil
}
