//go:build !linux

package sink

import "github.com/K-JBoon/pixelboard/pkg/errors"

// Framebuffer is only available on Linux.
type Framebuffer struct{}

// OpenFramebuffer always fails on this platform.
func OpenFramebuffer(device string) (*Framebuffer, error) {
	return nil, errors.New(errors.ErrCodeUnsupported, "framebuffer output %s requires linux", device)
}

func (*Framebuffer) Size() (int, int)                 { return 0, 0 }
func (*Framebuffer) SetPixel(x, y int, r, g, b uint8) {}
func (*Framebuffer) Swap() error                      { return nil }
func (*Framebuffer) Close() error                     { return nil }
