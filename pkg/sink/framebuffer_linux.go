//go:build linux

package sink

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

const (
	ioctlGetVScreenInfo = 0x4600
	ioctlWaitForVSync   = 0x40044620
)

// varScreenInfo mirrors struct fb_var_screeninfo from <linux/fb.h>.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp [3]uint32
	NonStd, Activate         uint32
	Height, Width            uint32
	AccelFlags, PixClock     uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode              uint32
	Rotate, Colorspace       uint32
	Reserved                 [4]uint32
}

// Framebuffer is a Panel over a Linux framebuffer device such as /dev/fb0.
// Pixels are drawn into a back buffer and copied to the mapped device memory
// on Swap, after waiting for vertical sync when the driver supports it.
type Framebuffer struct {
	file   *os.File
	mem    []byte
	back   []byte
	width  int
	height int
	stride int
	format pixelFormat
	vsync  bool
}

// OpenFramebuffer maps a framebuffer device. 16, 24 and 32 bpp formats are
// supported.
func OpenFramebuffer(device string) (*Framebuffer, error) {
	if err := errors.ValidateDevicePath(device); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDevice, err, "open %s", device)
	}

	var info varScreenInfo
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), ioctlGetVScreenInfo, uintptr(unsafe.Pointer(&info))); errno != 0 {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeDevice, errno, "query %s", device)
	}

	format := pixelFormat{
		bpp:   int(info.BitsPerPixel),
		red:   bitfield{offset: info.Red[0], length: info.Red[1]},
		green: bitfield{offset: info.Green[0], length: info.Green[1]},
		blue:  bitfield{offset: info.Blue[0], length: info.Blue[1]},
	}
	switch format.bpp {
	case 16, 24, 32:
	default:
		f.Close()
		return nil, errors.New(errors.ErrCodeUnsupported, "%s: %d bits per pixel is not supported", device, format.bpp)
	}

	stride := int(info.XResVirtual) * format.bpp / 8
	size := stride * int(info.YResVirtual)
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(errors.ErrCodeDevice, err, "map %s", device)
	}

	return &Framebuffer{
		file:   f,
		mem:    mem,
		back:   make([]byte, len(mem)),
		width:  int(info.XRes),
		height: int(info.YRes),
		stride: stride,
		format: format,
		vsync:  true,
	}, nil
}

// Size implements Panel.
func (fb *Framebuffer) Size() (int, int) { return fb.width, fb.height }

// SetPixel implements Panel. Coordinates outside the visible area are ignored.
func (fb *Framebuffer) SetPixel(x, y int, r, g, b uint8) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	fb.format.put(fb.back, y*fb.stride+x*fb.format.bpp/8, fb.format.pack(r, g, b))
}

// Swap implements Panel. Drivers without FBIO_WAITFORVSYNC are written
// immediately from then on.
func (fb *Framebuffer) Swap() error {
	if fb.vsync {
		if err := unix.IoctlSetPointerInt(int(fb.file.Fd()), ioctlWaitForVSync, 0); err != nil {
			fb.vsync = false
		}
	}
	copy(fb.mem, fb.back)
	return nil
}

// Close implements Panel.
func (fb *Framebuffer) Close() error {
	err := unix.Munmap(fb.mem)
	if cerr := fb.file.Close(); err == nil {
		err = cerr
	}
	return err
}
