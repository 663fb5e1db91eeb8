package sink

// bitfield is the position of one colour channel inside a framebuffer pixel.
type bitfield struct {
	offset uint32
	length uint32
}

// pixelFormat describes how a framebuffer packs RGB into Bpp bytes.
type pixelFormat struct {
	bpp              int
	red, green, blue bitfield
}

// rgb565 is the usual 16 bpp layout.
var rgb565 = pixelFormat{
	bpp:   16,
	red:   bitfield{offset: 11, length: 5},
	green: bitfield{offset: 5, length: 6},
	blue:  bitfield{offset: 0, length: 5},
}

// pack converts an 8-bit channel triple to the native pixel value.
func (f pixelFormat) pack(r, g, b uint8) uint32 {
	return f.red.place(r) | f.green.place(g) | f.blue.place(b)
}

func (b bitfield) place(v uint8) uint32 {
	if b.length == 0 {
		return 0
	}
	if b.length < 8 {
		return uint32(v>>(8-b.length)) << b.offset
	}
	return uint32(v) << b.offset
}

// put stores value little-endian at off in buf.
func (f pixelFormat) put(buf []byte, off int, value uint32) {
	n := f.bpp / 8
	for i := 0; i < n; i++ {
		buf[off+i] = byte(value >> (8 * i))
	}
}
