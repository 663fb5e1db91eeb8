package glyph

import (
	"context"
	"image"
	"image/color"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/observability"
)

const (
	// DefaultCacheSize is the number of glyphs kept per rasterizer.
	DefaultCacheSize = 512

	// faceCacheSize bounds the number of open faces (one per pixel height).
	faceCacheSize = 16

	cacheKeyGlyph = "glyph"
	cacheKeyFace  = "face"
)

type glyphKey struct {
	r    rune
	size int
}

// OpenType rasterizes glyphs from a TrueType or OpenType font.
//
// Faces are created lazily per pixel height and rasterized glyphs are
// memoised, so repeated layouts at the same size do not touch the font.
// An OpenType is not safe for concurrent use.
type OpenType struct {
	font    *opentype.Font
	hinting font.Hinting
	faces   *lru.Cache[int, font.Face]
	glyphs  *lru.Cache[glyphKey, Glyph]
}

// Option configures an OpenType rasterizer.
type Option func(*options)

type options struct {
	cacheSize int
	hinting   font.Hinting
}

// WithCacheSize sets the number of glyphs kept in the LRU cache.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithHinting overrides the outline hinting mode. The default is full hinting.
func WithHinting(h font.Hinting) Option {
	return func(o *options) { o.hinting = h }
}

// NewOpenType parses font data and returns a rasterizer for it.
func NewOpenType(data []byte, opts ...Option) (*OpenType, error) {
	o := options{cacheSize: DefaultCacheSize, hinting: font.HintingFull}
	for _, opt := range opts {
		opt(&o)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse font")
	}

	faces, err := lru.NewWithEvict[int, font.Face](faceCacheSize, func(_ int, face font.Face) {
		face.Close()
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create face cache")
	}
	glyphs, err := lru.New[glyphKey, Glyph](o.cacheSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create glyph cache")
	}

	return &OpenType{font: f, hinting: o.hinting, faces: faces, glyphs: glyphs}, nil
}

// Rasterize implements Rasterizer. Runes the font has no glyph for, and
// non-positive heights, yield an empty zero-width glyph.
func (t *OpenType) Rasterize(r rune, pixelHeight int) Glyph {
	if pixelHeight <= 0 {
		return Glyph{}
	}

	ctx := context.Background()
	key := glyphKey{r: r, size: pixelHeight}
	if g, ok := t.glyphs.Get(key); ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyGlyph)
		return g
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyGlyph)

	face, err := t.face(ctx, pixelHeight)
	if err != nil {
		return Glyph{}
	}
	g := rasterize(face, r)
	t.glyphs.Add(key, g)
	observability.Cache().OnCacheSet(ctx, cacheKeyGlyph, len(g.Coverage))
	return g
}

// Close releases all cached faces.
func (t *OpenType) Close() error {
	t.faces.Purge()
	t.glyphs.Purge()
	return nil
}

func (t *OpenType) face(ctx context.Context, size int) (font.Face, error) {
	if face, ok := t.faces.Get(size); ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyFace)
		return face, nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyFace)

	// At 72 DPI one point is one pixel, so Size is the pixel height.
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: t.hinting,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create face at %dpx", size)
	}
	t.faces.Add(size, face)
	observability.Cache().OnCacheSet(ctx, cacheKeyFace, 1)
	return face, nil
}

// rasterize draws r with its pen at the origin and copies the mask into a
// tightly cropped coverage bitmap.
func rasterize(face font.Face, r rune) Glyph {
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, 0), r)
	if !ok || dr.Empty() {
		return Glyph{}
	}

	w, h := dr.Dx(), dr.Dy()
	g := Glyph{
		Metrics: Metrics{
			Width:  w,
			Height: h,
			XMin:   dr.Min.X,
			YMin:   -dr.Max.Y,
		},
		Coverage: make([]uint8, w*h),
	}

	if alpha, ok := mask.(*image.Alpha); ok {
		for y := 0; y < h; y++ {
			off := alpha.PixOffset(maskp.X, maskp.Y+y)
			copy(g.Coverage[y*w:(y+1)*w], alpha.Pix[off:off+w])
		}
		return g
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := color.AlphaModel.Convert(mask.At(maskp.X+x, maskp.Y+y)).(color.Alpha)
			g.Coverage[y*w+x] = a.A
		}
	}
	return g
}
