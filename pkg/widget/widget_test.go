package widget

import (
	"testing"
	"time"

	"github.com/K-JBoon/pixelboard/pkg/glyph"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

var (
	white = pixel.RGB(255, 255, 255)
	red   = pixel.RGB(255, 0, 0)
	black = pixel.RGB(0, 0, 0)
)

// fakeGlyph describes a solid rectangular glyph whose size may depend on the
// requested pixel height.
type fakeGlyph struct {
	width, height func(size int) int
	yMin          int
	coverage      uint8
}

type fakeRasterizer struct {
	glyphs map[rune]fakeGlyph
	calls  int
}

func (f *fakeRasterizer) Rasterize(r rune, size int) glyph.Glyph {
	f.calls++
	spec, ok := f.glyphs[r]
	if !ok {
		return glyph.Glyph{}
	}
	w, h := spec.width(size), spec.height(size)
	cov := make([]uint8, w*h)
	for i := range cov {
		cov[i] = spec.coverage
	}
	return glyph.Glyph{
		Metrics:  glyph.Metrics{Width: w, Height: h, YMin: spec.yMin},
		Coverage: cov,
	}
}

func fixed(n int) func(int) int { return func(int) int { return n } }
func same(size int) int         { return size }
func half(size int) int         { return size / 2 }

// blocks returns a rasterizer where every listed rune is size pixels tall and
// has the given fixed width with full coverage.
func blocks(widths map[rune]int) *fakeRasterizer {
	f := &fakeRasterizer{glyphs: map[rune]fakeGlyph{}}
	for r, w := range widths {
		f.glyphs[r] = fakeGlyph{width: fixed(w), height: same, coverage: 255}
	}
	f.glyphs[' '] = fakeGlyph{width: fixed(0), height: fixed(0)}
	return f
}

func opaqueColumns(b *pixel.Buffer, row int) []bool {
	cols := make([]bool, b.Width())
	for col := range cols {
		cols[col] = b.At(row, col).Opaque
	}
	return cols
}

func TestSolidRender(t *testing.T) {
	tests := []struct {
		name       string
		widget     *Solid
		w, h       int
		wantFill   int
		wantBorder int
	}{
		{"fill only", NewSolid(red), 10, 10, 100, 0},
		{"bordered", NewBordered(red, black), 10, 10, 64, 36},
		{"bordered tiny", NewBordered(red, black), 1, 4, 4, 0},
		{"empty box", NewBordered(red, black), 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.widget.Render(tt.w, tt.h, 0)
			if b.Width() != tt.w || b.Height() != tt.h {
				t.Fatalf("size = %dx%d, want %dx%d", b.Width(), b.Height(), tt.w, tt.h)
			}
			if got := b.Count(red); got != tt.wantFill {
				t.Errorf("fill cells = %d, want %d", got, tt.wantFill)
			}
			if got := b.Count(black); got != tt.wantBorder {
				t.Errorf("border cells = %d, want %d", got, tt.wantBorder)
			}
		})
	}
}

func TestSolidTransparentFill(t *testing.T) {
	b := NewBordered(pixel.Transparent, red).Render(4, 4, 0)
	if got := b.Count(pixel.Transparent); got != 4 {
		t.Errorf("transparent interior = %d, want 4", got)
	}
}

func TestSolidString(t *testing.T) {
	if got := NewSolid(red).String(); got != "solid(fill=#ff0000)" {
		t.Errorf("String() = %q", got)
	}
	if got := NewBordered(red, black).String(); got != "solid(fill=#ff0000 border=#000000)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFuncWidget(t *testing.T) {
	var w Widget = Func(func(width, height int, _ time.Duration) *pixel.Buffer {
		return pixel.Filled(width, height, red)
	})
	if got := w.Render(2, 3, 0).Count(red); got != 6 {
		t.Errorf("Func widget painted %d cells, want 6", got)
	}
}

func TestClockShowsTime(t *testing.T) {
	r := blocks(map[rune]int{'0': 1, '1': 1, '5': 1, '9': 1, ':': 1})
	now := time.Date(2024, 3, 1, 9, 5, 42, 0, time.Local)
	c := NewClock(NewText(r, "00:00", white), func() time.Time { return now })

	b := c.Render(20, 4, time.Second)
	if got := c.Text().Text(); got != "09:05" {
		t.Errorf("clock text = %q, want 09:05", got)
	}
	if b.Width() != 20 || b.Height() != 4 {
		t.Errorf("size = %dx%d, want 20x4", b.Width(), b.Height())
	}

	now = now.Add(14 * time.Hour)
	c.Render(20, 4, time.Second)
	if got := c.Text().Text(); got != "23:05" {
		t.Errorf("clock text = %q, want 23:05", got)
	}
}

func TestClockDefaultsToTimeNow(t *testing.T) {
	c := NewClock(NewText(blocks(nil), "", white), nil)
	if c.now == nil {
		t.Fatal("nil now should default to time.Now")
	}
}
