package widget

import (
	"testing"
	"time"

	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

func TestTextEmpty(t *testing.T) {
	r := blocks(map[rune]int{'A': 2})
	b := NewText(r, "", white).Render(8, 4, time.Second)
	if got := b.Count(pixel.Transparent); got != 32 {
		t.Errorf("transparent cells = %d, want 32", got)
	}
	if r.calls != 0 {
		t.Errorf("empty text rasterized %d glyphs", r.calls)
	}
}

func TestTextFitsDoesNotMove(t *testing.T) {
	r := blocks(map[rune]int{'A': 2, 'B': 2})
	w := NewText(r, "AB", white)

	first := w.Render(10, 4, 0)
	second := w.Render(10, 4, 3*time.Second)

	if !first.Equal(second) {
		t.Error("text that fits should be stable across frames")
	}
	if w.ScrollPosition() != 0 {
		t.Errorf("scroll = %v, want 0", w.ScrollPosition())
	}
	want := []bool{true, true, false, true, true, false, false, false, false, false}
	got := opaqueColumns(first, 0)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row 0 opaque columns = %v, want %v", got, want)
		}
	}
}

func TestTextExactFitDoesNotMove(t *testing.T) {
	// "AB" advances 3 + 3 = 6, exactly the box width.
	w := NewText(blocks(map[rune]int{'A': 2, 'B': 2}), "AB", white)
	w.Render(6, 3, 0)
	w.Render(6, 3, time.Second)
	if w.ScrollPosition() != 0 {
		t.Errorf("scroll = %v, want 0 for an exact fit", w.ScrollPosition())
	}
}

func TestTextScrollWrapsToStart(t *testing.T) {
	// "AB" advances 5 + 4 = 9 in a box 6 wide.
	r := blocks(map[rune]int{'A': 4, 'B': 3})
	w := NewText(r, "AB", white)

	frame0 := w.Render(6, 5, 0)
	if w.RasterSet().TotalWidth != 9 {
		t.Fatalf("total width = %d, want 9", w.RasterSet().TotalWidth)
	}

	// 50 px/s for 200ms is 10 px, past the total width of 9.
	after := w.Render(6, 5, 200*time.Millisecond)
	if w.ScrollPosition() != 0 {
		t.Fatalf("scroll = %v, want reset to 0", w.ScrollPosition())
	}
	if !after.Equal(frame0) {
		t.Error("frame after wrapping should equal frame 0")
	}
}

func TestTextScrollMarquee(t *testing.T) {
	r := blocks(map[rune]int{'A': 4, 'B': 3})
	w := NewText(r, "AB", white)

	// 50 px/s for 50ms is 2.5 px, truncated to column 2.
	b := w.Render(6, 5, 50*time.Millisecond)
	if int(w.ScrollPosition()) != 2 {
		t.Fatalf("scroll = %v, want 2.5", w.ScrollPosition())
	}

	// A covers columns 2-5; B starts at 7 and wraps to 1-3.
	want := []bool{false, true, true, true, true, true}
	for row := 0; row < 5; row++ {
		got := opaqueColumns(b, row)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("row %d opaque columns = %v, want %v", row, got, want)
			}
		}
	}
}

func TestTextScrollSpeed(t *testing.T) {
	w := NewText(blocks(map[rune]int{'A': 10}), "A", white, WithSpeed(4))
	w.Render(5, 3, time.Second)
	if w.ScrollPosition() != 4 {
		t.Errorf("scroll = %v, want 4", w.ScrollPosition())
	}
	w.Render(5, 3, 500*time.Millisecond)
	if w.ScrollPosition() != 6 {
		t.Errorf("scroll = %v, want 6", w.ScrollPosition())
	}
}

func TestTextBottomAligned(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'a': {width: fixed(2), height: half, coverage: 255},
	}}
	b := NewText(r, "a", white).Render(4, 8, 0)

	for row := 0; row < 8; row++ {
		want := row >= 4
		if got := b.At(row, 0).Opaque; got != want {
			t.Errorf("row %d opaque = %v, want %v", row, got, want)
		}
	}
}

func TestTextThreshold(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'a': {width: fixed(1), height: same, coverage: 125},
		'b': {width: fixed(1), height: same, coverage: 126},
	}}
	b := NewText(r, "ab", white).Render(10, 3, 0)

	if b.At(0, 0).Opaque {
		t.Error("coverage at the threshold should stay transparent")
	}
	if got := b.At(0, 2); got != pixel.RGB(126, 126, 126) {
		t.Errorf("coverage 126 = %v, want #7e7e7e", got)
	}
}

func TestTextColorScaled(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'a': {width: fixed(1), height: same, coverage: 200},
	}}
	b := NewText(r, "a", pixel.RGB(255, 100, 10)).Render(3, 2, 0)
	if got := b.At(0, 0); got != pixel.RGB(200, 78, 7) {
		t.Errorf("pixel = %+v, want {200 78 7}", got)
	}
}

func TestTextTransparentColorIsBlack(t *testing.T) {
	b := NewText(blocks(map[rune]int{'A': 1}), "A", pixel.Transparent).Render(3, 2, 0)
	if got := b.At(0, 0); got != pixel.RGB(0, 0, 0) {
		t.Errorf("pixel = %v, want opaque black", got)
	}
}

func TestTextCustomThreshold(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'a': {width: fixed(1), height: same, coverage: 100},
	}}
	if NewText(r, "a", white).Render(3, 2, 0).At(0, 0).Opaque {
		t.Error("coverage 100 should not paint with the default threshold")
	}
	if !NewText(r, "a", white, WithThreshold(50)).Render(3, 2, 0).At(0, 0).Opaque {
		t.Error("coverage 100 should paint with threshold 50")
	}
}

func TestTextSpaceAdvancesOne(t *testing.T) {
	w := NewText(blocks(map[rune]int{'A': 1}), "A A", white)
	b := w.Render(10, 2, 0)

	if got := w.RasterSet().TotalWidth; got != 5 {
		t.Errorf("total width = %d, want 5", got)
	}
	want := []bool{true, false, false, true, false}
	got := opaqueColumns(b, 0)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("opaque columns = %v, want %v", got, want)
		}
	}
}

func TestTextRebuildsOnResize(t *testing.T) {
	r := blocks(map[rune]int{'A': 4, 'B': 3})
	w := NewText(r, "ABBA", white)

	w.Render(6, 5, 0)
	if r.calls != 2 {
		t.Fatalf("rasterized %d glyphs, want 2 distinct", r.calls)
	}

	w.Render(6, 5, 50*time.Millisecond)
	if r.calls != 2 {
		t.Errorf("same size rasterized again (%d calls)", r.calls)
	}
	if w.ScrollPosition() == 0 {
		t.Fatal("text should be scrolling")
	}

	w.Render(6, 7, 0)
	if r.calls != 4 {
		t.Errorf("resize should rebuild, calls = %d", r.calls)
	}
	if w.ScrollPosition() != 0 {
		t.Errorf("scroll = %v after rebuild, want 0", w.ScrollPosition())
	}
	if got := w.RasterSet().Size; got != 7 {
		t.Errorf("raster size = %d, want 7", got)
	}

	w.Render(8, 7, 0)
	if r.calls != 6 {
		t.Errorf("width change should rebuild, calls = %d", r.calls)
	}
}

func TestTextSetText(t *testing.T) {
	r := blocks(map[rune]int{'A': 1, 'B': 1})
	w := NewText(r, "A", white)
	w.Render(5, 2, 0)

	w.SetText("A")
	w.Render(5, 2, 0)
	if r.calls != 1 {
		t.Errorf("setting the same text rebuilt the cache (%d calls)", r.calls)
	}

	w.SetText("B")
	w.Render(5, 2, 0)
	if r.calls != 2 {
		t.Errorf("new text should rebuild, calls = %d", r.calls)
	}
	if !w.RasterSet().Has('B') || w.RasterSet().Has('A') {
		t.Error("raster set should hold only the new text")
	}
}

func TestTextDeterministic(t *testing.T) {
	frames := []time.Duration{0, 16 * time.Millisecond, 33 * time.Millisecond, 70 * time.Millisecond}
	a := NewText(blocks(map[rune]int{'A': 4, 'B': 3}), "ABAB", white)
	b := NewText(blocks(map[rune]int{'A': 4, 'B': 3}), "ABAB", white)

	for i, elapsed := range frames {
		if !a.Render(9, 5, elapsed).Equal(b.Render(9, 5, elapsed)) {
			t.Fatalf("frame %d differs between identical widgets", i)
		}
	}
}

func TestTextShrinkPicksLargestFit(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'A': {width: half, height: same, coverage: 255},
		'B': {width: half, height: same, coverage: 255},
	}}
	w := NewText(r, "AB", white, WithFit(FitShrink))
	b := w.Render(10, 10, 0)

	// 10px glyphs advance 12; 9px glyphs advance 4+1+4+1 = 10.
	if got := w.RasterSet().Size; got != 9 {
		t.Fatalf("size = %d, want 9", got)
	}
	checks := []struct {
		row, col int
		opaque   bool
	}{
		{0, 0, true}, {8, 3, true}, {0, 4, false}, {0, 5, true}, {8, 8, true},
		{0, 9, false}, {9, 0, false},
	}
	for _, c := range checks {
		if got := b.At(c.row, c.col).Opaque; got != c.opaque {
			t.Errorf("At(%d, %d) opaque = %v, want %v", c.row, c.col, got, c.opaque)
		}
	}
}

func TestTextShrinkCentersHorizontally(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'A': {width: half, height: same, coverage: 255},
		'B': {width: half, height: same, coverage: 255},
	}}
	w := NewText(r, "AB", white, WithFit(FitShrink))
	b := w.Render(20, 10, time.Second)

	if got := w.RasterSet().Size; got != 10 {
		t.Fatalf("size = %d, want 10 (no shrink needed)", got)
	}
	// Advance 12 in 20 columns starts at column 4.
	want := []bool{false, false, false, false, true, true, true, true, true, false, true, true, true, true, true, false}
	got := opaqueColumns(b, 0)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("opaque columns = %v, want %v", got[:len(want)], want)
		}
	}
}

func TestTextShrinkSharedBaseline(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'A': {width: half, height: same, coverage: 255},
		'a': {width: half, height: half, coverage: 255},
	}}
	b := NewText(r, "Aa", white, WithFit(FitShrink)).Render(40, 10, 0)

	// A spans columns 14-18, a spans 20-24 and sits on the same baseline.
	if !b.At(0, 14).Opaque || !b.At(9, 14).Opaque {
		t.Error("tall glyph should fill the box height")
	}
	if b.At(4, 20).Opaque {
		t.Error("short glyph should not reach above half height")
	}
	if !b.At(5, 20).Opaque || !b.At(9, 20).Opaque {
		t.Error("short glyph should end on the shared baseline")
	}
}

func TestTextShrinkCentersVertically(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'A': {width: fixed(2), height: fixed(4), coverage: 255},
	}}
	b := NewText(r, "A", white, WithFit(FitShrink)).Render(10, 10, 0)

	for row := 0; row < 10; row++ {
		want := row >= 3 && row < 7
		if got := b.At(row, 4).Opaque; got != want {
			t.Errorf("row %d opaque = %v, want %v", row, got, want)
		}
	}
}

func TestTextShrinkMinSize(t *testing.T) {
	newRasterizer := func() *fakeRasterizer {
		return &fakeRasterizer{glyphs: map[rune]fakeGlyph{
			'W': {width: same, height: same, coverage: 255},
		}}
	}

	w := NewText(newRasterizer(), "WWW", white, WithFit(FitShrink))
	w.Render(4, 20, 0)
	if got := w.RasterSet().Size; got != DefaultMinSize {
		t.Errorf("size = %d, want floor %d", got, DefaultMinSize)
	}

	w = NewText(newRasterizer(), "WWW", white, WithFit(FitShrink), WithMinSize(12))
	w.Render(4, 20, 0)
	if got := w.RasterSet().Size; got != 12 {
		t.Errorf("size = %d, want floor 12", got)
	}
}

func TestTextShrinkThresholdDefault(t *testing.T) {
	if got := NewText(nil, "x", white, WithFit(FitShrink)).threshold; got != DefaultShrinkThreshold {
		t.Errorf("shrink threshold = %d, want %d", got, DefaultShrinkThreshold)
	}
	if got := NewText(nil, "x", white).threshold; got != DefaultScrollThreshold {
		t.Errorf("scroll threshold = %d, want %d", got, DefaultScrollThreshold)
	}
}

func TestRasterSetMissingGlyphPanics(t *testing.T) {
	set := BuildRasterSet(blocks(map[rune]int{'A': 1}), []rune("A"), 4)
	defer func() {
		if recover() == nil {
			t.Error("Glyph for a rune outside the set should panic")
		}
	}()
	set.Glyph('Z')
}

func TestBuildRasterSet(t *testing.T) {
	r := &fakeRasterizer{glyphs: map[rune]fakeGlyph{
		'a': {width: fixed(3), height: fixed(5), yMin: 0, coverage: 255},
		'g': {width: fixed(3), height: fixed(7), yMin: -2, coverage: 255},
	}}
	set := BuildRasterSet(r, []rune("gaga"), 8)

	if r.calls != 2 {
		t.Errorf("rasterized %d times, want once per distinct rune", r.calls)
	}
	if set.TotalWidth != 16 {
		t.Errorf("TotalWidth = %d, want 16", set.TotalWidth)
	}
	if set.MaxHeight != 7 || set.Ascent != 5 || set.Descent != 2 {
		t.Errorf("MaxHeight/Ascent/Descent = %d/%d/%d, want 7/5/2", set.MaxHeight, set.Ascent, set.Descent)
	}
	if !set.Fits(16) || set.Fits(15) {
		t.Error("Fits should compare against the total advance")
	}
}

func TestParseFit(t *testing.T) {
	tests := []struct {
		in      string
		want    Fit
		wantErr bool
	}{
		{"", FitScroll, false},
		{"scroll", FitScroll, false},
		{"Shrink", FitShrink, false},
		{"stretch", FitScroll, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFit(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFit(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFit(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
