package layout

import "testing"

func TestParseTrack(t *testing.T) {
	tests := []struct {
		in      string
		want    Dimension
		wantErr bool
	}{
		{"25", Points(25), false},
		{"25px", Points(25), false},
		{" 12.5 ", Points(12.5), false},
		{"1fr", Fr(1), false},
		{"2.5FR", Fr(2.5), false},
		{"50%", Percent(50), false},
		{"auto", Auto(), false},
		{"", Auto(), false},
		{"-3", Dimension{}, true},
		{"wide", Dimension{}, true},
		{"fr", Dimension{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrack(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTrack(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTrack(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDimensionRejectsFr(t *testing.T) {
	if _, err := ParseDimension("1fr"); err == nil {
		t.Error("ParseDimension(1fr) should fail")
	}
	if d, err := ParseDimension("40%"); err != nil || d != Percent(40) {
		t.Errorf("ParseDimension(40%%) = %v, %v", d, err)
	}
}

func TestParseTracks(t *testing.T) {
	got, err := ParseTracks([]string{"25", "1fr"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != Points(25) || got[1] != Fr(1) {
		t.Errorf("ParseTracks = %v", got)
	}
	if _, err := ParseTracks([]string{"25", "bogus"}); err == nil {
		t.Error("ParseTracks should fail on a bad entry")
	}
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in      string
		want    Placement
		wantErr bool
	}{
		{"", Placement{}, false},
		{"auto", Placement{}, false},
		{"1", Line(1), false},
		{"span 3", Span(3), false},
		{"SPAN 2", Span(2), false},
		{"2 / span 2", LineSpan(2, 2), false},
		{"1 / 3", LineSpan(1, 2), false},
		{"2 / auto", Line(2), false},
		{"auto / span 2", Span(2), false},
		{"0", Placement{}, true},
		{"-1", Placement{}, true},
		{"span 0", Placement{}, true},
		{"3 / 2", Placement{}, true},
		{"span 2 / 4", Placement{}, true},
		{"left", Placement{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlacement(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlacement(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePlacement(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePosition(t *testing.T) {
	if p, err := ParsePosition("absolute"); err != nil || p != PositionAbsolute {
		t.Errorf("ParsePosition(absolute) = %v, %v", p, err)
	}
	if p, err := ParsePosition(""); err != nil || p != PositionGrid {
		t.Errorf("ParsePosition('') = %v, %v", p, err)
	}
	if _, err := ParsePosition("fixed"); err == nil {
		t.Error("ParsePosition(fixed) should fail")
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Points(25).String(), "25"},
		{Percent(12.5).String(), "12.5%"},
		{Fr(1).String(), "1fr"},
		{Auto().String(), "auto"},
		{Placement{}.String(), "auto"},
		{Line(2).String(), "2"},
		{Span(3).String(), "span 3"},
		{LineSpan(1, 2).String(), "1 / span 2"},
		{PositionAbsolute.String(), "absolute"},
		{Geometry{X: 1, Y: 2, Width: 3, Height: 4}.String(), "3x4+1+2"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
