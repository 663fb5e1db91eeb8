package pixel

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

// namedColors are the colour names accepted by ParseColor in addition to hex.
var namedColors = map[string]Pixel{
	"black":   RGB(0, 0, 0),
	"white":   RGB(255, 255, 255),
	"red":     RGB(255, 0, 0),
	"green":   RGB(0, 255, 0),
	"blue":    RGB(0, 0, 255),
	"yellow":  RGB(255, 255, 0),
	"cyan":    RGB(0, 255, 255),
	"magenta": RGB(255, 0, 255),
	"orange":  RGB(255, 165, 0),
	"gray":    RGB(128, 128, 128),
}

// ParseColor parses "#rrggbb", "#rgb", a colour name, or "none"/"transparent".
// The empty string is transparent.
func ParseColor(s string) (Pixel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return Transparent, nil
	}
	if p, ok := namedColors[s]; ok {
		return p, nil
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return Transparent, errors.New(errors.ErrCodeInvalidColor, "invalid color %q (want #rrggbb, #rgb, a name or none)", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Transparent, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// MustParseColor is like ParseColor but panics on error.
// It is intended for package-level colour constants.
func MustParseColor(s string) Pixel {
	p, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return p
}
