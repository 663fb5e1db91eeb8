// Package fonts provides embedded font files for glyph rasterization.
//
// The fonts are the Go font family from golang.org/x/image/font/gofont,
// compiled into the binary so a board never depends on system fonts.
package fonts

import (
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

// Default is the font used when a board does not name one.
const Default = "goregular"

var embedded = map[string][]byte{
	"goregular":  goregular.TTF,
	"gobold":     gobold.TTF,
	"gomono":     gomono.TTF,
	"gomonobold": gomonobold.TTF,
}

// Lookup returns the TTF data of an embedded font. Names are case-insensitive;
// the empty name selects Default.
func Lookup(name string) ([]byte, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = Default
	}
	data, ok := embedded[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeFontNotFound, "unknown font %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names returns the embedded font names in sorted order.
func Names() []string {
	names := make([]string, 0, len(embedded))
	for name := range embedded {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
