// Package sink delivers finished frames to a display.
//
// The frame loop hands every composited canvas to exactly one [Sink]. Shipped
// sinks:
//
//   - [Terminal] writes ANSI true-colour block characters to a writer.
//   - [Screen] draws full-screen through tcell and watches for quit keys.
//   - [Matrix] drives an LED panel through the [Panel] interface; on Linux
//     [OpenFramebuffer] provides a Panel over /dev/fbN.
//   - [PNG] writes frames as image files.
//
// Display does not keep the buffer after it returns.
package sink

import (
	"strings"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/pixel"
)

// Sink displays frames.
type Sink interface {
	Display(b *pixel.Buffer) error
	Close() error
}

// Kind names a sink implementation.
type Kind string

const (
	KindTerminal Kind = "terminal"
	KindScreen   Kind = "screen"
	KindMatrix   Kind = "matrix"
	KindPNG      Kind = "png"
)

// Kinds lists every sink kind.
var Kinds = []Kind{KindTerminal, KindScreen, KindMatrix, KindPNG}

// ParseKind parses a sink name. The empty string is KindTerminal.
func ParseKind(s string) (Kind, error) {
	v := Kind(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return KindTerminal, nil
	}
	for _, k := range Kinds {
		if v == k {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidOutput, "unknown output %q (want terminal, screen, matrix or png)", s)
}
