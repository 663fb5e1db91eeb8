// Package config loads board descriptions.
//
// A board is described in TOML: the canvas, the output sink and a tree of
// nodes, each with a grid style and a list of widgets painted in order.
//
//	[canvas]
//	width = 96
//	height = 48
//
//	[root]
//	columns = ["25", "1fr"]
//
//	[[root.children]]
//	name = "header"
//	column = "span 2"
//
//	[[root.children.widgets]]
//	kind = "text"
//	text = "Pixelboard"
//
// [Default] returns the built-in board. [Config.Build] turns a description
// into a layout tree and a composer ready for the frame loop.
package config

import (
	_ "embed"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/K-JBoon/pixelboard/pkg/errors"
	"github.com/K-JBoon/pixelboard/pkg/sink"
)

//go:embed default.toml
var defaultTOML []byte

// Canvas limits.
const (
	MaxCanvasSize = 4096
	MaxDepth      = 32
)

// Config is a board description.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Output Output `toml:"output"`
	Root   Node   `toml:"root"`
}

// Canvas sets the frame size, rate and text font.
type Canvas struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
	Font   string `toml:"font,omitempty"`
}

// Output selects the sink. Device and Brightness apply to the matrix sink,
// Dir and Scale to the png sink. Zero values select the defaults.
type Output struct {
	Kind       string `toml:"kind"`
	Device     string `toml:"device,omitempty"`
	Brightness int    `toml:"brightness"`
	Dir        string `toml:"dir,omitempty"`
	Scale      int    `toml:"scale"`
}

// Node is one layout node. Sizes, tracks and placements use the syntax of
// the layout package parsers ("25", "50%", "1fr", "auto", "span 2", "1 / 3").
type Node struct {
	Name     string   `toml:"name,omitempty"`
	Width    string   `toml:"width,omitempty"`
	Height   string   `toml:"height,omitempty"`
	Columns  []string `toml:"columns,omitempty"`
	Rows     []string `toml:"rows,omitempty"`
	Row      string   `toml:"row,omitempty"`
	Column   string   `toml:"column,omitempty"`
	Position string   `toml:"position,omitempty"`
	Left     string   `toml:"left,omitempty"`
	Top      string   `toml:"top,omitempty"`

	Widgets  []Widget `toml:"widgets,omitempty"`
	Children []Node   `toml:"children,omitempty"`
}

// Widget kinds.
const (
	KindSolid = "solid"
	KindText  = "text"
	KindClock = "clock"
)

// Widget is one widget attached to a node.
//
// For solid widgets Color is the fill and Border an optional border. For
// text and clock widgets Color is the text colour; the remaining fields tune
// text fitting and fall back to the widget defaults when unset.
type Widget struct {
	Kind      string   `toml:"kind"`
	Color     string   `toml:"color,omitempty"`
	Border    string   `toml:"border,omitempty"`
	Text      string   `toml:"text,omitempty"`
	Fit       string   `toml:"fit,omitempty"`
	Speed     *float64 `toml:"speed,omitempty"`
	Threshold *int     `toml:"threshold,omitempty"`
	MinSize   int      `toml:"min_size,omitempty"`
}

// DefaultTOML returns the built-in board description.
func DefaultTOML() []byte {
	return append([]byte(nil), defaultTOML...)
}

// Default returns the built-in board.
func Default() *Config {
	cfg, err := Parse(defaultTOML)
	if err != nil {
		panic("config: built-in board is invalid: " + err.Error())
	}
	return cfg
}

// Load reads and validates the board description at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a board description. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse board")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode board")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Canvas.FPS == 0 {
		c.Canvas.FPS = 120
	}
	if c.Output.Kind == "" {
		c.Output.Kind = string(sink.KindTerminal)
	}
	if c.Output.Brightness == 0 {
		c.Output.Brightness = sink.DefaultBrightness
	}
	if c.Output.Scale == 0 {
		c.Output.Scale = 1
	}
	if c.Root.Name == "" {
		c.Root.Name = "root"
	}
}
