package layout

import (
	"fmt"
	"strconv"
)

// Unit is the unit of a Dimension.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPoints
	UnitPercent
	UnitFr
)

// Dimension is a length, or a grid track size when the unit is UnitFr.
// The zero value is Auto.
type Dimension struct {
	Unit  Unit
	Value float64
}

// Points returns a fixed length in pixels.
func Points(v float64) Dimension { return Dimension{Unit: UnitPoints, Value: v} }

// Percent returns a length relative to the containing size.
func Percent(v float64) Dimension { return Dimension{Unit: UnitPercent, Value: v} }

// Fr returns a flexible track that takes a share of the free space.
func Fr(v float64) Dimension { return Dimension{Unit: UnitFr, Value: v} }

// Auto returns the automatic size.
func Auto() Dimension { return Dimension{} }

// IsAuto reports whether d is the automatic size.
func (d Dimension) IsAuto() bool { return d.Unit == UnitAuto }

// resolve returns the length of d against a containing size. Auto and fr
// resolve to fallback.
func (d Dimension) resolve(containing, fallback float64) float64 {
	switch d.Unit {
	case UnitPoints:
		return d.Value
	case UnitPercent:
		return containing * d.Value / 100
	default:
		return fallback
	}
}

func (d Dimension) String() string {
	v := strconv.FormatFloat(d.Value, 'f', -1, 64)
	switch d.Unit {
	case UnitPoints:
		return v
	case UnitPercent:
		return v + "%"
	case UnitFr:
		return v + "fr"
	default:
		return "auto"
	}
}

// Placement positions an item on one grid axis. Line is the 1-based start line
// (0 for auto placement) and Span the number of tracks covered (0 means 1).
type Placement struct {
	Line int
	Span int
}

// Line places an item starting at grid line n.
func Line(n int) Placement { return Placement{Line: n} }

// Span auto-places an item covering n tracks.
func Span(n int) Placement { return Placement{Span: n} }

// LineSpan places an item at grid line n covering span tracks.
func LineSpan(n, span int) Placement { return Placement{Line: n, Span: span} }

// IsAuto reports whether the start line is chosen by auto-placement.
func (p Placement) IsAuto() bool { return p.Line == 0 }

func (p Placement) span() int { return max(1, p.Span) }

func (p Placement) String() string {
	switch {
	case p.Line == 0 && p.Span <= 1:
		return "auto"
	case p.Line == 0:
		return fmt.Sprintf("span %d", p.Span)
	case p.Span <= 1:
		return strconv.Itoa(p.Line)
	default:
		return fmt.Sprintf("%d / span %d", p.Line, p.Span)
	}
}

// Position selects grid flow or absolute placement for a node.
type Position int

const (
	// PositionGrid places the node in its parent's grid.
	PositionGrid Position = iota
	// PositionAbsolute places the node at Left/Top inside its parent, outside the grid.
	PositionAbsolute
)

func (p Position) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "grid"
}

// Style describes how a node is sized and how it arranges its children.
type Style struct {
	// Width and Height of the node. Auto stretches to the grid area, or for
	// the root, to the available size.
	Width, Height Dimension

	// Columns and Rows are the explicit grid template of this node.
	Columns, Rows []Dimension

	// Column and Row place this node in its parent's grid.
	Column, Row Placement

	Position Position
	// Left and Top offset an absolutely positioned node.
	Left, Top Dimension
}
