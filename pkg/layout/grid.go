package layout

import (
	"math"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

// maxTracks bounds implicit grid growth from large line numbers or spans.
const maxTracks = 1024

// box is a node's content box in absolute, unrounded canvas coordinates.
type box struct {
	x, y, w, h float64
}

// area is a resolved grid area in track indices, end exclusive.
type area struct {
	col, row         int
	colSpan, rowSpan int
}

func (t *Tree) layout(id NodeID, b box) error {
	n := &t.nodes[id]
	s := n.style

	var flow, absolute []NodeID
	for _, c := range n.children {
		if t.nodes[c].style.Position == PositionAbsolute {
			absolute = append(absolute, c)
		} else {
			flow = append(flow, c)
		}
	}

	if len(flow) > 0 {
		areas, cols, rows, err := t.place(flow, len(s.Columns), len(s.Rows))
		if err != nil {
			return t.wrap(id, err)
		}
		colSizes, err := sizeTracks(s.Columns, cols, b.w)
		if err != nil {
			return t.wrap(id, err)
		}
		rowSizes, err := sizeTracks(s.Rows, rows, b.h)
		if err != nil {
			return t.wrap(id, err)
		}
		colStarts := offsets(colSizes)
		rowStarts := offsets(rowSizes)

		for i, c := range flow {
			a := areas[i]
			cell := box{
				x: b.x + colStarts[a.col],
				y: b.y + rowStarts[a.row],
				w: colStarts[a.col+a.colSpan] - colStarts[a.col],
				h: rowStarts[a.row+a.rowSpan] - rowStarts[a.row],
			}
			if err := t.place1(c, b, cell); err != nil {
				return err
			}
		}
	}

	for _, c := range absolute {
		cs := t.nodes[c].style
		if err := validateDimension(cs.Left, "left"); err != nil {
			return t.wrap(c, err)
		}
		if err := validateDimension(cs.Top, "top"); err != nil {
			return t.wrap(c, err)
		}
		left := cs.Left.resolve(b.w, 0)
		top := cs.Top.resolve(b.h, 0)
		cell := box{x: b.x + left, y: b.y + top, w: max(0, b.w-left), h: max(0, b.h-top)}
		if err := t.place1(c, b, cell); err != nil {
			return err
		}
	}
	return nil
}

// place1 sizes child c inside cell, records its rounded geometry relative to
// parent and recurses.
func (t *Tree) place1(c NodeID, parent, cell box) error {
	cs := t.nodes[c].style
	if err := validateDimension(cs.Width, "width"); err != nil {
		return t.wrap(c, err)
	}
	if err := validateDimension(cs.Height, "height"); err != nil {
		return t.wrap(c, err)
	}
	cell.w = cs.Width.resolve(cell.w, cell.w)
	cell.h = cs.Height.resolve(cell.h, cell.h)

	x0, y0 := math.Round(cell.x), math.Round(cell.y)
	x1, y1 := math.Round(cell.x+cell.w), math.Round(cell.y+cell.h)
	t.nodes[c].geom = Geometry{
		X:      int(x0 - math.Round(parent.x)),
		Y:      int(y0 - math.Round(parent.y)),
		Width:  int(x1 - x0),
		Height: int(y1 - y0),
	}
	t.nodes[c].solved = true
	return t.layout(c, cell)
}

// place resolves the grid area of every flow item. Items with a definite row
// are placed first, then the rest in document order; auto axes take the first
// free area scanning row-major. It returns the final column and row counts,
// including implicit tracks.
func (t *Tree) place(items []NodeID, explicitCols, explicitRows int) ([]area, int, int, error) {
	areas := make([]area, len(items))
	cols := max(1, explicitCols)
	rows := explicitRows

	for i, c := range items {
		s := t.nodes[c].style
		if s.Column.Line < 0 || s.Row.Line < 0 || s.Column.Span < 0 || s.Row.Span < 0 {
			return nil, 0, 0, errors.New(errors.ErrCodeInvalidLayout, "%s: negative grid line or span (column %s, row %s)", t.label(c), s.Column, s.Row)
		}
		a := area{
			col: s.Column.Line - 1, colSpan: s.Column.span(),
			row: s.Row.Line - 1, rowSpan: s.Row.span(),
		}
		if s.Column.IsAuto() {
			a.col = -1
		}
		if s.Row.IsAuto() {
			a.row = -1
		}
		areas[i] = a
		cols = max(cols, a.colSpan, a.col+a.colSpan)
		rows = max(rows, a.row+a.rowSpan)
	}
	if cols > maxTracks || rows > maxTracks {
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidLayout, "grid of %dx%d tracks exceeds %d", cols, rows, maxTracks)
	}

	occupied := map[[2]int]bool{}
	free := func(a area) bool {
		for r := a.row; r < a.row+a.rowSpan; r++ {
			for c := a.col; c < a.col+a.colSpan; c++ {
				if occupied[[2]int{r, c}] {
					return false
				}
			}
		}
		return true
	}
	mark := func(a area) {
		for r := a.row; r < a.row+a.rowSpan; r++ {
			for c := a.col; c < a.col+a.colSpan; c++ {
				occupied[[2]int{r, c}] = true
			}
		}
		cols = max(cols, a.col+a.colSpan)
		rows = max(rows, a.row+a.rowSpan)
	}

	// Fully definite items claim their cells first.
	for i := range areas {
		if areas[i].col >= 0 && areas[i].row >= 0 {
			mark(areas[i])
		}
	}
	// Row-locked items take the first free column in their row.
	for i := range areas {
		a := &areas[i]
		if a.row < 0 || a.col >= 0 {
			continue
		}
		a.col = 0
		for !free(*a) {
			a.col++
		}
		mark(*a)
	}
	// Everything else in order, row-major.
	for i := range areas {
		a := &areas[i]
		if a.row >= 0 {
			continue
		}
		colLocked := a.col >= 0
		for r := 0; ; r++ {
			a.row = r
			if colLocked {
				if free(*a) {
					break
				}
				continue
			}
			found := false
			for a.col = 0; a.col+a.colSpan <= cols; a.col++ {
				if free(*a) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		mark(*a)
	}
	if cols > maxTracks || rows > maxTracks {
		return nil, 0, 0, errors.New(errors.ErrCodeInvalidLayout, "grid of %dx%d tracks exceeds %d", cols, rows, maxTracks)
	}
	return areas, cols, rows, nil
}

// sizeTracks resolves count tracks along an axis of the given length. Tracks
// past the template are implicit auto tracks.
func sizeTracks(template []Dimension, count int, length float64) ([]float64, error) {
	sizes := make([]float64, count)
	var fixed, frSum float64
	autos := 0
	for i := 0; i < count; i++ {
		var d Dimension
		if i < len(template) {
			d = template[i]
		}
		if d.Value < 0 {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "negative track size %s", d)
		}
		switch d.Unit {
		case UnitPoints, UnitPercent:
			sizes[i] = d.resolve(length, 0)
			fixed += sizes[i]
		case UnitFr:
			frSum += d.Value
		default:
			autos++
		}
	}

	free := length - fixed
	if free <= 0 {
		return sizes, nil
	}
	switch {
	case frSum > 0:
		// A total below 1fr leaves the remainder unused, as in CSS.
		unit := free / max(frSum, 1)
		for i := 0; i < count && i < len(template); i++ {
			if template[i].Unit == UnitFr {
				sizes[i] = template[i].Value * unit
			}
		}
	case autos > 0:
		share := free / float64(autos)
		for i := 0; i < count; i++ {
			if i >= len(template) || template[i].Unit == UnitAuto {
				sizes[i] = share
			}
		}
	}
	return sizes, nil
}

// offsets returns the start of every track plus the end of the last one.
func offsets(sizes []float64) []float64 {
	out := make([]float64, len(sizes)+1)
	for i, s := range sizes {
		out[i+1] = out[i] + s
	}
	return out
}

func validateDimension(d Dimension, field string) error {
	if d.Value < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "negative %s %s", field, d)
	}
	if d.Unit == UnitFr {
		return errors.New(errors.ErrCodeInvalidLayout, "%s cannot be %s; fr is only valid for tracks", field, d)
	}
	return nil
}
