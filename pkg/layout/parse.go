package layout

import (
	"strconv"
	"strings"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

// ParseDimension parses a node size or offset: "auto" (or ""), "25", "25px"
// or "50%".
func ParseDimension(s string) (Dimension, error) {
	d, err := parseLength(s)
	if err != nil {
		return Dimension{}, err
	}
	if d.Unit == UnitFr {
		return Dimension{}, errors.New(errors.ErrCodeInvalidLayout, "invalid dimension %q: fr is only valid for tracks", s)
	}
	return d, nil
}

// ParseTrack parses a grid track: any dimension, or "1fr".
func ParseTrack(s string) (Dimension, error) {
	return parseLength(s)
}

// ParseTracks parses a template list.
func ParseTracks(specs []string) ([]Dimension, error) {
	out := make([]Dimension, 0, len(specs))
	for _, s := range specs {
		d, err := ParseTrack(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func parseLength(s string) (Dimension, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "auto" {
		return Auto(), nil
	}

	unit := UnitPoints
	switch {
	case strings.HasSuffix(v, "fr"):
		unit, v = UnitFr, strings.TrimSuffix(v, "fr")
	case strings.HasSuffix(v, "%"):
		unit, v = UnitPercent, strings.TrimSuffix(v, "%")
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return Dimension{}, errors.New(errors.ErrCodeInvalidLayout, "invalid length %q (want auto, 25, 25px, 50%% or 1fr)", s)
	}
	return Dimension{Unit: unit, Value: f}, nil
}

// ParsePlacement parses a grid placement: "auto" (or ""), "2", "span 3",
// "2 / span 2", or a start and end line "1 / 3".
func ParsePlacement(s string) (Placement, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == "auto" {
		return Placement{}, nil
	}

	start, end, hasEnd := strings.Cut(v, "/")
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)

	p, err := parsePlacementPart(start, s)
	if err != nil {
		return Placement{}, err
	}
	if !hasEnd {
		return p, nil
	}
	if p.Span > 0 {
		return Placement{}, errors.New(errors.ErrCodeInvalidLayout, "invalid placement %q: span must come after the start line", s)
	}

	q, err := parsePlacementPart(end, s)
	if err != nil {
		return Placement{}, err
	}
	switch {
	case q.Span > 0:
		p.Span = q.Span
	case q.Line > 0:
		if p.Line == 0 || q.Line <= p.Line {
			return Placement{}, errors.New(errors.ErrCodeInvalidLayout, "invalid placement %q: end line must follow the start line", s)
		}
		p.Span = q.Line - p.Line
	}
	return p, nil
}

func parsePlacementPart(part, orig string) (Placement, error) {
	if part == "auto" {
		return Placement{}, nil
	}
	if rest, ok := strings.CutPrefix(part, "span"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 1 {
			return Placement{}, errors.New(errors.ErrCodeInvalidLayout, "invalid placement %q: bad span", orig)
		}
		return Span(n), nil
	}
	n, err := strconv.Atoi(part)
	if err != nil || n < 1 {
		return Placement{}, errors.New(errors.ErrCodeInvalidLayout, "invalid placement %q: lines start at 1", orig)
	}
	return Line(n), nil
}

// ParsePosition parses "grid" (or "") and "absolute".
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid", "relative":
		return PositionGrid, nil
	case "absolute":
		return PositionAbsolute, nil
	default:
		return PositionGrid, errors.New(errors.ErrCodeInvalidLayout, "invalid position %q (want grid or absolute)", s)
	}
}
