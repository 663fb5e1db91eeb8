package layout

import (
	"math"

	"github.com/K-JBoon/pixelboard/pkg/errors"
)

type node struct {
	style    Style
	name     string
	parent   NodeID
	children []NodeID

	geom   Geometry
	solved bool
}

// Tree is an arena of styled nodes and a grid solver over them.
// The zero value is an empty tree ready for use.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree { return &Tree{} }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// NewLeaf adds a node without children.
func (t *Tree) NewLeaf(style Style) NodeID {
	t.nodes = append(t.nodes, node{style: style, parent: InvalidNode})
	return NodeID(len(t.nodes) - 1)
}

// NewWithChildren adds a node and adopts children in order. A child that
// already has a parent is rejected.
func (t *Tree) NewWithChildren(style Style, children ...NodeID) (NodeID, error) {
	for _, c := range children {
		if err := t.check(c); err != nil {
			return InvalidNode, err
		}
	}
	id := t.NewLeaf(style)
	for _, c := range children {
		if err := t.AddChild(id, c); err != nil {
			return InvalidNode, err
		}
	}
	return id, nil
}

// AddChild appends child to parent's children.
func (t *Tree) AddChild(parent, child NodeID) error {
	if err := t.check(parent); err != nil {
		return err
	}
	if err := t.check(child); err != nil {
		return err
	}
	if p := t.nodes[child].parent; p != InvalidNode {
		return errors.New(errors.ErrCodeInvalidLayout, "%s already has parent %s", t.label(child), t.label(p))
	}
	for a := parent; a != InvalidNode; a = t.nodes[a].parent {
		if a == child {
			return errors.New(errors.ErrCodeInvalidLayout, "adding %s under %s would create a cycle", t.label(child), t.label(parent))
		}
	}
	t.nodes[child].parent = parent
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	return nil
}

// Parent returns the parent of id, or InvalidNode for a root.
func (t *Tree) Parent(id NodeID) (NodeID, error) {
	if err := t.check(id); err != nil {
		return InvalidNode, err
	}
	return t.nodes[id].parent, nil
}

// Style returns the style of id.
func (t *Tree) Style(id NodeID) (Style, error) {
	if err := t.check(id); err != nil {
		return Style{}, err
	}
	return t.nodes[id].style, nil
}

// SetStyle replaces the style of id. It takes effect on the next Solve.
func (t *Tree) SetStyle(id NodeID, style Style) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.nodes[id].style = style
	return nil
}

// SetName attaches a human-readable label used in errors and inspection.
func (t *Tree) SetName(id NodeID, name string) error {
	if err := t.check(id); err != nil {
		return err
	}
	t.nodes[id].name = name
	return nil
}

// Name returns the label of id, or "" if it has none or does not exist.
func (t *Tree) Name(id NodeID) string {
	if t.check(id) != nil {
		return ""
	}
	return t.nodes[id].name
}

// Children implements Solver. The returned slice must not be modified.
func (t *Tree) Children(id NodeID) ([]NodeID, error) {
	if err := t.check(id); err != nil {
		return nil, err
	}
	return t.nodes[id].children, nil
}

// Geometry implements Solver.
func (t *Tree) Geometry(id NodeID) (Geometry, error) {
	if err := t.check(id); err != nil {
		return Geometry{}, err
	}
	if !t.nodes[id].solved {
		return Geometry{}, errors.New(errors.ErrCodeInvalidLayout, "%s has not been solved", t.label(id))
	}
	return t.nodes[id].geom, nil
}

// Solve implements Solver. The root is sized from its style against the
// available size (auto takes all of it) and placed at the origin.
func (t *Tree) Solve(root NodeID, available Size) error {
	if err := t.check(root); err != nil {
		return err
	}
	if available.Width < 0 || available.Height < 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "negative available size %dx%d", available.Width, available.Height)
	}
	for i := range t.nodes {
		t.nodes[i].solved = false
	}

	s := t.nodes[root].style
	aw, ah := float64(available.Width), float64(available.Height)
	if err := validateDimension(s.Width, "width"); err != nil {
		return t.wrap(root, err)
	}
	if err := validateDimension(s.Height, "height"); err != nil {
		return t.wrap(root, err)
	}
	w := s.Width.resolve(aw, aw)
	h := s.Height.resolve(ah, ah)

	t.nodes[root].geom = Geometry{Width: int(math.Round(w)), Height: int(math.Round(h))}
	t.nodes[root].solved = true
	return t.layout(root, box{w: w, h: h})
}

func (t *Tree) check(id NodeID) error {
	if id < 0 || int(id) >= len(t.nodes) {
		return errors.New(errors.ErrCodeNodeNotFound, "%s not found", id)
	}
	return nil
}

func (t *Tree) label(id NodeID) string {
	if name := t.Name(id); name != "" {
		return name
	}
	return id.String()
}

func (t *Tree) wrap(id NodeID, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidLayout, err, "layout %s", t.label(id))
}
