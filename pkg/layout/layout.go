package layout

import "fmt"

// NodeID identifies a node in a Tree.
type NodeID int

// InvalidNode is never returned for a real node.
const InvalidNode NodeID = -1

func (id NodeID) String() string { return fmt.Sprintf("node#%d", int(id)) }

// Size is an available or resolved width and height in pixels.
type Size struct {
	Width, Height int
}

// Geometry is the solved box of a node. X and Y are relative to the parent.
type Geometry struct {
	X, Y          int
	Width, Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// Solver computes geometry for a node tree.
//
// Geometry and Children are only meaningful for nodes reached by the most
// recent successful Solve.
type Solver interface {
	Solve(root NodeID, available Size) error
	Geometry(id NodeID) (Geometry, error)
	Children(id NodeID) ([]NodeID, error)
}
