// Package gridgraph implements core.Grid2D over a packed boolean array.
//
// Every operation runs in constant time except Edges, EdgeCount, BindAll
// and ConnectedComponents, which are linear in the number of cells.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

var _ core.Grid2D = (*GridGraph)(nil)

// New returns an edgeless width×height grid.
// Returns ErrInvalidDimensions if width or height is below 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*GridGraph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	cells := width * height
	if cells/height != width {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}

	return &GridGraph{
		width:  width,
		height: height,
		edges:  make([]bool, nbDirections*cells),
	}, nil
}

// NewSquare returns an edgeless side×side grid.
func NewSquare(side int) (*GridGraph, error) {
	return New(side, side)
}

// NbVertices returns Width()*Height().
func (g *GridGraph) NbVertices() int {
	return g.width * g.height
}

// Width returns the number of columns.
func (g *GridGraph) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *GridGraph) Height() int {
	return g.height
}

// VertexExists reports whether v lies in [0, NbVertices()).
func (g *GridGraph) VertexExists(v int) bool {
	return v >= 0 && v < g.NbVertices()
}

// Coordinate converts a vertex id to its (row, col) position.
// Complexity: O(1).
func (g *GridGraph) Coordinate(v int) (row, col int) {
	return v / g.width, v % g.width
}

// Index maps (row, col) to a row-major vertex id.
// Complexity: O(1).
func (g *GridGraph) Index(row, col int) int {
	return row*g.width + col
}

// Neighbors returns the vertices joined to v, in Up, Left, Right, Down order.
// Complexity: O(1).
func (g *GridGraph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}
	out := make([]int, 0, nbDirections)
	for _, d := range directions {
		if g.edges[d.slot(v)] {
			out = append(out, v+d.Offset(g.width))
		}
	}

	return out, nil
}

// Edges returns every edge once, scanning the Up and Left slots of each
// vertex. Each returned edge has U < V and the slice is ordered by V.
// Complexity: O(W×H).
func (g *GridGraph) Edges() []core.Edge {
	var out []core.Edge
	n := g.NbVertices()
	for v := 0; v < n; v++ {
		if v >= g.width && g.edges[Up.slot(v)] {
			out = append(out, core.Edge{U: v - g.width, V: v})
		}
		if v%g.width > 0 && g.edges[Left.slot(v)] {
			out = append(out, core.Edge{U: v - 1, V: v})
		}
	}

	return out
}

// EdgeCount returns len(Edges()) without allocating.
func (g *GridGraph) EdgeCount() int {
	count := 0
	n := g.NbVertices()
	for v := 0; v < n; v++ {
		if g.edges[Up.slot(v)] {
			count++
		}
		if g.edges[Left.slot(v)] {
			count++
		}
	}

	return count
}

// AreAdjacent reports whether u and v are grid neighbors joined by an edge.
// Grid neighbors separated by a wall are not adjacent.
func (g *GridGraph) AreAdjacent(u, v int) (bool, error) {
	if err := g.check(u); err != nil {
		return false, err
	}
	if err := g.check(v); err != nil {
		return false, err
	}

	return g.adjacent(u, v), nil
}

// AddEdge joins two grid neighbors, i.e. removes the wall between them.
// Returns ErrNotGridAdjacent or ErrEdgeExists without mutating the grid.
func (g *GridGraph) AddEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	if !AdjacentInGrid(g.width, u, v) {
		return fmt.Errorf("%w: {%d,%d}", ErrNotGridAdjacent, u, v)
	}
	d, _ := DirectionFromOffset(g.width, v-u)
	if g.edges[d.slot(u)] {
		return fmt.Errorf("%w: {%d,%d}", ErrEdgeExists, u, v)
	}
	g.setEdge(u, d, true)

	return nil
}

// RemoveEdge separates two connected grid neighbors, i.e. builds a wall.
// Returns ErrEdgeNotFound without mutating the grid if no edge joins them.
func (g *GridGraph) RemoveEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	if !g.adjacent(u, v) {
		return fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, u, v)
	}
	d, _ := DirectionFromOffset(g.width, v-u)
	g.setEdge(u, d, false)

	return nil
}

// Reset removes every edge.
func (g *GridGraph) Reset() {
	clear(g.edges)
}

// BindAll joins every vertex of g to all of its grid neighbors. Each
// adjacency is written once, directly through its Up or Left slot pair,
// so BindAll also works on a partially bound grid.
// Complexity: O(W×H).
func BindAll(g *GridGraph) {
	n := g.NbVertices()
	for v := 0; v < n; v++ {
		if v >= g.width {
			g.setEdge(v, Up, true)
		}
		if v%g.width > 0 {
			g.setEdge(v, Left, true)
		}
	}
}

// NewBound returns a width×height grid with every adjacency bound.
func NewBound(width, height int) (*GridGraph, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	BindAll(g)

	return g, nil
}

// AdjacentInGrid reports whether u and v are distinct orthogonal neighbors
// of a grid with the given width: vertically |u-v| == width, or
// horizontally |u-v| == 1 within the same row. Bounds are not checked.
func AdjacentInGrid(width, u, v int) bool {
	if u == v || width < 1 {
		return false
	}
	d := u - v
	if d < 0 {
		d = -d
	}

	return d == width || (d == 1 && u/width == v/width)
}

// DirectionFromOffset maps the id difference v-u of two grid neighbors to
// the direction leading from u to v. Vertical offsets are tested first, so
// on a one-column grid ±1 maps to Up/Down. The mapping is positional only:
// callers must have checked AdjacentInGrid, because offset ±1 across a row
// boundary still maps to Left/Right.
func DirectionFromOffset(width, offset int) (Direction, error) {
	switch offset {
	case -width:
		return Up, nil
	case width:
		return Down, nil
	case -1:
		return Left, nil
	case 1:
		return Right, nil
	}

	return 0, fmt.Errorf("%w: offset %d with width %d", ErrNotGridAdjacent, offset, width)
}

// adjacent assumes u and v are valid vertices.
func (g *GridGraph) adjacent(u, v int) bool {
	if !AdjacentInGrid(g.width, u, v) {
		return false
	}
	d, _ := DirectionFromOffset(g.width, v-u)

	return g.edges[d.slot(u)]
}

// setEdge writes both slots of the edge leaving u in direction d, without checks.
func (g *GridGraph) setEdge(u int, d Direction, value bool) {
	g.edges[d.slot(u)] = value
	g.edges[d.Opposite().slot(u+d.Offset(g.width))] = value
}

func (g *GridGraph) check(v int) error {
	if !g.VertexExists(v) {
		return core.OutOfRange(v, g.NbVertices())
	}

	return nil
}
