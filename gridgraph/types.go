// Package gridgraph defines the Direction enumeration and the GridGraph
// storage for the gridgraph subpackage of github.com/katalvlaran/labyrinth.
package gridgraph

import "fmt"

// Direction names one of the four edge slots of a vertex.
// The numeric value is the slot offset inside a vertex's block of four.
type Direction int

const (
	// Up points to v - width.
	Up Direction = iota
	// Left points to v - 1.
	Left
	// Right points to v + 1.
	Right
	// Down points to v + width.
	Down
)

// nbDirections is the number of slots per vertex.
const nbDirections = 4

// directions lists every Direction in slot order; Neighbors reports in this order.
var directions = [nbDirections]Direction{Up, Left, Right, Down}

// Opposite returns the reverse direction (Up↔Down, Left↔Right).
// Complexity: O(1).
func (d Direction) Opposite() Direction {
	return nbDirections - 1 - d
}

// Offset returns the vertex id difference for one step in direction d.
// Complexity: O(1).
func (d Direction) Offset(width int) int {
	switch d {
	case Up:
		return -width
	case Left:
		return -1
	case Right:
		return 1
	default:
		return width
	}
}

// slot returns the index of v's edge slot in direction d.
func (d Direction) slot(v int) int {
	return nbDirections*v + int(d)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// GridGraph is a Width×Height grid whose only possible edges join
// orthogonal neighbors. Edge existence is stored as four booleans per
// vertex, at slots 4*v+Up … 4*v+Down.
//
// Invariant: for grid neighbors u and v = u + d.Offset(width),
// edges[d.slot(u)] == edges[d.Opposite().slot(v)].
//
// A GridGraph is not safe for concurrent mutation.
type GridGraph struct {
	width, height int
	edges         []bool
}
