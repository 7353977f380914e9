package core

import "fmt"

// Edge is an unordered pair {U, V} of vertices. Edge values are transient:
// they are produced on demand and never tied to a graph's storage.
//
// Go's == compares fields in order, so use Equal (or compare Key values)
// when the orientation of the pair is unknown.
type Edge struct {
	U int
	V int
}

// NewEdge returns the edge {u, v}.
func NewEdge(u, v int) Edge {
	return Edge{U: u, V: v}
}

// Equal reports whether e and o denote the same unordered pair.
func (e Edge) Equal(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Hash combines both endpoints commutatively, so Equal edges hash alike.
// Collisions are frequent and harmless.
func (e Edge) Hash() int {
	return e.U + e.V
}

// Key returns the canonical orientation (smaller endpoint first).
// Two edges are Equal iff their keys are ==, which makes Key usable as a map key.
func (e Edge) Key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// Other returns the endpoint of e opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v int) (int, bool) {
	switch v {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// String formats the edge as {u,v}.
func (e Edge) String() string {
	return fmt.Sprintf("{%d,%d}", e.U, e.V)
}
