// File: core/types.go
// Capability interfaces and sentinel errors.
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex id lies outside [0, NbVertices()).
//	ErrCanceled         - an observer or context asked the running algorithm to stop.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, NbVertices()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrCanceled indicates a caller-requested early termination. It is not
	// a failure: state committed before the cancellation remains valid.
	ErrCanceled = errors.New("core: operation canceled")
)

// Graph is the traversal capability: a fixed vertex set [0, NbVertices())
// and the neighbors currently connected to each vertex.
//
// Neighbors must fail with an error wrapping ErrVertexOutOfRange when
// VertexExists(v) is false.
type Graph interface {
	// NbVertices returns the number of vertices.
	NbVertices() int

	// VertexExists reports whether v lies in [0, NbVertices()).
	VertexExists(v int) bool

	// Neighbors returns, in a deterministic order, the vertices connected to v.
	Neighbors(v int) ([]int, error)
}

// Grid2D extends Graph with grid coordinates and wall mutation.
// Vertex v sits at row v / Width() and column v % Width().
type Grid2D interface {
	Graph

	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// AreAdjacent reports whether u and v are grid neighbors joined by an edge.
	AreAdjacent(u, v int) (bool, error)

	// AddEdge removes the wall between two grid neighbors.
	AddEdge(u, v int) error

	// RemoveEdge builds the wall between two connected grid neighbors.
	RemoveEdge(u, v int) error

	// Edges returns every existing edge exactly once.
	Edges() []Edge
}

// OutOfRange builds the error returned for vertex v in a graph of n vertices.
func OutOfRange(v, n int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, n)
}

// Canceled wraps cause (usually a context error) so that it matches both
// ErrCanceled and cause under errors.Is.
func Canceled(cause error) error {
	if cause == nil {
		return ErrCanceled
	}

	return fmt.Errorf("%w: %w", ErrCanceled, cause)
}
