package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a width or height below 1.
	ErrInvalidDimensions = errors.New("gridgraph: width and height must be at least 1")
	// ErrNotGridAdjacent indicates two vertices that are not orthogonal grid neighbors.
	ErrNotGridAdjacent = errors.New("gridgraph: vertices are not adjacent in the grid")
	// ErrEdgeExists indicates an AddEdge on an already connected pair.
	ErrEdgeExists = errors.New("gridgraph: edge already exists")
	// ErrEdgeNotFound indicates a RemoveEdge on a pair with no edge.
	ErrEdgeNotFound = errors.New("gridgraph: edge does not exist")
)
