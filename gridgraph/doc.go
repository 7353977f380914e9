// Package gridgraph provides GridGraph, the core.Grid2D implementation used
// both as the candidate edge pool and as the carved maze.
//
// What:
//
//   - A Width×Height grid of vertices 0 … W·H-1, row-major.
//   - Only orthogonal neighbors may be joined. An edge is an opening; its
//     absence between two neighbors is a wall.
//   - Storage is one []bool of length 4·W·H: slot 4·v+d records the edge
//     leaving v in Direction d (Up, Left, Right, Down). Both slots of an
//     edge are written together so edge existence stays symmetric.
//
// Why:
//
//   - Constant-time Neighbors/AreAdjacent/AddEdge/RemoveEdge with no
//     per-vertex allocation and good cache locality.
//   - Edges() reports each edge once by scanning only Up and Left slots.
//
// Complexity:
//
//   - Neighbors, AreAdjacent, AddEdge, RemoveEdge: O(1).
//   - Edges, EdgeCount, BindAll, ConnectedComponents: O(W×H).
//   - Memory: 4·W·H booleans.
//
// Errors:
//
//   - core.ErrVertexOutOfRange: a vertex outside [0, W·H).
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrNotGridAdjacent: AddEdge between cells that are not neighbors.
//   - ErrEdgeExists: AddEdge on an existing edge.
//   - ErrEdgeNotFound: RemoveEdge on a missing edge.
//
// A failed mutation leaves the grid unchanged.
package gridgraph
