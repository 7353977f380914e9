// Package core is the contract layer of labyrinth.
//
// What:
//
//   - Graph: vertices are the integers [0, NbVertices()); Neighbors(v) lists
//     the vertices currently connected to v. Traversal algorithms (bfs, dfs)
//     depend on nothing else.
//   - Grid2D: a Graph laid out on a Width()×Height() grid where only the four
//     orthogonal neighbors may be connected. Exposes wall mutation
//     (AddEdge removes a wall, RemoveEdge builds one) and Edges().
//   - Edge: an unordered pair with Equal, Hash and a canonical Key.
//   - VertexLabelling[T]: per-vertex values owned by the caller.
//   - GraphObserver: synchronous notifications for edge and label changes.
//
// Why:
//
//   - Algorithms report progress without depending on any presentation
//     code: a renderer, a metrics collector or a pacing animation are all
//     just observers.
//   - Observers return errors, which is the single point where a caller
//     may stop an algorithm early. Such stops are reported as errors
//     matching ErrCanceled, distinct from real failures.
//
// Ownership:
//
//	Labellings are allocated by the caller, sized to the graph, and outlive
//	a single algorithm run. The algorithms only read and write through the
//	interface.
package core
