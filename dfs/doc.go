// Package dfs implements depth-first search over core.Graph and the
// structural checks built on it.
//
// Key features:
//   - DFS(g, start, opts...): iterative traversal from a root, or the full
//     forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - FindCycle(g): one cycle of an undirected graph, or nil for a forest
//   - CheckSpanningTree(g): verifies a carved maze is a spanning tree
//
// Complexity:
//
//   - Time:   O(V + E) for every entry point, plus the cost of hooks and filters.
//   - Memory: O(V) for the explicit stack and per-vertex slices.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is out of range.
//   - ErrNotSpanning            from CheckSpanningTree, with detail.
//   - core.ErrCanceled          if ctx is done (also matches the context error).
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
