// Package bfs solves mazes by breadth-first search over any core.Graph.
//
// What
//
//   - Solve(g, source, destination, treatments, opts...) returns the vertex
//     sequence source → destination, both included.
//   - Every discovered vertex (the source first) is labelled bfs.Visited in
//     the caller's treatments labelling, so an observed labelling such as
//     maze.SolverMonitor reports the search as it spreads.
//   - Solver adapts Solve to maze.Solver.
//
// Why
//
//   - On an unweighted graph BFS expands vertices in non-decreasing
//     distance, so the first time the destination is dequeued its
//     predecessor chain is a shortest path. In a perfect maze (a spanning
//     tree) that path is also the only one.
//
// Determinism
//
//	Neighbors are discovered in the order g.Neighbors returns them
//	(Up, Left, Right, Down for a gridgraph), so both the path and the
//	labelling sequence are reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the predecessor table.
//
// Usage
//
//	mon := maze.NewSolverMonitor(g.NbVertices(), painter)
//	path, err := bfs.Solve(g, 0, g.NbVertices()-1, mon,
//	    bfs.WithContext(ctx),
//	    bfs.WithOnDequeue(func(v, depth int) { /* ... */ }),
//	)
//	switch {
//	case errors.Is(err, core.ErrCanceled):
//	    // stopped by the caller
//	case errors.Is(err, bfs.ErrUnreachable):
//	    // destination in another component
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithOnEnqueue(fn):  hook when a vertex is discovered.
//   - WithOnDequeue(fn):  hook immediately before expanding a vertex.
//
// Errors
//
//   - ErrGraphNil        if the graph is nil.
//   - ErrLabellingNil    if treatments is nil.
//   - ErrVertexNotFound  if source or destination is out of range.
//   - ErrNeighbors       if g.Neighbors fails or returns an invalid vertex.
//   - ErrUnreachable     if the destination is not connected to the source.
//   - core.ErrCanceled   if the context is done.
//   - Wrapped labelling errors, e.g. an observer cancellation.
package bfs
