// Package maze is the session layer between the algorithms and whoever
// drives or displays them.
//
// What:
//
//   - Progression: the Pending/Processing/Processed state of a cell
//     during generation.
//   - MazeBuilder: the capability a generator carves through (candidate
//     topology, progression labelling, RemoveWall).
//   - Generator and Solver: the seams through which a caller picks an
//     implementation (kruskal.Generator, bfs.Solver).
//   - ObservableMaze: a bound topology plus the maze carved from it,
//     reporting every change to its subscribers.
//   - SolverMonitor: the treatment counters handed to a Solver.
//   - Animation: an observer that forwards events to a painter and paces
//     the algorithm, with pause, resume and context cancellation.
//
// Typical flow:
//
//	m, _ := maze.NewObservableMaze(20, 20)
//	anim := maze.NewAnimation(ctx, painter, maze.ConstantDelay(time.Millisecond))
//	sub := m.Subscribe(anim)
//	err := gen.Generate(ctx, m, maze.StartPoint(m))
//	m.Unsubscribe(sub)
//	if errors.Is(err, core.ErrCanceled) {
//		// partial maze, still a valid forest
//	}
//
//	mon := maze.NewSolverMonitor(m.NbVertices(), anim)
//	path, err := solver.Solve(ctx, m, 0, maze.DefaultDestination(m), mon)
//	_ = mon.MarkPath(path)
package maze
