// Package labyrinth generates and solves grid mazes.
//
// 🚀 What is labyrinth?
//
//	A small, dependency-light toolkit built around one idea: a maze is a
//	graph on a rectangular grid, where every removed wall is an edge.
//		• Topology: GridGraph, a packed 4-slot-per-cell adjacency array
//		• Generation: randomized Kruskal over a UnionFind
//		• Solving: breadth-first search with per-vertex treatment labels
//		• Verification: DFS-based spanning-tree check
//		• Observation: labellings and mutation observers, so a painter,
//		  an animation or a metrics collector can follow every step
//
// ✨ Why labyrinth?
//
//   - Algorithms only see small capability interfaces (core.Graph,
//     core.Grid2D, core.VertexLabelling), never a concrete maze type.
//   - Every observer may return an error; core.ErrCanceled stops an
//     algorithm cleanly and leaves the committed state valid.
//   - Deterministic: a seed reproduces the maze, neighbor order fixes the
//     path.
//
// Packages:
//
//	core/        Edge, Graph/Grid2D capabilities, labellings, observers
//	gridgraph/   GridGraph: packed adjacency, directions, BindAll
//	unionfind/   disjoint sets with path halving and union by rank
//	maze/        progressions, ObservableMaze, SolverMonitor, Animation
//	kruskal/     randomized Kruskal generator
//	bfs/         breadth-first solver
//	dfs/         iterative DFS and CheckSpanningTree
//	render/      ASCII and PNG painters
//	metrics/     Prometheus collector as a graph observer
//	config/      koanf configuration for the CLI
//	logger/      slog + lumberjack for the CLI
//	cmd/mazegen  the command-line front end
//
// Quick ASCII example (3×2, s = start, e = exit):
//
//	+---+---+---+
//	| s     |   |
//	+---+   +   +
//	|         e |
//	+---+---+---+
//
//	go run ./cmd/mazegen -width 3 -height 2
package labyrinth
