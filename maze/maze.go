package maze

import (
	"context"

	"github.com/katalvlaran/labyrinth/core"
)

// MazeBuilder is what a generator sees of a maze under construction: the
// topology it draws candidate passages from, a per-cell progression
// labelling and a single mutation that carves a passage into the maze.
type MazeBuilder interface {
	// Topology returns the grid whose edges are the candidate passages.
	Topology() core.Grid2D

	// Progressions returns the generation state of every cell.
	Progressions() core.VertexLabelling[Progression]

	// RemoveWall joins u and v in the maze being built.
	RemoveWall(u, v int) error
}

// Generator carves a maze through a MazeBuilder. from is a hint for
// generators that grow from a starting cell; others ignore it.
type Generator interface {
	Generate(ctx context.Context, builder MazeBuilder, from int) error
}

// Solver finds a path from source to destination, both included.
// Each time it treats a vertex it updates that vertex in treatments.
type Solver interface {
	Solve(ctx context.Context, g core.Graph, source, destination int, treatments core.VertexLabelling[int]) ([]int, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, builder MazeBuilder, from int) error

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, builder MazeBuilder, from int) error {
	return f(ctx, builder, from)
}

// StartPoint returns the cell generation starts from: the top-left corner.
func StartPoint(g core.Graph) int {
	return 0
}

// DefaultDestination returns the cell a solver aims for when none was
// chosen: the bottom-right corner.
func DefaultDestination(g core.Graph) int {
	return g.NbVertices() - 1
}
