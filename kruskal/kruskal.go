package kruskal

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/unionfind"
)

// Generate carves a random spanning tree of builder.Topology()
// into the maze through builder.RemoveWall.
//
// Steps:
//  1. Collect all edges of the topology.
//  2. Shuffle them (Fisher–Yates, or Options.Shuffle).
//  3. Create a UnionFind over all vertices.
//  4. For each edge {u,v}: if Union(u,v) merged two components, label u
//     and v Processed, then carve the passage.
//  5. Stop when the edges are consumed or n-1 passages were carved.
//
// If the topology is connected the maze ends up with exactly n-1 passages,
// connected and acyclic.
//
// Cancellation: the context is checked before every edge, and labelling
// or RemoveWall errors (which is how observers cancel) are returned
// wrapped. Passages carved before the stop remain and form a forest.
//
// Complexity: O(E·α(V)) time, O(V + E) memory.
func Generate(builder maze.MazeBuilder, opts ...Option) error {
	if builder == nil {
		return ErrNilBuilder
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	topology := builder.Topology()
	edges := topology.Edges()
	o.shuffler()(edges)

	n := topology.NbVertices()
	uf, err := unionfind.New(n)
	if err != nil {
		return fmt.Errorf("kruskal: %w", err)
	}
	labels := builder.Progressions()

	carved := 0
	for _, e := range edges {
		if carved == n-1 {
			break
		}
		if err = checkContext(o.Ctx); err != nil {
			return err
		}

		var merged bool
		if merged, err = uf.Union(e.U, e.V); err != nil {
			return fmt.Errorf("kruskal: union %v: %w", e, err)
		}
		if !merged {
			continue
		}
		if err = labels.SetLabel(e.U, maze.Processed); err != nil {
			return fmt.Errorf("kruskal: label %d: %w", e.U, err)
		}
		if err = labels.SetLabel(e.V, maze.Processed); err != nil {
			return fmt.Errorf("kruskal: label %d: %w", e.V, err)
		}
		if err = builder.RemoveWall(e.U, e.V); err != nil {
			return fmt.Errorf("kruskal: carve %v: %w", e, err)
		}
		carved++
	}

	return nil
}

// Generator is the maze.Generator backed by Generate.
type Generator struct {
	opts []Option
}

var _ maze.Generator = (*Generator)(nil)

// NewGenerator returns a Generator applying opts on every run.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{opts: opts}
}

// Generate runs Generate under ctx. from is ignored: Kruskal picks its
// passages in random order rather than growing from a cell.
func (g *Generator) Generate(ctx context.Context, builder maze.MazeBuilder, from int) error {
	opts := append(append([]Option(nil), g.opts...), WithContext(ctx))

	return Generate(builder, opts...)
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return core.Canceled(ctx.Err())
	default:
		return nil
	}
}
