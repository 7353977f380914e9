package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// CheckSpanningTree verifies that the passages of g form a spanning tree
// of its cells: exactly n-1 edges and every cell reachable from cell 0.
// Together the two conditions imply acyclicity. Violations are reported
// as errors wrapping ErrNotSpanning; an excess of edges includes one
// offending cycle in the message.
//
// Complexity: O(V) time and memory.
func CheckSpanningTree(g core.Grid2D) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NbVertices()
	if n == 0 {
		return nil
	}

	edges := len(g.Edges())
	switch {
	case edges > n-1:
		cycle, err := FindCycle(g)
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: %d edges for %d vertices, cycle %v", ErrNotSpanning, edges, n, cycle)
	case edges < n-1:
		return fmt.Errorf("%w: %d edges for %d vertices", ErrNotSpanning, edges, n)
	}

	res, err := DFS(g, 0)
	if err != nil {
		return err
	}
	if seen := res.VisitedCount(); seen != n {
		return fmt.Errorf("%w: %d of %d vertices unreachable from 0", ErrNotSpanning, n-seen, n)
	}

	return nil
}
