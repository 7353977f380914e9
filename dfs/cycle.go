package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// FindCycle returns one simple cycle of the undirected graph g, closed as
// [v0, v1, ..., v0], or nil if g is a forest. Components are searched in
// increasing vertex order; within a component the cycle reported is the
// first back edge met by the DFS.
//
// g must be undirected: u in Neighbors(v) iff v in Neighbors(u), with no
// parallel edges, which holds for every core.Grid2D.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NbVertices()
	state := make([]int, n) // White / Gray / Black
	parent := make([]int, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		parent[root] = -1
		nbs, err := g.Neighbors(root)
		if err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: Neighbors(%d): %w", root, err)
		}
		state[root] = Gray
		stack = append(stack[:0], frame{v: root, nbs: nbs})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.nbs) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			u := top.nbs[top.next]
			top.next++

			switch state[u] {
			case White:
				nbs, err = g.Neighbors(u)
				if err != nil {
					return nil, fmt.Errorf("dfs: FindCycle: Neighbors(%d): %w", u, err)
				}
				parent[u] = top.v
				state[u] = Gray
				stack = append(stack, frame{v: u, nbs: nbs})
			case Gray:
				if u == parent[top.v] {
					continue
				}

				return closeCycle(parent, top.v, u), nil
			}
		}
	}

	return nil, nil
}

// closeCycle walks parent links from tail up to head and returns the
// closed cycle head → ... → tail → head.
func closeCycle(parent []int, tail, head int) []int {
	var rev []int
	for v := tail; v != head; v = parent[v] {
		rev = append(rev, v)
	}
	rev = append(rev, head)

	cycle := make([]int, 0, len(rev)+1)
	for i := len(rev) - 1; i >= 0; i-- {
		cycle = append(cycle, rev[i])
	}

	return append(cycle, head)
}
