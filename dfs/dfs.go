package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	v     int
	depth int
	nbs   []int
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.Graph
	opts  DFSOptions
	res   *DFSResult
	stack []frame
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it covers every component in increasing vertex order and start is only
// checked when valid; otherwise only start's component is explored.
//
// The walk is iterative, so maze-sized graphs with corridors of millions
// of cells do not grow the goroutine stack. Neighbors are explored in the
// order g returns them.
//
// On error the partial result is returned with Order cleared. A canceled
// context yields an error matching core.ErrCanceled and the context error.
func DFS(g core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.NbVertices()
	if !dopts.FullTraversal && !g.VertexExists(start) {
		return nil, fmt.Errorf("%w: %w", ErrStartVertexNotFound, core.OutOfRange(start, n))
	}

	res := &DFSResult{
		Order:    make([]int, 0, n),
		Preorder: make([]int, 0, n),
		Depth:    make([]int, n),
		Parent:   make([]int, n),
		Visited:  make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &dfsWalker{graph: g, opts: dopts, res: res}
	if !dopts.FullTraversal {
		if err := w.walk(start); err != nil {
			res.Order = nil
			return res, err
		}

		return res, nil
	}

	for v := 0; v < n; v++ {
		if res.Visited[v] {
			continue
		}
		if err := w.walk(v); err != nil {
			res.Order = nil
			return res, err
		}
	}

	return res, nil
}

// walk explores the tree rooted at root.
func (w *dfsWalker) walk(root int) error {
	if err := w.discover(root, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next < len(top.nbs) {
			u := top.nbs[top.next]
			top.next++
			if w.res.Visited[u] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.opts.MaxDepth >= 0 && top.depth+1 > w.opts.MaxDepth {
				continue
			}
			w.res.Parent[u] = top.v
			// discover may grow the stack; top is not used afterwards.
			if err := w.discover(u, top.depth+1); err != nil {
				return err
			}
			continue
		}

		v := top.v
		w.stack = w.stack[:len(w.stack)-1]
		if w.opts.OnExit != nil {
			if err := w.opts.OnExit(v); err != nil {
				return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
			}
		}
		w.res.Order = append(w.res.Order, v)
	}

	return nil
}

// discover marks v visited, runs the pre-order hook and pushes v.
func (w *dfsWalker) discover(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return core.Canceled(w.opts.Ctx.Err())
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Preorder = append(w.res.Preorder, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, depth: depth, nbs: nbs})

	return nil
}
