package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// Visited is the label written for every vertex the search discovers.
const Visited = 1

// unvisited marks an empty predecessor slot.
const unvisited = -1

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph      core.Graph
	treatments core.VertexLabelling[int]
	opts       BFSOptions
	ctx        context.Context
	queue      []queueItem
	pred       []int
}

// Solve returns a shortest path from source to destination, both
// included, by breadth-first search over g.
//
// The source and every discovered vertex are labelled Visited in
// treatments, in discovery order; observers of the labelling see the
// search unfold. Neighbors are discovered in the order g returns them.
//
// Returns ErrGraphNil, ErrLabellingNil or ErrVertexNotFound for invalid
// input, ErrNeighbors for graph failures and ErrUnreachable when the
// destination lies in another component. A labelling error (such as an
// observer cancellation) or a done context stops the search; in the latter
// case the error matches core.ErrCanceled and the context error.
//
// Complexity: O(V + E) time, O(V) memory.
func Solve(g core.Graph, source, destination int, treatments core.VertexLabelling[int], opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if treatments == nil {
		return nil, ErrLabellingNil
	}
	n := g.NbVertices()
	for _, v := range [...]int{source, destination} {
		if !g.VertexExists(v) {
			return nil, fmt.Errorf("%w: %w", ErrVertexNotFound, core.OutOfRange(v, n))
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		graph:      g,
		treatments: treatments,
		opts:       o,
		ctx:        o.Ctx,
		queue:      make([]queueItem, 0, n),
		pred:       make([]int, n),
	}
	for i := range w.pred {
		w.pred[i] = unvisited
	}

	// The source is its own predecessor: visited, with nothing before it.
	if err := w.enqueue(source, 0, source); err != nil {
		return nil, err
	}
	if err := w.loop(destination); err != nil {
		return nil, err
	}

	return w.pathTo(source, destination), nil
}

// enqueue labels v, records its predecessor and adds it to the queue.
func (w *walker) enqueue(v, depth, from int) error {
	if err := w.treatments.SetLabel(v, Visited); err != nil {
		return fmt.Errorf("bfs: label %d: %w", v, err)
	}
	w.pred[v] = from
	w.opts.OnEnqueue(v, depth)
	w.queue = append(w.queue, queueItem{v: v, depth: depth})

	return nil
}

// loop expands vertices in FIFO order until destination is dequeued.
func (w *walker) loop(destination int) error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return core.Canceled(w.ctx.Err())
		default:
		}

		item := w.dequeue()
		if item.v == destination {
			return nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: %d", ErrUnreachable, destination)
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// enqueueNeighbors discovers every unvisited neighbor of item.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %w", ErrNeighbors, item.v, err)
	}
	for _, nb := range neighbors {
		if !w.graph.VertexExists(nb) {
			return fmt.Errorf("%w: neighbor %d of %d: %w", ErrNeighbors, nb, item.v, core.OutOfRange(nb, len(w.pred)))
		}
		if w.pred[nb] != unvisited {
			continue
		}
		if err = w.enqueue(nb, item.depth+1, item.v); err != nil {
			return err
		}
	}

	return nil
}

// pathTo walks predecessors back from destination and reverses them.
func (w *walker) pathTo(source, destination int) []int {
	path := []int{destination}
	for cur := destination; cur != source; {
		cur = w.pred[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Solver is the maze.Solver backed by Solve.
type Solver struct {
	opts []Option
}

var _ maze.Solver = (*Solver)(nil)

// NewSolver returns a Solver applying opts on every run.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: opts}
}

// Solve runs Solve under ctx.
func (s *Solver) Solve(ctx context.Context, g core.Graph, source, destination int, treatments core.VertexLabelling[int]) ([]int, error) {
	opts := append(append([]Option(nil), s.opts...), WithContext(ctx))

	return Solve(g, source, destination, treatments, opts...)
}
