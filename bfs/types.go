package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrLabellingNil is returned if no treatment labelling is passed.
	ErrLabellingNil = errors.New("bfs: labelling is nil")

	// ErrVertexNotFound is returned when source or destination is out of
	// range. It always wraps core.ErrVertexOutOfRange as well.
	ErrVertexNotFound = errors.New("bfs: vertex not found")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrUnreachable is returned when the search exhausts the component of
	// the source without meeting the destination.
	ErrUnreachable = errors.New("bfs: destination unreachable")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per
	// dequeued vertex.
	Ctx context.Context

	// OnEnqueue is called when a vertex is discovered and enqueued.
	// Receives the vertex and its depth from the source.
	OnEnqueue func(v int, depth int)

	// OnDequeue is called immediately before a vertex is expanded.
	OnDequeue func(v int, depth int)
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - no-op hooks (OnEnqueue, OnDequeue)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v int, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
