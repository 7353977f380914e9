package kruskal

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/labyrinth/core"
)

// ErrNilBuilder indicates Generate was called without a MazeBuilder.
var ErrNilBuilder = errors.New("kruskal: builder is nil")

// Options configures one generation run.
// Use DefaultOptions() to get the default setup.
//
// Fields:
//
//	Ctx     context.Context    - checked before each candidate edge.
//	Seed    int64              - seed of the shuffle; 0 selects a fixed default seed.
//	Rand    *rand.Rand         - if non-nil, used instead of Seed.
//	Shuffle func([]core.Edge)  - if non-nil, replaces the random shuffle entirely.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Seed of the shuffle RNG, ignored when Rand or Shuffle is set.
	Seed int64

	// Rand is the shuffle source. Not safe to share across goroutines.
	Rand *rand.Rand

	// Shuffle orders the candidate edges in place. Tests use it to pin the
	// carving order.
	Shuffle func(edges []core.Edge)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a background context and a
// time-based seed, so consecutive runs produce different mazes.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Seed: time.Now().UnixNano(),
	}
}

// WithContext sets the context checked between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSeed makes the run reproducible. Seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand shuffles with r instead of a seeded source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// WithShuffle replaces the random shuffle with fn.
func WithShuffle(fn func(edges []core.Edge)) Option {
	return func(o *Options) {
		o.Shuffle = fn
	}
}
