package kruskal

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/core"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// shuffleEdges performs an in-place Fisher–Yates shuffle of edges.
// Every permutation is equally likely given a uniform rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleEdges(edges []core.Edge, rng *rand.Rand) {
	for i := len(edges) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		edges[i], edges[j] = edges[j], edges[i]
	}
}

// shuffler resolves the shuffle of a run from its options.
func (o Options) shuffler() func([]core.Edge) {
	if o.Shuffle != nil {
		return o.Shuffle
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return func(edges []core.Edge) { shuffleEdges(edges, rng) }
}
