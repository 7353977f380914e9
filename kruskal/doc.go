// Package kruskal generates mazes with a randomized Kruskal algorithm.
//
// Classic Kruskal sorts edges by weight; here the candidate passages of a
// fully bound grid are shuffled instead, so the order, not a weight
// function, decides which spanning tree gets carved. A union-find forest
// rejects every passage that would close a cycle.
//
// Options:
//
//	kruskal.WithContext(ctx)      // cancel between iterations
//	kruskal.WithSeed(42)          // reproducible maze (0 ⇒ fixed default seed)
//	kruskal.WithRand(r)           // caller-owned *rand.Rand
//	kruskal.WithShuffle(fn)       // pin the edge order
//
// Progress is reported through the builder: both endpoints of a carved
// passage are labelled maze.Processed, then the wall is removed. Any
// error from those calls, such as an observer cancellation, stops the run.
//
// Complexity: O(E·α(V)) time after the O(E) shuffle, O(V + E) memory.
package kruskal
