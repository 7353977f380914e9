package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/gridgraph"
)

// BenchmarkBindAll measures binding a 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkBindAll(b *testing.B) {
	const n = 1000
	g, err := gridgraph.NewSquare(n)
	if err != nil {
		b.Fatalf("setup NewSquare failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		gridgraph.BindAll(g)
	}
}

// BenchmarkEdges measures collecting all edges of a bound 1000×1000 grid.
// Complexity: O(W×H)
func BenchmarkEdges(b *testing.B) {
	const n = 1000
	g, err := gridgraph.NewBound(n, n)
	if err != nil {
		b.Fatalf("setup NewBound failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkNeighbors measures neighbor lookup of an interior vertex.
// Complexity: O(1)
func BenchmarkNeighbors(b *testing.B) {
	g, err := gridgraph.NewBound(64, 64)
	if err != nil {
		b.Fatalf("setup NewBound failed: %v", err)
	}
	v := g.Index(32, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(v)
	}
}
