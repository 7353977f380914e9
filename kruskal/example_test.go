package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/kruskal"
	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleGenerate carves a reproducible 6×4 maze and verifies it.
func ExampleGenerate() {
	m, err := maze.NewObservableMaze(6, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = kruskal.Generate(m, kruskal.WithSeed(2024)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("passages:", len(m.Edges()))
	fmt.Println("spanning tree:", dfs.CheckSpanningTree(m) == nil)

	// Output:
	// passages: 23
	// spanning tree: true
}
