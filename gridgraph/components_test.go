// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// TestConnectedComponents_Fresh: an edgeless grid has one component per cell.
func TestConnectedComponents_Fresh(t *testing.T) {
	g, err := New(3, 2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	comps := g.ConnectedComponents()
	if len(comps) != 6 {
		t.Fatalf("got %d components; want 6", len(comps))
	}
	for i, c := range comps {
		if len(c) != 1 || c[0] != i {
			t.Errorf("component %d = %v; want [%d]", i, c, i)
		}
	}
}

// TestConnectedComponents_Corridors builds two corridors on a 3×2 grid:
//
//	0─1 2
//	    │
//	3─4─5
//
// Expect {0,1} and {2,5,4,3}.
func TestConnectedComponents_Corridors(t *testing.T) {
	g, _ := New(3, 2)
	for _, p := range [][2]int{{0, 1}, {2, 5}, {5, 4}, {4, 3}} {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", p[0], p[1], err)
		}
	}
	got := g.ConnectedComponents()
	want := [][]int{{0, 1}, {2, 5, 4, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("components = %v; want %v", got, want)
	}
}

// TestSlots_SymmetricAfterMutations inspects the packed array directly:
// every slot must mirror the opposite slot of its neighbor.
func TestSlots_SymmetricAfterMutations(t *testing.T) {
	g, _ := NewBound(4, 3)
	for _, p := range [][2]int{{0, 1}, {5, 9}, {6, 7}, {11, 10}} {
		if err := g.RemoveEdge(p[0], p[1]); err != nil {
			t.Fatalf("RemoveEdge(%d,%d): %v", p[0], p[1], err)
		}
	}
	if err := g.AddEdge(1, 0); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	assertSymmetric(t, g)
}

// TestRemoveEdge_FailedCallKeepsSlots compares raw slot state around a
// rejected removal.
func TestRemoveEdge_FailedCallKeepsSlots(t *testing.T) {
	g, _ := New(3, 1)
	if err := g.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	before := append([]bool(nil), g.edges...)
	count := g.EdgeCount()

	if err := g.RemoveEdge(1, 2); err == nil {
		t.Fatal("RemoveEdge(1,2) succeeded; want ErrEdgeNotFound")
	}
	if !reflect.DeepEqual(before, g.edges) {
		t.Errorf("slots changed: before %v after %v", before, g.edges)
	}
	if g.EdgeCount() != count {
		t.Errorf("EdgeCount = %d; want %d", g.EdgeCount(), count)
	}
}

// TestBorderSlotsNeverSet: binding must not set slots that point outside the grid.
func TestBorderSlotsNeverSet(t *testing.T) {
	g, _ := NewBound(3, 3)
	for v := 0; v < g.NbVertices(); v++ {
		row, col := g.Coordinate(v)
		if row == 0 && g.edges[Up.slot(v)] {
			t.Errorf("vertex %d has an Up slot on the top row", v)
		}
		if row == g.height-1 && g.edges[Down.slot(v)] {
			t.Errorf("vertex %d has a Down slot on the bottom row", v)
		}
		if col == 0 && g.edges[Left.slot(v)] {
			t.Errorf("vertex %d has a Left slot on the first column", v)
		}
		if col == g.width-1 && g.edges[Right.slot(v)] {
			t.Errorf("vertex %d has a Right slot on the last column", v)
		}
	}
	assertSymmetric(t, g)
}

func assertSymmetric(t *testing.T, g *GridGraph) {
	t.Helper()
	for v := 0; v < g.NbVertices(); v++ {
		for _, d := range directions {
			if !g.edges[d.slot(v)] {
				continue
			}
			u := v + d.Offset(g.width)
			if !AdjacentInGrid(g.width, u, v) {
				t.Errorf("slot %v of %d set towards non-neighbor %d", d, v, u)
				continue
			}
			if !g.edges[d.Opposite().slot(u)] {
				t.Errorf("slot %v of %d set but %v of %d clear", d, v, d.Opposite(), u)
			}
		}
	}
}
