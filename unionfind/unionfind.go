// Package unionfind provides a fixed-size disjoint-set forest over the
// integers [0, n), with union by rank and path halving.
//
// Complexity: amortized O(α(n)) per Find or Union. Memory: O(n).
package unionfind

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ErrNegativeSize indicates New was called with n < 0.
var ErrNegativeSize = errors.New("unionfind: size must not be negative")

// UnionFind is a disjoint-set forest. Each element starts in its own set
// at rank 0. Ranks only grow, and only for elements that remain roots.
//
// A UnionFind is not safe for concurrent use.
type UnionFind struct {
	parent     []int
	rank       []int
	components int
}

// New returns n singleton sets {0} … {n-1}.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFind{
		parent:     parent,
		rank:       make([]int, n),
		components: n,
	}, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Components returns the number of disjoint sets.
func (uf *UnionFind) Components() int {
	return uf.components
}

// Find returns the root of v's set. While walking up it points every
// visited node to its grandparent (path halving).
func (uf *UnionFind) Find(v int) (int, error) {
	if v < 0 || v >= len(uf.parent) {
		return 0, core.OutOfRange(v, len(uf.parent))
	}
	for v != uf.parent[v] {
		uf.parent[v] = uf.parent[uf.parent[v]]
		v = uf.parent[v]
	}

	return v, nil
}

// Union merges the sets of u and v. It returns false, without mutation,
// if they already share a root. Otherwise the lower-rank root is attached
// under the higher-rank one; on equal ranks u's root goes under v's root
// and v's root rank is incremented.
func (uf *UnionFind) Union(u, v int) (bool, error) {
	x, err := uf.Find(u)
	if err != nil {
		return false, err
	}
	y, err := uf.Find(v)
	if err != nil {
		return false, err
	}
	if x == y {
		return false, nil
	}

	if uf.rank[x] > uf.rank[y] {
		uf.parent[y] = x
	} else {
		uf.parent[x] = y
		if uf.rank[x] == uf.rank[y] {
			uf.rank[y]++
		}
	}
	uf.components--

	return true, nil
}

// Connected reports whether u and v belong to the same set.
func (uf *UnionFind) Connected(u, v int) (bool, error) {
	x, err := uf.Find(u)
	if err != nil {
		return false, err
	}
	y, err := uf.Find(v)
	if err != nil {
		return false, err
	}

	return x == y, nil
}
