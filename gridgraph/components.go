package gridgraph

// ConnectedComponents groups the vertices of g by the edges that currently
// exist. Components are listed in order of their smallest vertex; each
// component lists its vertices in breadth-first order from that vertex.
//
// A fresh grid has NbVertices() singleton components; a generated maze
// has exactly one.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *GridGraph) ConnectedComponents() [][]int {
	total := g.NbVertices()
	seen := make([]bool, total)
	var comps [][]int

	for v0 := 0; v0 < total; v0++ {
		if seen[v0] {
			continue
		}
		queue := []int{v0}
		seen[v0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range directions {
				if !g.edges[d.slot(u)] {
					continue
				}
				w := u + d.Offset(g.width)
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
