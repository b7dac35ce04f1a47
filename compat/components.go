// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// walker encapsulates mutable breadth-first state for Components.
type walker struct {
	graph   *Graph
	queue   []uint32
	visited *roaring.Bitmap
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Isolated vertices (including pruned ones)
// form singleton components.
//
// Two vertices in different components can never share a clique, so the
// component count is a lower bound on the number of cliques a full cover
// needs.
//
// Complexity: O(n + E).
func (g *Graph) Components() [][]int {
	w := &walker{
		graph:   g,
		queue:   make([]uint32, 0, len(g.rows)),
		visited: roaring.New(),
	}

	var comps [][]int
	for v := range g.rows {
		if w.visited.Contains(uint32(v)) {
			continue
		}
		comps = append(comps, w.collect(uint32(v)))
	}

	return comps
}

// collect runs one BFS from root and returns the reached vertices ascending.
func (w *walker) collect(root uint32) []int {
	members := roaring.New()
	w.queue = append(w.queue[:0], root)
	w.visited.Add(root)
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		members.Add(cur)

		it := w.graph.rows[cur].Iterator()
		for it.HasNext() {
			nbr := it.Next()
			if w.visited.CheckedAdd(nbr) {
				w.queue = append(w.queue, nbr)
			}
		}
	}

	out := make([]int, 0, members.GetCardinality())
	for _, m := range members.ToArray() {
		out = append(out, int(m))
	}

	return out
}

// Stats is a read-only summary of a Graph, used by the graph subcommand and
// by run logs.
type Stats struct {
	Vertices   int
	Edges      int
	Components int
	MaxDegree  int
	Isolated   int
}

// Summary computes Stats in O(n + E).
func (g *Graph) Summary() Stats {
	s := Stats{
		Vertices:   g.Order(),
		Edges:      g.EdgeCount(),
		Components: len(g.Components()),
	}
	for i := range g.rows {
		d := g.Degree(i)
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}

	return s
}
