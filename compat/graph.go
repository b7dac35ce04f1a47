// SPDX-License-Identifier: MIT

package compat

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ternclique/ternary"
)

// Graph is the compatibility graph over the indices of a VectorSet.
//
// rows[i] holds the neighbours of i. The invariant j ∈ rows[i] ⇔ i ∈ rows[j]
// is kept by Build and RemoveVertex; i ∉ rows[i] always.
//
// Graph is not safe for concurrent mutation. Concurrent readers are safe as
// long as nobody calls RemoveVertex.
type Graph struct {
	rows []*roaring.Bitmap
}

// Build constructs the compatibility graph of set.
//
// Implementation:
//   - Stage 1: validate set and options.
//   - Stage 2: for every row i compute the upper-triangle neighbours j > i
//     (serially, or fanned out over Workers goroutines, each writing only its
//     own row buffer).
//   - Stage 3: mirror the upper triangle into both directions.
//
// Determinism:
//   - The result does not depend on Workers; rows are merged in index order.
//
// Complexity:
//   - Time O(n²·L) compatibility checks, Space O(n + E) bitmap containers.
func Build(set *ternary.VectorSet, opts ...Option) (*Graph, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := set.Len()
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	vectors := set.Vectors()

	upper := make([][]uint32, n)
	if err := computeUpper(o, vectors, upper); err != nil {
		return nil, err
	}

	g := &Graph{rows: make([]*roaring.Bitmap, n)}
	for i := range g.rows {
		g.rows[i] = roaring.New()
	}
	for i, nbrs := range upper {
		g.rows[i].AddMany(nbrs)
		for _, j := range nbrs {
			g.rows[j].Add(uint32(i))
		}
	}

	return g, nil
}

// computeUpper fills upper[i] with every j > i compatible with i, ascending.
func computeUpper(o BuildOptions, vectors []ternary.Vector, upper [][]uint32) error {
	row := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var nbrs []uint32
		for j := i + 1; j < len(vectors); j++ {
			if ternary.Compatible(vectors[i], vectors[j]) {
				nbrs = append(nbrs, uint32(j))
			}
		}
		upper[i] = nbrs

		return nil
	}

	if o.Workers <= 1 {
		for i := range vectors {
			if err := row(o.Ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, egCtx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i := range vectors {
		eg.Go(func() error { return row(egCtx, i) })
	}

	return eg.Wait()
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.rows) }

// HasEdge reports whether i and j are adjacent. Out-of-range indices and
// i == j report false.
func (g *Graph) HasEdge(i, j int) bool {
	if !g.valid(i) || !g.valid(j) {
		return false
	}

	return g.rows[i].Contains(uint32(j))
}

// Neighbors returns a copy of the neighbour set of i.
func (g *Graph) Neighbors(i int) (*roaring.Bitmap, error) {
	if !g.valid(i) {
		return nil, g.rangeErr(i)
	}

	return g.rows[i].Clone(), nil
}

// NeighborIDs returns the neighbours of i in ascending order.
func (g *Graph) NeighborIDs(i int) ([]int, error) {
	if !g.valid(i) {
		return nil, g.rangeErr(i)
	}
	out := make([]int, 0, g.rows[i].GetCardinality())
	it := g.rows[i].Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out, nil
}

// Degree returns the number of neighbours of i, or 0 when i is out of range.
func (g *Graph) Degree(i int) int {
	if !g.valid(i) {
		return 0
	}

	return int(g.rows[i].GetCardinality())
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	var sum uint64
	for _, r := range g.rows {
		sum += r.GetCardinality()
	}

	return int(sum / 2)
}

// RemoveVertex clears every edge incident to i, in both directions.
// The vertex index stays valid (Order is unchanged); it just becomes isolated.
//
// Complexity: O(deg(i)) bitmap updates.
func (g *Graph) RemoveVertex(i int) error {
	if !g.valid(i) {
		return g.rangeErr(i)
	}
	it := g.rows[i].Iterator()
	for it.HasNext() {
		g.rows[it.Next()].Remove(uint32(i))
	}
	g.rows[i].Clear()

	return nil
}

// Symmetric verifies the adjacency invariant (mirror edges, no loops).
// It is O(E) and meant for tests and debug assertions.
func (g *Graph) Symmetric() bool {
	for i, r := range g.rows {
		if r.Contains(uint32(i)) {
			return false
		}
		it := r.Iterator()
		for it.HasNext() {
			if !g.rows[it.Next()].Contains(uint32(i)) {
				return false
			}
		}
	}

	return true
}

// Row returns the live, read-only neighbour bitmap of i, or nil when i is out
// of range. It avoids the clone of Neighbors; the caller must not modify it
// and must not hold it across RemoveVertex.
func (g *Graph) Row(i int) *roaring.Bitmap {
	if !g.valid(i) {
		return nil
	}

	return g.rows[i]
}

func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.rows) }

func (g *Graph) rangeErr(i int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, i, len(g.rows))
}
