// SPDX-License-Identifier: MIT

package clique

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ternclique/compat"
)

// candidate is the best clique found by one scan over a run of start vertices.
type candidate struct {
	members Clique
}

// better reports whether c must replace best. Strict ">" keeps the earliest
// start vertex on ties, so the scan order is part of the result.
func (c candidate) better(best candidate) bool {
	return len(c.members) > len(best.members)
}

// Extract runs one round over the available vertices of g. With
// WithStrategy(MaxDegree) it delegates to ExtractMaxDegree; the default
// Greedy round works as follows.
//
// For every available vertex v, in ascending order, a candidate {v} is grown
// by scanning all vertices i in ascending order and admitting i when it is
// available, adjacent to v, and adjacent to every vertex already admitted.
// The largest candidate wins; on equal size the one with the lowest start
// vertex wins. An empty Clique means no vertex is available.
//
// Implementation:
//   - The scan is run on bitmaps: S = N(v) ∩ avail; repeatedly admit
//     i = min(S) and set S = (S \ {i}) ∩ N(i). Every element left in S is
//     adjacent to all admitted vertices and larger than the last one, which
//     is exactly the set of vertices the linear scan would still admit.
//   - With Workers > 1 the start vertices are split into contiguous chunks;
//     each chunk keeps its own best, and chunks are reduced in index order
//     with the same strict comparison, so the result equals the serial one.
//
// Complexity: O(n) start vertices × O(k) bitmap intersections each.
func Extract(g *compat.Graph, avail *Mask, opts ...Option) (Clique, error) {
	if err := validate(g, avail); err != nil {
		return nil, err
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return extractRound(o, g, avail)
}

// extractRound runs one round of the configured strategy.
func extractRound(o Options, g *compat.Graph, avail *Mask) (Clique, error) {
	if o.Strategy == MaxDegree {
		return ExtractMaxDegree(g, avail)
	}

	return extractGreedy(o, g, avail)
}

func validate(g *compat.Graph, avail *Mask) error {
	if g == nil {
		return ErrGraphNil
	}
	if avail == nil {
		return ErrMaskNil
	}
	if avail.Size() != g.Order() {
		return ErrMaskSize
	}

	return nil
}

func extractGreedy(o Options, g *compat.Graph, avail *Mask) (Clique, error) {
	starts := avail.IDs()
	if len(starts) == 0 {
		return Clique{}, nil
	}

	workers := o.Workers
	if workers > len(starts) {
		workers = len(starts)
	}
	if workers <= 1 {
		best, err := scan(o.Ctx, g, avail, starts)
		return best.members, err
	}

	chunk := (len(starts) + workers - 1) / workers
	results := make([]candidate, workers)
	eg, egCtx := errgroup.WithContext(o.Ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(starts) {
			break
		}
		hi := min(lo+chunk, len(starts))
		eg.Go(func() error {
			best, err := scan(egCtx, g, avail, starts[lo:hi])
			results[w] = best
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var best candidate
	for _, r := range results {
		if r.better(best) {
			best = r
		}
	}

	return best.members, nil
}

// scan grows a candidate from each start and returns the best one.
func scan(ctx context.Context, g *compat.Graph, avail *Mask, starts []uint32) (candidate, error) {
	var best candidate
	for _, v := range starts {
		if err := ctx.Err(); err != nil {
			return candidate{}, err
		}
		c := grow(g, avail, int(v))
		if c.better(best) {
			best = c
		}
	}

	return best, nil
}

// grow builds the greedy maximal clique that starts at v.
func grow(g *compat.Graph, avail *Mask, v int) candidate {
	members := Clique{v}
	s := roaring.And(g.Row(v), avail.bits)
	for !s.IsEmpty() {
		i := s.Minimum()
		members = append(members, int(i))
		s.Remove(i)
		s.And(g.Row(int(i)))
	}

	return candidate{members: members}
}
