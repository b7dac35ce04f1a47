// SPDX-License-Identifier: MIT

package clique_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternclique/clique"
	"github.com/katalvlaran/ternclique/ternary"
)

func TestCover_EndToEndExample(t *testing.T) {
	g := buildGraph(t, ternary.MustVectorSet("11XX", "1X0X", "X100", "0011"))
	res, err := clique.Cover(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []clique.Clique{{0, 1, 2}, {3}}, res.Cliques)
	assert.Equal(t, clique.Capped, res.Status)
	assert.False(t, res.Shortfall())
	assert.Equal(t, 0, g.EdgeCount(), "consumed vertices are pruned from the graph")
}

func TestCover_CapBoundary(t *testing.T) {
	set := ternary.MustVectorSet("11XX", "1X0X", "X100", "0011")

	res, err := clique.Cover(buildGraph(t, set), 0)
	require.NoError(t, err)
	assert.Empty(t, res.Cliques)
	assert.False(t, res.Shortfall(), "cap 0 is not a shortfall")

	res, err = clique.Cover(buildGraph(t, set), 1)
	require.NoError(t, err)
	assert.Equal(t, []clique.Clique{{0, 1, 2}}, res.Cliques)
	assert.Equal(t, clique.Capped, res.Status)

	res, err = clique.Cover(buildGraph(t, set), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Found())
	assert.Equal(t, 10, res.Requested)
	assert.Equal(t, clique.Exhausted, res.Status)
	assert.True(t, res.Shortfall())
	assert.Equal(t, "exhausted", res.Status.String())
}

func TestCover_EmptyGraph(t *testing.T) {
	set, err := ternary.NewVectorSet(8)
	require.NoError(t, err)
	res, err := clique.Cover(buildGraph(t, set), 3)
	require.NoError(t, err)
	assert.Empty(t, res.Cliques)
	assert.True(t, res.Shortfall())
}

func TestCover_Errors(t *testing.T) {
	_, err := clique.Cover(nil, 1)
	require.ErrorIs(t, err, clique.ErrGraphNil)

	g := buildGraph(t, ternary.MustVectorSet("0", "1"))
	_, err = clique.Cover(g, -1)
	require.ErrorIs(t, err, clique.ErrNegativeCap)
	_, err = clique.Cover(g, 1, clique.WithWorkers(-2))
	require.ErrorIs(t, err, clique.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.Cover(g, 1, clique.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestCover_Properties checks, on random inputs, the partition property and
// that every emitted clique is pairwise compatible in the unpruned graph.
// Vertices of one clique are all available when it is extracted, and pruning
// only touches consumed vertices, so the unpruned graph restricted to the
// clique is the graph as it stood at extraction time.
func TestCover_Properties(t *testing.T) {
	for seed := int64(10); seed < 15; seed++ {
		set := randomSet(seed, 120, 10)
		ref := buildGraph(t, set)
		g := buildGraph(t, set)

		var rounds []int
		res, err := clique.Cover(g, set.Len(), clique.WithOnRound(func(round int, c clique.Clique) {
			rounds = append(rounds, round)
			for _, v := range c {
				assert.Zero(t, g.Degree(v), "member %d pruned before the hook runs", v)
			}
		}))
		require.NoError(t, err)
		require.Len(t, rounds, res.Found())

		seen := make(map[int]int)
		covered := 0
		for ci, c := range res.Cliques {
			for a := 0; a < len(c); a++ {
				prev, dup := seen[c[a]]
				require.False(t, dup, "vertex %d in cliques %d and %d", c[a], prev, ci)
				seen[c[a]] = ci
				for b := a + 1; b < len(c); b++ {
					require.True(t, ref.HasEdge(c[a], c[b]), "clique %d: %d !~ %d", ci, c[a], c[b])
				}
			}
			covered += len(c)
		}
		assert.Equal(t, set.Len(), covered, "uncapped cover consumes every vertex")
		if res.Found() < set.Len() {
			assert.Equal(t, clique.Exhausted, res.Status)
		}
	}
}

// TestCover_Deterministic runs the same input twice, serial and parallel.
func TestCover_Deterministic(t *testing.T) {
	set := randomSet(99, 200, 16)
	first, err := clique.Cover(buildGraph(t, set), 25)
	require.NoError(t, err)
	second, err := clique.Cover(buildGraph(t, set), 25)
	require.NoError(t, err)
	parallel, err := clique.Cover(buildGraph(t, set), 25, clique.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, first.Cliques, second.Cliques)
	assert.Equal(t, first.Cliques, parallel.Cliques)
}

func TestCover_MaxDegreeStrategy(t *testing.T) {
	g := buildGraph(t, ternary.MustVectorSet("0X", "XX", "1X", "00"))
	res, err := clique.Cover(g, 5, clique.WithStrategy(clique.MaxDegree))
	require.NoError(t, err)
	// Degrees: 0:{1,3} 1:{0,2,3} 2:{1} 3:{0,1}. Pivot 1 takes 0,2,3.
	assert.Equal(t, []clique.Clique{{1, 0, 2, 3}}, res.Cliques)
	assert.True(t, res.Shortfall())
}

func TestCover_PrunesAsItGoes(t *testing.T) {
	set := ternary.MustVectorSet("XX", "0X", "1X", "1X")
	g := buildGraph(t, set)
	res, err := clique.Cover(g, 1)
	require.NoError(t, err)
	require.Equal(t, []clique.Clique{{2, 0, 3}}, res.Cliques)
	assert.Equal(t, 0, g.Degree(1), "1 lost its only neighbour")
	assert.True(t, g.Symmetric())
}
