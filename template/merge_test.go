// SPDX-License-Identifier: MIT

package template_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ternclique/clique"
	"github.com/katalvlaran/ternclique/compat"
	"github.com/katalvlaran/ternclique/template"
	"github.com/katalvlaran/ternclique/ternary"
)

var example = []string{"11XX", "1X0X", "X100", "0011"}

func TestMerge_Triangle(t *testing.T) {
	set := ternary.MustVectorSet(example...)
	got, err := template.Merge([]int{0, 1, 2}, set)
	require.NoError(t, err)
	assert.Equal(t, "1100", got.String())
}

func TestMerge_Singleton(t *testing.T) {
	set := ternary.MustVectorSet(example...)
	for i, tok := range example {
		got, err := template.Merge([]int{i}, set)
		require.NoError(t, err)
		assert.Equal(t, tok, got.String(), "singleton %d", i)
	}
}

func TestMerge_AllDontCare(t *testing.T) {
	set := ternary.MustVectorSet("XXX", "XXX")
	got, err := template.Merge([]int{1, 0}, set)
	require.NoError(t, err)
	assert.Equal(t, "XXX", got.String())
}

func TestMerge_ZeroKeptWhenNoOne(t *testing.T) {
	set := ternary.MustVectorSet("X0X", "00X", "XX1")
	got, err := template.Merge([]int{0, 1, 2}, set)
	require.NoError(t, err)
	assert.Equal(t, "001", got.String())
}

func TestMerge_Errors(t *testing.T) {
	set := ternary.MustVectorSet("0X", "XX", "1X")

	_, err := template.Merge(nil, set)
	require.ErrorIs(t, err, template.ErrEmptyClique)
	_, err = template.Merge([]int{0}, nil)
	require.ErrorIs(t, err, template.ErrNilSet)
	_, err = template.Merge([]int{0, 3}, set)
	require.ErrorIs(t, err, ternary.ErrIndexOutOfRange)

	_, err = template.Merge([]int{1, 0, 2}, set)
	require.ErrorIs(t, err, template.ErrConflict)
	assert.Contains(t, err.Error(), "position 0, vector 0 has 0, vector 2 has 1")
}

func TestMergeAll(t *testing.T) {
	set := ternary.MustVectorSet(example...)
	got, err := template.MergeAll([]clique.Clique{{0, 1, 2}, {3}}, set)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1100", got[0].String())
	assert.Equal(t, "0011", got[1].String())

	_, err = template.MergeAll([][]int{{0}, {0, 3}}, set)
	require.ErrorIs(t, err, template.ErrConflict)
	assert.Contains(t, err.Error(), "group 2")
}

// TestMerge_SoundOnGreedyCover merges every clique of random greedy covers
// and checks soundness: no conflict, and each template is compatible with
// and refines every member.
func TestMerge_SoundOnGreedyCover(t *testing.T) {
	for seed := 0; seed < 4; seed++ {
		tokens := make([]string, 0, 90)
		for i := 0; i < 90; i++ {
			tokens = append(tokens, pattern(seed, i))
		}
		set := ternary.MustVectorSet(tokens...)
		g, err := compat.Build(set)
		require.NoError(t, err)
		res, err := clique.Cover(g, set.Len())
		require.NoError(t, err)

		templates, err := template.MergeAll(res.Cliques, set)
		require.NoError(t, err)
		for ci, c := range res.Cliques {
			for _, m := range c {
				v, _ := set.At(m)
				require.True(t, ternary.Compatible(templates[ci], v), "template %d vs member %d", ci, m)
				require.True(t, ternary.Covers(v, templates[ci]), "member %d must subsume template %d", m, ci)
			}
		}
	}
}

// pattern derives a deterministic 8-symbol token, X-heavy so cliques grow.
func pattern(seed, i int) string {
	const alphabet = "01XXX"
	b := make([]byte, 8)
	x := uint32(seed*7919 + i*104729 + 1)
	for k := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[k] = alphabet[x%uint32(len(alphabet))]
	}

	return string(b)
}

// ExampleMerge merges the triangle of the four-vector example.
func ExampleMerge() {
	set := ternary.MustVectorSet("11XX", "1X0X", "X100", "0011")
	t, err := template.Merge([]int{0, 1, 2}, set)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t)
	// Output:
	// 1100
}
