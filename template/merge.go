// SPDX-License-Identifier: MIT

// Package template merges a group of pairwise compatible ternary vectors
// into one dictionary template.
//
// At each position the template holds the single fixed bit shared by the
// members that fix it, or X when every member has X there. For a true clique
// the fixed bits never disagree, so "any 1 wins, else any 0, else X" loses
// nothing; Merge still checks it and reports ErrConflict instead of silently
// preferring 1.
package template

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ternclique/ternary"
)

// Sentinel errors for merging.
var (
	// ErrEmptyClique is returned when asked to merge zero members.
	ErrEmptyClique = errors.New("template: empty member list")

	// ErrNilSet is returned when the vector set is nil.
	ErrNilSet = errors.New("template: vector set is nil")

	// ErrConflict means two members hold 0 and 1 at the same position,
	// i.e. the group was not a clique of the compatibility graph.
	ErrConflict = errors.New("template: members disagree on a fixed position")
)

// Merge builds the template of members (indices into set).
//
// Errors:
//   - ErrEmptyClique, ErrNilSet.
//   - ternary.ErrIndexOutOfRange for a bad member index.
//   - ErrConflict with the position and the two disagreeing members.
//
// Complexity: O(|members|·L).
func Merge(members []int, set *ternary.VectorSet) (ternary.Vector, error) {
	if set == nil {
		return ternary.Vector{}, ErrNilSet
	}
	if len(members) == 0 {
		return ternary.Vector{}, ErrEmptyClique
	}

	out := make([]ternary.Symbol, set.Length())
	owner := make([]int, set.Length())
	for k := range out {
		out[k] = ternary.DontCare
	}

	for _, m := range members {
		v, err := set.At(m)
		if err != nil {
			return ternary.Vector{}, err
		}
		for k := range out {
			s := v.At(k)
			switch {
			case s == ternary.DontCare:
			case out[k] == ternary.DontCare:
				out[k], owner[k] = s, m
			case out[k] != s:
				return ternary.Vector{}, fmt.Errorf("%w: position %d, vector %d has %s, vector %d has %s",
					ErrConflict, k, owner[k], out[k], m, s)
			}
		}
	}

	return ternary.NewVector(out...), nil
}

// MergeAll merges every group in order and stops at the first error, which
// is annotated with the 1-based group number.
func MergeAll[C ~[]int](groups []C, set *ternary.VectorSet) ([]ternary.Vector, error) {
	out := make([]ternary.Vector, 0, len(groups))
	for i, g := range groups {
		t, err := Merge(g, set)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		out = append(out, t)
	}

	return out, nil
}
