// SPDX-License-Identifier: MIT

// Package compat builds and maintains the pairwise compatibility graph of a
// ternary.VectorSet.
//
// Vertices are vector indices 0..n-1. Edge(i,j) holds iff vectors i and j are
// ternary.Compatible. The graph is undirected (always symmetric), has no
// self-loops, and is NOT transitively closed. Each adjacency row is a roaring
// bitmap, so neighbourhood intersection (the hot path of clique extraction)
// is a single And.
//
// After Build the graph may only shrink: RemoveVertex clears every edge of a
// vertex in both directions. This is how the cover driver prunes consumed
// vertices between rounds.
package compat

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilSet is returned when Build receives a nil vector set.
	ErrNilSet = errors.New("compat: vector set is nil")

	// ErrVertexOutOfRange is returned for a vertex index outside [0, Order()).
	ErrVertexOutOfRange = errors.New("compat: vertex out of range")

	// ErrTooManyVertices is returned when the set does not fit 32-bit vertex ids.
	ErrTooManyVertices = errors.New("compat: vertex count exceeds uint32 range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("compat: invalid option supplied")
)

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*BuildOptions)

// BuildOptions holds the parameters of Build.
type BuildOptions struct {
	// Ctx allows cancellation; it is polled once per adjacency row.
	Ctx context.Context

	// Workers is the number of goroutines computing rows. 1 means serial.
	Workers int

	err error
}

// DefaultOptions returns serial construction under context.Background().
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:     context.Background(),
		Workers: 1,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the row fan-out.
//
//	k >= 1: use k goroutines
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *BuildOptions) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}
