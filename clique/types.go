// SPDX-License-Identifier: MIT

// Package clique extracts a greedy clique cover from a compat.Graph.
//
// One round (Extract) returns the best greedy clique among the available
// vertices; the driver (Cover) repeats rounds, consuming each clique's
// vertices, until a requested number of cliques is reached or no vertex is
// left. Everything is deterministic: identical graph, cap and options give an
// identical ordered result, whatever the worker count.
package clique

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for extraction and cover.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrMaskNil is returned if a nil availability mask is passed.
	ErrMaskNil = errors.New("clique: availability mask is nil")

	// ErrMaskSize is returned when the mask and graph disagree on vertex count.
	ErrMaskSize = errors.New("clique: mask size does not match graph order")

	// ErrNegativeCap is returned when Cover is asked for fewer than zero cliques.
	ErrNegativeCap = errors.New("clique: cap must be non-negative")

	// ErrUnknownStrategy is returned for a Strategy value outside the enum.
	ErrUnknownStrategy = errors.New("clique: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("clique: invalid option supplied")
)

// Clique is an explicit-length list of vertex indices. For the greedy
// strategy the first element is the starting vertex and the rest follow in
// ascending order; every pair is adjacent in the graph the clique was
// extracted from.
type Clique []int

// Size returns the number of members.
func (c Clique) Size() int { return len(c) }

// Empty reports whether the clique has no members (the "no vertex left" round).
func (c Clique) Empty() bool { return len(c) == 0 }

// Strategy selects the per-round extraction heuristic.
type Strategy int

const (
	// Greedy grows, from every available start vertex, the maximal clique
	// obtained by admitting vertices in ascending order, and keeps the
	// largest (earliest start on ties). This is the canonical strategy.
	Greedy Strategy = iota

	// MaxDegree takes the available vertex of highest degree together with
	// all its available neighbours, WITHOUT checking that the neighbours are
	// pairwise compatible. The result may not be a clique; the merge step
	// rejects such groups.
	MaxDegree
)

// String implements fmt.Stringer with the names accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case MaxDegree:
		return "max-degree"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "greedy" and "max-degree" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "greedy", "":
		return Greedy, nil
	case "max-degree", "maxdegree":
		return MaxDegree, nil
	}

	return Greedy, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures Extract and Cover via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the operation is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for extraction.
type Options struct {
	// Ctx allows cancellation; Cover checks it between rounds and the
	// parallel extractor between starting vertices.
	Ctx context.Context

	// Workers is the fan-out over starting vertices in Extract. 1 is serial.
	Workers int

	// Strategy selects the per-round heuristic used by Cover.
	Strategy Strategy

	// OnRound is called by Cover after every accepted clique, with the
	// 1-based round number and the clique. It must not retain or modify c.
	OnRound func(round int, c Clique)

	err error
}

// DefaultOptions returns serial greedy extraction with no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Workers:  1,
		Strategy: Greedy,
		OnRound:  func(int, Clique) {},
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines scanning starting vertices.
//
//	k >= 1: use k goroutines
//	k < 1: invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithStrategy selects the extraction heuristic.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Greedy && s != MaxDegree {
			o.err = fmt.Errorf("%w: %w: %d", ErrOptionViolation, ErrUnknownStrategy, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithOnRound registers a callback run after each accepted clique.
func WithOnRound(fn func(round int, c Clique)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
