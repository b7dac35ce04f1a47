// SPDX-License-Identifier: MIT

package clique

import (
	"fmt"

	"github.com/katalvlaran/ternclique/compat"
)

// Status is the terminal state of a cover run.
type Status int

const (
	// Capped means the requested number of cliques was reached.
	Capped Status = iota
	// Exhausted means a round found no available vertex before the cap.
	Exhausted
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Exhausted {
		return "exhausted"
	}

	return "capped"
}

// Result is the outcome of Cover.
type Result struct {
	// Cliques in extraction order; pairwise disjoint.
	Cliques []Clique
	// Requested is the cap Cover was called with.
	Requested int
	// Status tells which terminal condition stopped the run.
	Status Status
}

// Found returns the number of extracted cliques.
func (r *Result) Found() int { return len(r.Cliques) }

// Shortfall reports whether the run exhausted the vertices before reaching
// the requested count. It is a diagnostic, not an error.
func (r *Result) Shortfall() bool {
	return r.Status == Exhausted && len(r.Cliques) < r.Requested
}

// Cover extracts up to limit disjoint cliques from g.
//
// Every round asks the configured strategy for one clique over the still
// available vertices. An empty answer ends the run as Exhausted. Otherwise
// the clique is appended, its members leave the availability mask, and every
// edge incident to a member is cleared from g in both directions, so g is
// progressively pruned and must not be reused for another cover. The run
// ends as Capped once limit cliques were found; limit == 0 runs no round.
//
// Errors: ErrGraphNil, ErrNegativeCap, ErrOptionViolation, ctx.Err() when
// the context is cancelled between rounds.
//
// Complexity: at most min(limit, n) rounds of Extract.
func Cover(g *compat.Graph, limit int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCap, limit)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	res := &Result{Requested: limit, Status: Capped}
	avail := NewMask(g.Order())
	for len(res.Cliques) < limit {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}

		var c Clique
		if c, err = extractRound(o, g, avail); err != nil {
			return nil, err
		}
		if c.Empty() {
			res.Status = Exhausted
			break
		}

		res.Cliques = append(res.Cliques, c)
		if err = avail.Consume(c); err != nil {
			return nil, err
		}
		for _, v := range c {
			if err = g.RemoveVertex(v); err != nil {
				return nil, err
			}
		}
		o.OnRound(len(res.Cliques), c)
	}

	return res, nil
}
