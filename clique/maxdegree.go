// SPDX-License-Identifier: MIT

package clique

import (
	"github.com/katalvlaran/ternclique/compat"
)

// ExtractMaxDegree runs one round of the max-degree heuristic: the available
// vertex with the most remaining edges (lowest index on ties), followed by
// all of its available neighbours in ascending order.
//
// The neighbours are NOT checked against each other, so the group is only a
// star around the pivot and may contain incompatible pairs. Prefer Extract;
// callers merging the result must verify it (template.Merge does).
//
// Complexity: O(n) degree lookups + O(deg) to collect the neighbourhood.
func ExtractMaxDegree(g *compat.Graph, avail *Mask) (Clique, error) {
	if err := validate(g, avail); err != nil {
		return nil, err
	}

	pivot, maxDeg := -1, -1
	for _, v := range avail.IDs() {
		if d := g.Degree(int(v)); d > maxDeg {
			pivot, maxDeg = int(v), d
		}
	}
	if pivot < 0 {
		return Clique{}, nil
	}

	group := Clique{pivot}
	it := g.Row(pivot).Iterator()
	for it.HasNext() {
		if u := int(it.Next()); avail.Available(u) {
			group = append(group, u)
		}
	}

	return group, nil
}
