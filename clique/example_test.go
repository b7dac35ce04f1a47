// SPDX-License-Identifier: MIT

package clique_test

import (
	"fmt"

	"github.com/katalvlaran/ternclique/clique"
	"github.com/katalvlaran/ternclique/compat"
	"github.com/katalvlaran/ternclique/ternary"
)

// ExampleCover asks for three cliques where only two exist.
func ExampleCover() {
	set := ternary.MustVectorSet("11XX", "1X0X", "X100", "0011")
	g, err := compat.Build(set)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := clique.Cover(g, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, c := range res.Cliques {
		fmt.Printf("round %d: %v\n", i+1, []int(c))
	}
	fmt.Println(res.Status, "shortfall:", res.Shortfall())
	// Output:
	// round 1: [0 1 2]
	// round 2: [3]
	// exhausted shortfall: true
}
