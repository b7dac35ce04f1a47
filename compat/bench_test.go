// SPDX-License-Identifier: MIT

package compat_test

import (
	"testing"

	"github.com/katalvlaran/ternclique/compat"
)

// BenchmarkBuild_Serial measures O(n²·L) construction on 1000 vectors of 32 symbols.
func BenchmarkBuild_Serial(b *testing.B) {
	set := randomSet(1, 1000, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = compat.Build(set)
	}
}

// BenchmarkBuild_Parallel is the same input with a 4-way row fan-out.
func BenchmarkBuild_Parallel(b *testing.B) {
	set := randomSet(1, 1000, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = compat.Build(set, compat.WithWorkers(4))
	}
}
