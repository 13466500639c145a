// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the row-reduction kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreducer/matrix"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{8, 32, 64}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkF float64
)

func BenchmarkToREF(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFromValues(b, randomDecimalGrid(rand.New(rand.NewSource(1337)), n, n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.ToREF(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}

func BenchmarkToRREF(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustFromValues(b, randomDecimalGrid(rand.New(rand.NewSource(4242)), n, n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.ToRREF(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = r
			}
		})
	}
}

func BenchmarkToRREF_Traced(b *testing.B) {
	b.ReportAllocs()
	m := mustFromValues(b, randomDecimalGrid(rand.New(rand.NewSource(7)), 16, 16))
	steps := 0
	trace := func(matrix.Step) { steps++ }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := matrix.ToRREF(m, matrix.WithTracer(trace))
		if err != nil {
			b.Fatal(err)
		}
		sinkM = r
	}
	sinkF = float64(steps)
}

func BenchmarkRoundValue(b *testing.B) {
	b.ReportAllocs()
	v := 0.1 + 0.2
	for i := 0; i < b.N; i++ {
		r, err := matrix.RoundValue(v, matrix.NormalizedPlaces)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = r
	}
}
