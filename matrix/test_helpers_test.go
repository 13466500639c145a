// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and reduction kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreducer/matrix"
)

// mustFromValues builds a matrix or aborts the test.
func mustFromValues(tb testing.TB, grid [][]float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromValues(grid)
	if err != nil {
		tb.Fatalf("FromValues(%v): %v", grid, err)
	}

	return m
}

// randomGrid fills an r×c grid from rng with small integers in [-5,5] and,
// when sparse is true, zeroes roughly a third of the cells so that
// interchanges, free columns and zero rows all show up.
func randomGrid(rng *rand.Rand, r, c int, sparse bool) [][]float64 {
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			if sparse && rng.Intn(3) == 0 {
				continue
			}
			grid[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return grid
}

// randomDecimalGrid fills an r×c grid with two-decimal values in [-10,10).
func randomDecimalGrid(rng *rand.Rand, r, c int) [][]float64 {
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = float64(rng.Intn(2000)-1000) / 100
		}
	}

	return grid
}
