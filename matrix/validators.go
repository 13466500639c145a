// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction and argument checks.
//  - Keep constructors and kernels minimal by delegating shape/nil/grid checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - validateGrid is O(r); the remaining validators are O(1).

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with a method tag and coordinates, e.g. "Matrix.At(3,1): ...".
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateFinite ensures v is neither NaN nor ±Inf.
// The kernels accept any float64; input layers use this to reject
// values that cannot come from a hand-entered real matrix.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: non-finite value %v", ErrInvalidArgument, v)
	}

	return nil
}

// validateShape ensures both dimensions are strictly positive.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrInvalidDimension
	}

	return nil
}

// validateGrid checks a row-major grid and returns its shape.
// Implementation:
//   - Stage 1: outer length must be > 0 and no row may be empty (ErrInvalidDimension).
//   - Stage 2: every row must match the first row length (ErrJaggedRows).
func validateGrid(grid [][]float64) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, ErrInvalidDimension
	}
	for i := 0; i < rows; i++ {
		if len(grid[i]) == 0 {
			return 0, 0, fmt.Errorf("row %d is empty: %w", i, ErrInvalidDimension)
		}
	}
	cols = len(grid[0])
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(grid[i]), cols, ErrJaggedRows)
		}
	}

	return rows, cols, nil
}

// validatePlaces ensures a rounding scale is non-negative.
func validatePlaces(places int) error {
	if places < 0 {
		return fmt.Errorf("%w: decimal places must be >= 0, got %d", ErrInvalidArgument, places)
	}

	return nil
}
