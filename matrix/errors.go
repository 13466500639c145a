// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Constructors and
// kernels return these sentinels (optionally wrapped with an operation tag)
// and tests MUST check them via errors.Is.
// The row-reduction kernels never fail on a valid matrix; every sentinel
// here is raised synchronously at construction or argument validation.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with matrixErrorf (or fmt.Errorf("ctx: %w", ErrX)) when context helps;
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> dimension -> jagged rows -> argument range.

var (
	// ErrInvalidDimension is returned when a requested row or column count is <= 0,
	// including an empty grid or any empty row in FromValues.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrJaggedRows is returned by FromValues when rows have different lengths.
	ErrJaggedRows = errors.New("matrix: rows must not be jagged")

	// ErrInvalidArgument is returned for out-of-domain scalar arguments,
	// e.g. a negative number of decimal places in Round.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
