// SPDX-License-Identifier: MIT

// Package matrix - immutable row-major storage & safe accessors.
//
// Purpose:
//   - Provide a rectangular float64 value type with the explicit index formula i*cols + j.
//   - Guarantee immutability: every constructor deep-copies its input and every
//     transformation returns a fresh *Matrix; no two values share a backing slice.
//   - Keep the public surface panic-free: accessors return sentinel errors.
//
// Complexity quicksheet:
//   - New/FromValues/Identity/Clone: O(r*c); Rows/Cols/At: O(1); Values: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxFromValues = "FromValues"
	ctxIdentity   = "Identity"
	ctxCopy       = "Copy"
	ctxAt         = "At"
	ctxRow        = "Row"
)

// Matrix is an immutable r×c matrix of float64 values.
//   - r,c hold dimensions (both >= 1 for every value reachable through the public API).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; build matrices with New, NewSquare, FromValues,
// Copy or Identity.
type Matrix struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c), never mutated after construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimension.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimension (wrapped with "New").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int) (*Matrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newZero(rows, cols), nil
}

// NewSquare creates an n×n zero matrix.
func NewSquare(n int) (*Matrix, error) { return New(n, n) }

// FromValues builds a matrix from a row-major grid, deep-copying every row.
// MAIN DESCRIPTION:
//   - The grid must be non-empty and rectangular; the result never aliases grid.
//
// Implementation:
//   - Stage 1: validateGrid (outer length, first row length, equal row lengths).
//   - Stage 2: copy rows into one flat buffer in fixed i order.
//
// Errors:
//   - ErrInvalidDimension if len(grid)==0 or any row is empty.
//   - ErrJaggedRows if any row length differs from the first.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromValues(grid [][]float64) (*Matrix, error) {
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return nil, matrixErrorf(ctxFromValues, err)
	}

	m := newZero(rows, cols)
	for i := 0; i < rows; i++ {
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// Copy returns an independent deep copy of m.
// Errors: ErrNilMatrix when m is nil.
func Copy(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxCopy, err)
	}

	return m.Clone(), nil
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Errors: ErrInvalidDimension when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Matrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}

	m := newZero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1.0
	}

	return m, nil
}

// newZero allocates without validation; callers guarantee rows,cols >= 1.
func newZero(rows, cols int) *Matrix {
	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// fromWorking wraps a working buffer as a Matrix after copying it, so the
// caller may keep mutating its buffer.
func fromWorking(rows, cols int, buf []float64) *Matrix {
	data := make([]float64, len(buf))
	copy(data, buf)

	return &Matrix{r: rows, c: cols, data: data}
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.r, m.c }

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, cellErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i or ErrOutOfRange.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, cellErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Values returns the matrix as a freshly allocated row-major grid.
// Mutating the result never affects m.
func (m *Matrix) Values() [][]float64 {
	grid := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		grid[i] = row
	}

	return grid
}

// Clone returns a deep copy of m.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	return fromWorking(m.r, m.c, m.data)
}

// Equal reports whether m and other have the same shape and identical values.
// Comparison uses ==, so 0 and -0 are equal and NaN never equals itself.
// A nil receiver equals only a nil argument.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != other.data[idx] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer using the box-drawn layout of Format.
func (m *Matrix) String() string { return m.Format() }
