// SPDX-License-Identifier: MIT

// Package matrix - Gaussian / Gauss-Jordan row reduction.
//
// Purpose:
//   - Reduce any rectangular matrix to Row Echelon Form (ToREF) or Reduced Row
//     Echelon Form (ToRREF) on a private working copy; the input is never touched.
//   - Report every effective elementary row operation to the registered tracers.
//
// Determinism & Policy:
//   - Pivot search takes the topmost non-zero entry (no partial pivoting) so that
//     hand-computed reductions match step for step.
//   - Every written cell is normalized to NormalizedPlaces decimals immediately,
//     which keeps binary noise out of the exact-zero and exact-one tests.
//   - Tracers only decide whether snapshots are taken and steps are emitted;
//     the arithmetic path is identical with and without them.
//
// Complexity quicksheet:
//   - Forward pass O(min(r,c) * r * c); back substitution O(r^2 * c).
//   - Each reported step adds two O(r*c) snapshots.

package matrix

import "fmt"

const (
	opREF  = "ToREF"
	opRREF = "ToRREF"
)

// noPivot marks a row without a leading non-zero entry.
const noPivot = -1

// ToREF returns the Row Echelon Form of m computed by Gaussian elimination.
// MAIN DESCRIPTION:
//   - Forward elimination only: interchange, eliminate below, scale pivot to 1.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); copy m into a flat working buffer.
//   - Stage 2: forward pass column by column (see reducer.forward).
//   - Stage 3: wrap the working buffer as a new *Matrix.
//
// Behavior highlights:
//   - Pivots in the result equal exactly 1; entries below pivots are exactly 0.
//   - Columns without a pivot are skipped; zero rows sink to the bottom.
//   - Already reduced inputs are fixed points: ToREF(ToREF(m)) equals ToREF(m).
//
// Errors:
//   - ErrNilMatrix (wrapped with "ToREF"). No other failure exists.
//
// Complexity:
//   - Time O(min(r,c)*r*c), Space O(r*c) plus snapshots when tracing.
func ToREF(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opREF, err)
	}
	w := newReducer(m, gatherOptions(opts...))
	w.forward()

	return w.result(), nil
}

// ToRREF returns the Reduced Row Echelon Form of m computed by Gauss-Jordan elimination.
// MAIN DESCRIPTION:
//   - Forward pass as in ToREF, then back substitution clearing every pivot column above its pivot.
//
// Behavior highlights:
//   - Each pivot is exactly 1 and the only non-zero entry of its column.
//   - Identity matrices and RREF inputs come back unchanged with no steps reported.
//
// Errors:
//   - ErrNilMatrix (wrapped with "ToRREF").
//
// Complexity:
//   - Time O(min(r,c)*r*c + r^2*c), Space O(r*c).
func ToRREF(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	w := newReducer(m, gatherOptions(opts...))
	pivotRows := w.forward()
	w.backSubstitute(pivotRows)

	return w.result(), nil
}

// REF is the method form of ToREF.
func (m *Matrix) REF(opts ...Option) (*Matrix, error) { return ToREF(m, opts...) }

// RREF is the method form of ToRREF.
func (m *Matrix) RREF(opts ...Option) (*Matrix, error) { return ToRREF(m, opts...) }

// reducer owns the mutable working copy of a single reduction call.
type reducer struct {
	rows, cols int
	data       []float64 // row-major working buffer, private to this call
	opts       Options
}

func newReducer(m *Matrix, opts Options) *reducer {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &reducer{rows: m.r, cols: m.c, data: buf, opts: opts}
}

func (w *reducer) at(i, j int) float64     { return w.data[i*w.cols+j] }
func (w *reducer) set(i, j int, v float64) { w.data[i*w.cols+j] = v }

// result copies the working buffer into an immutable Matrix.
func (w *reducer) result() *Matrix { return fromWorking(w.rows, w.cols, w.data) }

// snapshot returns an independent copy of the working state, or nil when nobody listens.
func (w *reducer) snapshot() *Matrix {
	if !w.opts.tracing() {
		return nil
	}

	return w.result()
}

// report emits one step built from before and the current working state.
func (w *reducer) report(kind StepKind, target, source, col int, factor float64, before *Matrix) {
	if !w.opts.tracing() {
		return
	}
	w.opts.emit(Step{
		Kind:    kind,
		Message: describeStep(kind, target, source, col, factor),
		Target:  target,
		Source:  source,
		Column:  col,
		Factor:  factor,
		Before:  before,
		After:   w.result(),
	})
}

// forward runs Gaussian elimination and returns the number of pivot rows.
// Implementation:
//   - For col = 0..c-1 while row < r:
//   - findPivot(row, col); none → next column, row unchanged.
//   - interchange when the pivot sits below row.
//   - eliminateBelow, then scale the pivot row.
//   - row++.
func (w *reducer) forward() int {
	row := 0
	for col := 0; row < w.rows && col < w.cols; col++ {
		p := w.findPivot(row, col)
		if p == noPivot {
			continue
		}
		if p != row {
			w.interchange(row, p, col)
		}
		w.eliminateBelow(row, col)
		w.scale(row, col)
		row++
	}

	return row
}

// findPivot returns the first row >= from with a non-zero entry in col, or noPivot.
func (w *reducer) findPivot(from, col int) int {
	for i := from; i < w.rows; i++ {
		if w.at(i, col) != 0 {
			return i
		}
	}

	return noPivot
}

// interchange swaps rows a and b in full. Entries left of col are zero in both
// rows at this point, so this matches a swap from col rightward.
func (w *reducer) interchange(a, b, col int) {
	before := w.snapshot()
	ra := w.data[a*w.cols : (a+1)*w.cols]
	rb := w.data[b*w.cols : (b+1)*w.cols]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
	w.report(StepInterchange, a, b, col, 0, before)
}

// eliminateBelow replaces every lower row k having e = a[k][col] != 0 with
// row_k + row_pivot * (e / -pivot). The pivot-column cell is set to exactly 0;
// every other written cell is normalized.
func (w *reducer) eliminateBelow(row, col int) {
	pv := w.at(row, col)
	for k := row + 1; k < w.rows; k++ {
		e := w.at(k, col)
		if e == 0 {
			continue
		}
		before := w.snapshot()
		ratio := e / -pv
		w.set(k, col, 0)
		for j := col + 1; j < w.cols; j++ {
			w.set(k, j, normalize(w.at(k, j)+w.at(row, j)*ratio))
		}
		w.report(StepEliminateBelow, k, row, col, ratio, before)
	}
}

// scale multiplies the pivot row from col rightward by 1/pivot, unless the pivot is already 1.
// The pivot cell is set to exactly 1.
func (w *reducer) scale(row, col int) {
	pv := w.at(row, col)
	if pv == 1 {
		return
	}
	before := w.snapshot()
	factor := 1 / pv
	w.set(row, col, 1)
	for j := col + 1; j < w.cols; j++ {
		w.set(row, j, normalize(w.at(row, j)*factor))
	}
	w.report(StepScale, row, row, col, factor, before)
}

// pivotColumns returns the pivot column of each of the first n rows.
// Columns are scanned left to right but never at or before the previous
// row's pivot, so the result is strictly increasing until the first noPivot,
// after which every row is noPivot.
func (w *reducer) pivotColumns(n int) []int {
	pcs := make([]int, n)
	last := noPivot
	for i := 0; i < n; i++ {
		pcs[i] = noPivot
		for j := last + 1; j < w.cols; j++ {
			if w.at(i, j) != 0 {
				pcs[i] = j
				break
			}
		}
		if pcs[i] == noPivot {
			last = w.cols - 1 // later rows have nothing left to scan
			continue
		}
		last = pcs[i]
	}

	return pcs
}

// backSubstitute clears every pivot column above its pivot, from the last
// pivot row up to the first, each upper row visited bottom-up.
// Row k becomes row_k - row_pivot * e with e = a[k][pivotCol]; the pivot-column
// cell is set to exactly 0 and every other written cell is normalized.
func (w *reducer) backSubstitute(pivotRows int) {
	pcs := w.pivotColumns(pivotRows)
	for row := pivotRows - 1; row >= 0; row-- {
		col := pcs[row]
		if col == noPivot {
			continue
		}
		for k := row - 1; k >= 0; k-- {
			e := w.at(k, col)
			if e == 0 {
				continue
			}
			before := w.snapshot()
			w.set(k, col, 0)
			for j := col + 1; j < w.cols; j++ {
				w.set(k, j, normalize(w.at(k, j)-w.at(row, j)*e))
			}
			w.report(StepEliminateAbove, k, row, col, -e, before)
		}
	}
}

// describeStep renders the textbook notation for one operation, numbering rows
// and columns from 1: "R2 → R2 + (1.5)·R1".
func describeStep(kind StepKind, target, source, col int, factor float64) string {
	switch kind {
	case StepInterchange:
		return fmt.Sprintf("Interchange R%d and R%d (pivot in column %d)", target+1, source+1, col+1)
	case StepEliminateBelow:
		return fmt.Sprintf("Replace R%d with R%d + (%s)·R%d to eliminate column %d below the pivot",
			target+1, target+1, formatNumber(normalize(factor)), source+1, col+1)
	case StepScale:
		return fmt.Sprintf("Scale R%d by %s to make the pivot in column %d equal 1",
			target+1, formatNumber(normalize(factor)), col+1)
	case StepEliminateAbove:
		return fmt.Sprintf("Replace R%d with R%d - (%s)·R%d to eliminate column %d above the pivot",
			target+1, target+1, formatNumber(normalize(-factor)), source+1, col+1)
	default:
		return kind.String()
	}
}
