// SPDX-License-Identifier: MIT
// Package matrix: structural predicates.
//
// Purpose:
//   - Answer "is this matrix square / in REF / in RREF" directly from the stored values.
//   - Nothing is cached; each call rescans the grid, so the predicates are safe
//     to call from any number of goroutines.

package matrix

// IsSquare reports whether Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// LeadingColumns returns, for each row, the column of its leftmost non-zero
// entry, or -1 for a row of zeros.
// Complexity: O(r*c).
func (m *Matrix) LeadingColumns() []int {
	lead := make([]int, m.r)
	for i := 0; i < m.r; i++ {
		lead[i] = noPivot
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if m.data[base+j] != 0 {
				lead[i] = j
				break
			}
		}
	}

	return lead
}

// IsREF reports whether m is in Row Echelon Form:
//   - every zero row lies below every non-zero row;
//   - each leading entry lies strictly right of the leading entry of the row above
//     (hence every entry below a leading entry is zero).
func (m *Matrix) IsREF() bool {
	last := noPivot
	zeroSeen := false
	for _, lead := range m.LeadingColumns() {
		if lead == noPivot {
			zeroSeen = true
			continue
		}
		if zeroSeen || lead <= last {
			return false
		}
		last = lead
	}

	return true
}

// IsRREF reports whether m is in Reduced Row Echelon Form: IsREF, every
// leading entry is exactly 1 and is the only non-zero entry in its column.
func (m *Matrix) IsRREF() bool {
	if !m.IsREF() {
		return false
	}
	for i, lead := range m.LeadingColumns() {
		if lead == noPivot {
			continue
		}
		if m.data[i*m.c+lead] != 1 {
			return false
		}
		for k := 0; k < m.r; k++ {
			if k != i && m.data[k*m.c+lead] != 0 {
				return false
			}
		}
	}

	return true
}
