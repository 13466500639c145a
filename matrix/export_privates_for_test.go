// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY, without widening the production API.
//   - The file name ends in _test.go, so it is compiled only by `go test`.

var (
	// ExportedNormalize exposes the per-cell precision normalizer.
	ExportedNormalize = normalize
	// ExportedFormatNumber exposes the cell text renderer used by Format.
	ExportedFormatNumber = formatNumber
	// ExportedDescribeStep exposes the step message renderer.
	ExportedDescribeStep = describeStep
)

// ExportedPivotColumns runs the back-substitution pivot scan over m's first n rows.
func ExportedPivotColumns(m *Matrix, n int) []int {
	return newReducer(m, Options{}).pivotColumns(n)
}
