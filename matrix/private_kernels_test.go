// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowreducer/matrix"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKernel(t *testing.T) {
	require.Equal(t, 0.3, matrix.ExportedNormalize(0.1+0.2))
	require.False(t, math.Signbit(matrix.ExportedNormalize(math.Copysign(0, -1))))
	require.False(t, math.Signbit(matrix.ExportedNormalize(-1e-17)), "rounds to +0")
	require.True(t, math.IsNaN(matrix.ExportedNormalize(math.NaN())))
	require.True(t, math.IsInf(matrix.ExportedNormalize(math.Inf(-1)), -1))
}

func TestFormatNumberKernel(t *testing.T) {
	require.Equal(t, "123456.5", matrix.ExportedFormatNumber(123456.5))
	require.Equal(t, "1e+21", matrix.ExportedFormatNumber(1e21))
	require.Equal(t, "-0.25", matrix.ExportedFormatNumber(-0.25))
	require.Equal(t, "0", matrix.ExportedFormatNumber(math.Copysign(0, -1)))
}

func TestDescribeStepKernel(t *testing.T) {
	require.Equal(t,
		"Replace R1 with R1 - (1)·R2 to eliminate column 2 above the pivot",
		matrix.ExportedDescribeStep(matrix.StepEliminateAbove, 0, 1, 1, -1))
	require.Equal(t,
		"Replace R3 with R3 + (-0.5)·R1 to eliminate column 1 below the pivot",
		matrix.ExportedDescribeStep(matrix.StepEliminateBelow, 2, 0, 0, -0.5))
	require.Equal(t, "unknown", matrix.ExportedDescribeStep(matrix.StepKind(9), 0, 0, 0, 0))
}

func TestPivotColumnsKernel(t *testing.T) {
	m := mustFromValues(t, [][]float64{{1, 2, 0}, {0, 0, 1}, {0, 0, 0}})
	require.Equal(t, []int{0, 2, -1}, matrix.ExportedPivotColumns(m, 3))
	require.Equal(t, []int{0, 2}, matrix.ExportedPivotColumns(m, 2))
}
