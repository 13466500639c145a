// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rowreducer/matrix"
	"github.com/stretchr/testify/require"
)

func TestFormat_CommonWidth(t *testing.T) {
	grid := make([][]float64, 3)
	for i := range grid {
		grid[i] = make([]float64, 5)
		for j := range grid[i] {
			grid[i][j] = float64(i*5 + j)
		}
	}
	m := mustFromValues(t, grid)

	want := "┌──┬──┬──┬──┬──┐\n" +
		"│0 │1 │2 │3 │4 │\n" +
		"├──┼──┼──┼──┼──┤\n" +
		"│5 │6 │7 │8 │9 │\n" +
		"├──┼──┼──┼──┼──┤\n" +
		"│10│11│12│13│14│\n" +
		"└──┴──┴──┴──┴──┘"
	require.Equal(t, want, m.Format())
	require.Equal(t, want, m.String())
}

func TestFormat_RREFScenario(t *testing.T) {
	m := mustFromValues(t, [][]float64{{0, 2, 4}, {1, 1, 3}})
	r, err := matrix.ToRREF(m)
	require.NoError(t, err)

	require.Equal(t, "┌─┬─┬─┐\n│1│0│1│\n├─┼─┼─┤\n│0│1│2│\n└─┴─┴─┘", r.String())
}

func TestFormat_Numbers(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"negative zero", math.Copysign(0, -1), "┌─┐\n│0│\n└─┘"},
		{"negative", -1.5, "┌────┐\n│-1.5│\n└────┘"},
		{"tiny", 1e-7, "┌─────┐\n│1e-07│\n└─────┘"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustFromValues(t, [][]float64{{tt.v}})
			require.Equal(t, tt.want, m.Format())
		})
	}
}

func TestFormat_DisplayPlaces(t *testing.T) {
	m := mustFromValues(t, [][]float64{{1.0 / 3}})
	require.Equal(t, "┌──────┐\n│0.3333│\n└──────┘", m.Format(matrix.WithDisplayPlaces(4)))

	// stored value is untouched
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0/3, v)

	require.Panics(t, func() { matrix.WithDisplayPlaces(-1) })

	// a scale beyond every float64 expansion prints the stored value
	require.Equal(t, m.Format(), m.Format(matrix.WithDisplayPlaces(math.MaxInt)))
}

func TestFormat_CellDecorator(t *testing.T) {
	m := mustFromValues(t, [][]float64{{7}})
	wrap := func(_, _ int, padded string) string { return "[" + padded + "]" }
	require.Equal(t, "┌─┐\n│[7]│\n└─┘", m.Format(matrix.WithCellDecorator(wrap)))

	var seen [][2]int
	grid := mustFromValues(t, [][]float64{{1, 2}, {3, 4}})
	_ = grid.Format(matrix.WithCellDecorator(func(i, j int, padded string) string {
		seen = append(seen, [2]int{i, j})
		return padded
	}))
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, seen)
}
