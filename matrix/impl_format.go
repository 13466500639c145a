// SPDX-License-Identifier: MIT

// Package matrix - box-drawn text rendering.
//
// Layout (cell width = widest printed value in the whole matrix, minimum 1):
//
//	┌──┬──┬──┐
//	│0 │1 │2 │
//	├──┼──┼──┤
//	│10│11│12│
//	└──┴──┴──┘
//
// Values are left-aligned and right-padded with spaces. The last line carries
// no trailing newline.

package matrix

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ---------- Formatting literals ----------
const (
	_boxTopLeft     = "┌"
	_boxTopMid      = "┬"
	_boxTopRight    = "┐"
	_boxMidLeft     = "├"
	_boxMidMid      = "┼"
	_boxMidRight    = "┤"
	_boxBottomLeft  = "└"
	_boxBottomMid   = "┴"
	_boxBottomRight = "┘"
	_boxVertical    = "│"
	_boxHorizontal  = "─"
	_newline        = "\n"
)

// Format renders m as a box-drawn table.
// Implementation:
//   - Stage 1: render every value once (optionally rounded for display).
//   - Stage 2: compute the common cell width.
//   - Stage 3: emit top border, rows separated by mid borders, bottom border.
//
// Complexity: O(r*c) cells, output size O(r*c*width).
func (m *Matrix) Format(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)

	cells := make([]string, len(m.data))
	width := 1
	for idx, v := range m.data {
		if o.places != DefaultDisplayPlaces {
			v = roundHalfUp(v, o.places)
		}
		cells[idx] = formatNumber(v)
		if n := utf8.RuneCountInString(cells[idx]); n > width {
			width = n
		}
	}

	var b strings.Builder
	b.Grow((m.c*(width+1) + 2) * (2*m.r + 1) * 3)
	writeBorder(&b, m.c, width, _boxTopLeft, _boxTopMid, _boxTopRight)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			writeBorder(&b, m.c, width, _boxMidLeft, _boxMidMid, _boxMidRight)
		}
		for j := 0; j < m.c; j++ {
			b.WriteString(_boxVertical)
			s := cells[i*m.c+j]
			padded := s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
			if o.decorator != nil {
				padded = o.decorator(i, j, padded)
			}
			b.WriteString(padded)
		}
		b.WriteString(_boxVertical)
		b.WriteString(_newline)
	}
	b.WriteString(_boxBottomLeft)
	writeSegments(&b, m.c, width, _boxBottomMid)
	b.WriteString(_boxBottomRight)

	return b.String()
}

// writeBorder writes one full border line including the trailing newline.
func writeBorder(b *strings.Builder, cols, width int, left, mid, right string) {
	b.WriteString(left)
	writeSegments(b, cols, width, mid)
	b.WriteString(right)
	b.WriteString(_newline)
}

func writeSegments(b *strings.Builder, cols, width int, mid string) {
	seg := strings.Repeat(_boxHorizontal, width)
	for j := 0; j < cols; j++ {
		if j > 0 {
			b.WriteString(mid)
		}
		b.WriteString(seg)
	}
}

// formatNumber prints v in the shortest form that round-trips.
// Plain decimal notation is used for 1e-6 <= |v| < 1e21, exponent form outside.
// Negative zero prints as "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs < 1e-6 || abs >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}
