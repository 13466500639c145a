// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/rowreducer/matrix"
)

// ExampleToRREF reduces a 2×3 matrix whose first column needs an interchange
// and prints every reported step.
func ExampleToRREF() {
	m, _ := matrix.FromValues([][]float64{{0, 2, 4}, {1, 1, 3}})

	n := 0
	trace := func(s matrix.Step) {
		n++
		fmt.Printf("Step %d: %s\n", n, s.Message)
	}
	r, err := matrix.ToRREF(m, matrix.WithTracer(trace))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)

	// Output:
	// Step 1: Interchange R1 and R2 (pivot in column 1)
	// Step 2: Scale R2 by 0.5 to make the pivot in column 2 equal 1
	// Step 3: Replace R1 with R1 - (1)·R2 to eliminate column 2 above the pivot
	// ┌─┬─┬─┐
	// │1│0│1│
	// ├─┼─┼─┤
	// │0│1│2│
	// └─┴─┴─┘
}

// ExampleRoundValue shows half-away-from-zero rounding on the exact binary value.
func ExampleRoundValue() {
	a, _ := matrix.RoundValue(2.5, 0)
	b, _ := matrix.RoundValue(0.1+0.2, 15)
	c, _ := matrix.RoundValue(1.005, 2)
	fmt.Println(a, b, c)

	// Output:
	// 3 0.3 1
}
