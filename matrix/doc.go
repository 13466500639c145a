// Package matrix reduces real matrices to Row Echelon Form and Reduced Row
// Echelon Form, optionally reporting every elementary row operation.
//
// The package provides:
//
//   - Matrix, an immutable row-major float64 value. Constructors (New,
//     NewSquare, FromValues, Copy, Identity) deep-copy their input and every
//     transformation (Round, NormalizePrecision, ToREF, ToRREF) returns a new value.
//   - ToREF / ToRREF, Gaussian and Gauss-Jordan elimination with topmost-row
//     pivot selection, so that reductions match what a student does by hand.
//   - RoundValue and NormalizePrecision, decimal-exact half-away-from-zero
//     rounding used after every arithmetic write to keep binary noise such as
//     0.30000000000000004 out of the zero and one tests.
//   - Tracer / Step, a synchronous observer receiving (message, before, after)
//     for each interchange, elimination and scaling.
//   - IsREF / IsRREF / LeadingColumns predicates and a box-drawn Format.
//
// Matrices here are meant to be small and hand-entered; there is no pivoting
// for numerical stability and no sparse storage.
//
// Quick example:
//
//	m, _ := matrix.FromValues([][]float64{{0, 2, 4}, {1, 1, 3}})
//	rec := &matrix.Recorder{}
//	r, _ := matrix.ToRREF(m, matrix.WithTracer(rec.Trace))
//	fmt.Println(r)
package matrix
