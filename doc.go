// Package rowreducer reduces real matrices to Row Echelon Form and Reduced
// Row Echelon Form, showing every elementary row operation on the way.
//
// 🚀 What is rowreducer?
//
//	A small engine plus a command line around it:
//		• matrix: immutable Matrix, ToREF / ToRREF, decimal precision normalization
//		• Step tracing: interchange, eliminate below, scale, eliminate above
//		• Predicates: IsREF, IsRREF, LeadingColumns
//		• Box-drawn printing with optional pivot highlighting
//		• Batch files of named matrices, reduced concurrently and re-run on save
//
// ✨ Why rowreducer?
//
//   - Hand-checkable: the topmost non-zero entry is always the pivot, so the
//     steps match a textbook reduction.
//   - Clean output: every written cell is rounded to 15 decimals, so 0.1+0.2
//     shows as 0.3 and residues never become false pivots.
//   - Safe to share: matrices are values; reductions never touch their input.
//
// Layout:
//
//	matrix/             — Matrix type, row-reduction engine, rounding, formatting
//	internal/input/     — comma-separated row parsing
//	internal/render/    — step and result printer, zerolog tracer
//	internal/batch/     — TOML batch files, concurrent runner, file watcher
//	internal/cliconfig/ — flags, ROWREDUCER_* environment, config file
//	internal/logging/   — zerolog console logger
//	cmd/rowreducer/     — ref, rref, repl, batch and watch commands
//
// Quick start:
//
//	m, _ := matrix.FromValues([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	r, _ := matrix.ToRREF(m, matrix.WithTracer(func(s matrix.Step) {
//		fmt.Println(s.Message)
//	}))
//	fmt.Println(r)
package rowreducer
