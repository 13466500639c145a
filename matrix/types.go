// SPDX-License-Identifier: MIT

// Package matrix: step-tracing types used by the row-reduction kernels.
// This file contains ONLY the tracer-facing types (Step, StepKind, Tracer)
// and a small Recorder sink. Options live in options.go, errors in errors.go.
package matrix

import "sync"

// StepKind names the elementary row operation a Step reports.
type StepKind int

const (
	// StepInterchange swaps the pivot row into place (forward pass).
	StepInterchange StepKind = iota + 1
	// StepEliminateBelow adds a multiple of the pivot row to a lower row (forward pass).
	StepEliminateBelow
	// StepScale multiplies the pivot row so the pivot becomes 1 (forward pass).
	StepScale
	// StepEliminateAbove subtracts a multiple of a pivot row from an upper row (back substitution).
	StepEliminateAbove
)

// String returns a short lower-case label, stable for logs.
func (k StepKind) String() string {
	switch k {
	case StepInterchange:
		return "interchange"
	case StepEliminateBelow:
		return "eliminate-below"
	case StepScale:
		return "scale"
	case StepEliminateAbove:
		return "eliminate-above"
	default:
		return "unknown"
	}
}

// Step is one reported elementary row operation.
//   - Target is the row that was written (for an interchange: the pivot position).
//   - Source is the row used to write it (for an interchange: the row swapped in).
//   - Column is the pivot column the operation belongs to.
//   - Factor is the multiplier applied (0 for an interchange).
//
// Indices are zero-based; Message numbers rows and columns from 1.
// Before and After are independent snapshots; they never alias the working copy.
type Step struct {
	Kind    StepKind
	Message string
	Target  int
	Source  int
	Column  int
	Factor  float64
	Before  *Matrix
	After   *Matrix
}

// Tracer receives steps synchronously, in reduction order, exactly once per
// effective operation. It is never called after ToREF/ToRREF return.
type Tracer func(step Step)

// Recorder is a Tracer sink that keeps every step it sees.
// It is safe for concurrent use so one Recorder can observe parallel reductions,
// although steps from different reductions then interleave.
type Recorder struct {
	mu    sync.Mutex
	steps []Step
}

// Trace appends step. Pass rec.Trace to WithTracer.
func (rec *Recorder) Trace(step Step) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.steps = append(rec.steps, step)
}

// Steps returns a copy of the recorded steps.
func (rec *Recorder) Steps() []Step {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]Step, len(rec.steps))
	copy(out, rec.steps)

	return out
}

// Kinds returns the kinds of the recorded steps in order.
func (rec *Recorder) Kinds() []StepKind {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]StepKind, len(rec.steps))
	for i, s := range rec.steps {
		out[i] = s.Kind
	}

	return out
}

// Reset drops all recorded steps.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.steps = nil
}
