// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for row reduction and formatting.
// This file defines:
//   - Option / Options for ToREF and ToRREF (step tracing),
//   - FormatOption / formatOptions for Format (display-only tweaks),
//   - gatherOptions / gatherFormatOptions helpers (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes observable output and is covered by tests.
//   - Options never change reduction arithmetic; they only add observers or presentation.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDisplayPlaces disables display rounding in Format (-1 = print values as stored).
	DefaultDisplayPlaces = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDisplayPlacesInvalid = "matrix: WithDisplayPlaces: places must be >= 0"
)

// ---------- Row-reduction options ----------

// Option configures a single ToREF/ToRREF call.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tracers []Tracer // called in registration order for every reported step
}

// WithTracer registers t to receive every effective row operation.
// A nil tracer is ignored.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.tracers = append(o.tracers, t)
		}
	}
}

// WithTracers registers several tracers; each step is delivered to them in order.
func WithTracers(ts ...Tracer) Option {
	return func(o *Options) {
		for _, t := range ts {
			if t != nil {
				o.tracers = append(o.tracers, t)
			}
		}
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// tracing reports whether at least one tracer is registered.
func (o Options) tracing() bool { return len(o.tracers) > 0 }

// emit delivers step to every tracer in order.
func (o Options) emit(step Step) {
	for _, t := range o.tracers {
		t(step)
	}
}

// ---------- Format options ----------

// CellDecorator wraps the already padded text of cell (row, col).
// The decorated text does not take part in width computation, so decorators
// may add invisible markup such as ANSI colour codes.
type CellDecorator func(row, col int, padded string) string

// FormatOption configures Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	places    int           // DefaultDisplayPlaces or >= 0
	decorator CellDecorator // nil = identity
}

// WithDisplayPlaces rounds every value to places decimals before printing.
// The matrix itself is unchanged. Panics when places < 0 (programmer error).
func WithDisplayPlaces(places int) FormatOption {
	if places < 0 {
		panic(panicDisplayPlacesInvalid)
	}

	return func(o *formatOptions) { o.places = places }
}

// WithCellDecorator installs d to wrap each padded cell.
func WithCellDecorator(d CellDecorator) FormatOption {
	return func(o *formatOptions) { o.decorator = d }
}

func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{places: DefaultDisplayPlaces}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
