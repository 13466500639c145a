package input

import "github.com/pkg/errors"

// Sentinel errors returned (wrapped) by the parsers; match with errors.Is.
var (
	// ErrInvalidNumber is returned when a field is not a decimal number.
	ErrInvalidNumber = errors.New("input: unable to parse value")
	// ErrNonFinite is returned for NaN and ±Inf fields.
	ErrNonFinite = errors.New("input: value must be finite")
	// ErrEmptyRow is returned when the first row carries no values.
	ErrEmptyRow = errors.New("input: not enough columns")
	// ErrTooManyColumns is returned when a row is longer than the first row.
	ErrTooManyColumns = errors.New("input: too many columns")
	// ErrNotEnoughColumns is returned when a row is shorter than the first row.
	ErrNotEnoughColumns = errors.New("input: not enough columns")
	// ErrNoRows is returned when input ends before any row was entered.
	ErrNoRows = errors.New("input: no rows provided")
)
