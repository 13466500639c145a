// Package input turns comma-separated text rows into matrices.
//
// One line is one row: "1, 2.5, -3". Empty fields are skipped, so "1,,2"
// is the row [1 2]. The first row fixes the column count; an empty line
// (or end of input) finishes the matrix.
package input

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/rowreducer/matrix"
)

const fieldSeparator = ","

// ParseRow parses one comma-separated row.
func ParseRow(line string) ([]float64, error) {
	fields := strings.Split(line, fieldSeparator)
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidNumber, "%q", f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrNonFinite, "%q", f)
		}
		row = append(row, v)
	}
	if len(row) == 0 {
		return nil, ErrEmptyRow
	}

	return row, nil
}

// ParseRows parses every line as a row and builds the matrix.
// Used for rows passed as command-line arguments.
func ParseRows(lines []string) (*matrix.Matrix, error) {
	var b builder
	for _, line := range lines {
		if err := b.add(line); err != nil {
			return nil, err
		}
	}

	return b.build()
}

// ReadMatrix reads rows from r until an empty line or end of input.
func ReadMatrix(r io.Reader) (*matrix.Matrix, error) {
	return NewReader(r).ReadMatrix()
}

// Reader reads commands and matrices from one line-oriented stream, so an
// interactive session can interleave both.
type Reader struct {
	sc *bufio.Scanner
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its line ending.
// ok is false at end of input; Err then reports a read failure, if any.
func (r *Reader) ReadLine() (line string, ok bool) {
	if !r.sc.Scan() {
		return "", false
	}

	return strings.TrimRight(r.sc.Text(), "\r"), true
}

// Err returns the first non-EOF read error.
func (r *Reader) Err() error { return r.sc.Err() }

// ReadMatrix consumes rows up to and including the terminating empty line.
// A whitespace-only line also terminates.
func (r *Reader) ReadMatrix() (*matrix.Matrix, error) {
	var b builder
	for {
		line, ok := r.ReadLine()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		if err := b.add(line); err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, errors.Wrap(err, "read rows")
	}

	return b.build()
}

// builder accumulates rows and enforces the first row's width.
type builder struct {
	rows [][]float64
}

func (b *builder) add(line string) error {
	row, err := ParseRow(line)
	n := len(b.rows) + 1
	if len(b.rows) == 0 {
		if err != nil {
			return errors.Wrapf(err, "row %d", n)
		}
		b.rows = append(b.rows, row)
		return nil
	}
	want := len(b.rows[0])
	switch {
	case errors.Is(err, ErrEmptyRow):
		return errors.Wrapf(ErrNotEnoughColumns, "row %d: must have %d columns", n, want)
	case err != nil:
		return errors.Wrapf(err, "row %d", n)
	case len(row) > want:
		return errors.Wrapf(ErrTooManyColumns, "row %d: must have %d columns", n, want)
	case len(row) < want:
		return errors.Wrapf(ErrNotEnoughColumns, "row %d: must have %d columns", n, want)
	}
	b.rows = append(b.rows, row)

	return nil
}

func (b *builder) build() (*matrix.Matrix, error) {
	if len(b.rows) == 0 {
		return nil, ErrNoRows
	}
	m, err := matrix.FromValues(b.rows)
	if err != nil {
		return nil, errors.Wrap(err, "build matrix")
	}

	return m, nil
}
