// Package render prints reductions the way the interactive session shows
// them: the input table, every step with its resulting table, then the
// final table.
package render

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1"

	"github.com/katalvlaran/rowreducer/matrix"
)

const (
	ansiReset    = "\x1b[0m"
	ansiFgFormat = "\x1b[38;2;%d;%d;%dm"
)

// Options configures a Printer.
type Options struct {
	// Places rounds printed values; a negative value prints them as stored.
	Places int
	// ShowSteps prints each step; otherwise only the input and the result.
	ShowSteps bool
	// PivotColor highlights pivot cells ("#rrggbb", "rgb(r,g,b)"); empty disables colour.
	PivotColor string
}

// Printer writes reductions to w. It is not safe for concurrent use.
type Printer struct {
	w         io.Writer
	places    int
	showSteps bool
	pivotOn   string // ANSI prefix, "" when colour is off

	step int
	err  error
}

// NewPrinter validates opts and returns a Printer.
func NewPrinter(w io.Writer, opts Options) (*Printer, error) {
	p := &Printer{w: w, places: opts.Places, showSteps: opts.ShowSteps}
	if opts.PivotColor != "" {
		c, err := colors.Parse(opts.PivotColor)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse pivot colour %q", opts.PivotColor)
		}
		rgb := c.ToRGB()
		p.pivotOn = fmt.Sprintf(ansiFgFormat, rgb.R, rgb.G, rgb.B)
	}

	return p, nil
}

// Begin prints the banner and the input table, and resets step numbering.
func (p *Printer) Begin(form matrix.Form, in *matrix.Matrix) {
	p.step = 0
	p.printf("Row reducing matrix to %s:\n", form.Title())
	p.printTable(in, nil)
}

// Trace prints one step. Pass p.Trace to matrix.WithTracer to stream steps.
func (p *Printer) Trace(s matrix.Step) {
	p.step++
	if !p.showSteps {
		return
	}
	p.printf("Step %d: %s\n", p.step, s.Message)
	row, col := pivotCell(s)
	p.printTable(s.After, func(i, j int) bool { return i == row && j == col })
}

// pivotCell locates the pivot of s in its After table. Eliminations write a
// zero into Target, so their pivot sits in the Source row; interchanges move
// it into Target and scaling happens in place.
func pivotCell(s matrix.Step) (row, col int) {
	switch s.Kind {
	case matrix.StepEliminateBelow, matrix.StepEliminateAbove:
		return s.Source, s.Column
	default:
		return s.Target, s.Column
	}
}

// End prints the result table with every leading entry highlighted.
func (p *Printer) End(form matrix.Form, out *matrix.Matrix) {
	p.printf("Matrix in %s:\n", form.Title())
	lead := out.LeadingColumns()
	p.printTable(out, func(i, j int) bool { return lead[i] == j })
}

// PrintReduction prints a finished reduction with its recorded steps.
func (p *Printer) PrintReduction(form matrix.Form, in, out *matrix.Matrix, steps []matrix.Step) error {
	p.Begin(form, in)
	for _, s := range steps {
		p.Trace(s)
	}
	p.End(form, out)

	return p.Err()
}

// Steps returns how many steps were traced since the last Begin.
func (p *Printer) Steps() int { return p.step }

// Err returns the first write error and clears it.
func (p *Printer) Err() error {
	err := p.err
	p.err = nil

	return err
}

func (p *Printer) printTable(m *matrix.Matrix, pivot func(i, j int) bool) {
	var opts []matrix.FormatOption
	if p.places >= 0 {
		opts = append(opts, matrix.WithDisplayPlaces(p.places))
	}
	if p.pivotOn != "" && pivot != nil {
		opts = append(opts, matrix.WithCellDecorator(func(i, j int, padded string) string {
			if !pivot(i, j) {
				return padded
			}
			return p.pivotOn + padded + ansiReset
		}))
	}
	p.printf("%s\n", m.Format(opts...))
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "write output")
	}
}
