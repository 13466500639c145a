package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreducer/internal/input"
	"github.com/katalvlaran/rowreducer/internal/render"
	"github.com/katalvlaran/rowreducer/matrix"
)

const (
	formREF  = matrix.FormREF
	formRREF = matrix.FormRREF
)

func (a *app) newReduceCmd(form matrix.Form) *cobra.Command {
	return &cobra.Command{
		Use:   form.String() + " [ROW...]",
		Short: "Reduce a matrix to " + form.Title(),
		Long: "Reduce a matrix to " + form.Title() + ".\n\n" +
			"Each ROW is a comma separated list of values. Without arguments rows are\n" +
			"read from standard input until an empty line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				m   *matrix.Matrix
				err error
			)
			if len(args) > 0 {
				m, err = input.ParseRows(args)
			} else {
				m, err = input.ReadMatrix(a.in)
			}
			if err != nil {
				return errors.Wrap(err, "read matrix")
			}
			p, err := a.newPrinter()
			if err != nil {
				return err
			}
			_, err = a.reduce(p, form, m)
			return err
		},
	}
}

// reduce streams one reduction to p and logs a summary.
func (a *app) reduce(p *render.Printer, form matrix.Form, m *matrix.Matrix) (*matrix.Matrix, error) {
	p.Begin(form, m)
	out, err := matrix.Reduce(m, form, matrix.WithTracers(p.Trace, render.LogTracer(a.log)))
	if err != nil {
		return nil, err
	}
	p.End(form, out)
	if err := p.Err(); err != nil {
		return nil, err
	}
	a.log.Info().
		Str("form", form.String()).
		Int("rows", out.Rows()).
		Int("cols", out.Cols()).
		Int("steps", p.Steps()).
		Msg("reduced")

	return out, nil
}
