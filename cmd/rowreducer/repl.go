package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreducer/internal/input"
	"github.com/katalvlaran/rowreducer/matrix"
)

const (
	replBanner = "Row Reducer"
	replPrompt = ">"
	replHelp   = `~~~ Help ~~~
ref: Row reduces a matrix to Row Echelon Form.
rref: Row reduces a matrix to Reduced Row Echelon Form.
help: Shows this help.
exit: Terminates application.
~~~~~~~~~~~~
`
	replEnterRows = "Enter the rows of the matrix as comma separated values.\nEnter an empty line to finish.\n"
)

func (a *app) newREPLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive session: type ref or rref, then the rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.Context())
		},
	}
}

// runREPL reads commands until "exit" or end of input. Input errors are
// printed and the session goes on.
func (a *app) runREPL(ctx context.Context) error {
	p, err := a.newPrinter()
	if err != nil {
		return err
	}
	r := input.NewReader(a.in)

	fmt.Fprintln(a.out, replBanner)
	fmt.Fprint(a.out, replHelp)
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(a.out, replPrompt)
		line, ok := r.ReadLine()
		if !ok {
			fmt.Fprintln(a.out)
			return r.Err()
		}
		cmd := strings.ToLower(strings.TrimSpace(line))
		switch cmd {
		case "":
			continue
		case "help":
			fmt.Fprint(a.out, replHelp)
		case "exit":
			fmt.Fprintln(a.out, "Quitting...")
			return nil
		case "ref", "rref":
			form := matrix.FormREF
			if cmd == "rref" {
				form = matrix.FormRREF
			}
			fmt.Fprint(a.out, replEnterRows)
			m, err := r.ReadMatrix()
			if err != nil {
				fmt.Fprintf(a.out, "Error: %v\n", err)
				continue
			}
			if _, err := a.reduce(p, form, m); err != nil {
				return err
			}
		default:
			fmt.Fprintf(a.out, "Unknown command: %q\n", line)
			fmt.Fprint(a.out, replHelp)
		}
	}
}
