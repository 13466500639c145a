package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rowreducer/internal/batch"
)

func (a *app) newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Reduce every [[matrix]] entry of a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(a.log.WithContext(cmd.Context()), args[0])
		},
	}
}

func (a *app) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Run a batch file again every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx = a.log.WithContext(ctx)

			a.log.Info().Str("file", args[0]).Msg("watching")
			return batch.Watch(ctx, args[0], func(ctx context.Context) error {
				return a.runBatch(ctx, args[0])
			})
		},
	}
}

// runBatch loads, reduces and prints one batch file.
func (a *app) runBatch(ctx context.Context, path string) error {
	jobs, err := batch.Load(path)
	if err != nil {
		return err
	}
	results, err := batch.Run(ctx, jobs, a.cfg.Workers)
	if err != nil {
		return err
	}
	p, err := a.newPrinter()
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(a.out, "== %s ==\n", res.Job.Name)
		if err := p.PrintReduction(res.Job.Form, res.Job.Matrix, res.Out, res.Steps); err != nil {
			return err
		}
	}

	return nil
}
