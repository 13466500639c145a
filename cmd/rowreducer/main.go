package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/katalvlaran/rowreducer/internal/cliconfig"
	"github.com/katalvlaran/rowreducer/internal/logging"
	"github.com/katalvlaran/rowreducer/internal/render"
)

const longHelp = `Row reduce real matrices to Row Echelon Form (REF) or Reduced Row
Echelon Form (RREF), printing every elementary row operation on the way.

Rows are comma separated values, one row per argument or per line.
Configuration comes from flags, ROWREDUCER_* environment variables and
$HOME/.rowreducer/config.toml, in that order of precedence.`

var exampleUsage = strings.TrimSpace(`
  rowreducer rref -- "2,1,-1" "-3,-1,2" "-2,1,2"
  rowreducer ref --places 4 < rows.txt
  rowreducer batch matrices.toml --workers 8
  rowreducer watch matrices.toml --steps=false
  rowreducer repl
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration and I/O shared by every subcommand.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	log     zerolog.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: cliconfig.DefaultConfig(), log: zerolog.Nop(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "rowreducer",
		Short:         "Row reduce matrices to REF or RREF, step by step",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolveConfig(cmd)
		},
		// no subcommand behaves like the original interactive program
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, cliconfig.FlagConfig, "", "path to config file (default: $HOME/.rowreducer/config.toml)")
	pf.IntVar(&a.cfg.Places, cliconfig.FlagPlaces, a.cfg.Places, "round printed values to this many decimals (-1 prints values as stored)")
	pf.BoolVar(&a.cfg.ShowSteps, cliconfig.FlagSteps, a.cfg.ShowSteps, "print every row operation")
	pf.BoolVar(&a.cfg.Color, cliconfig.FlagColor, a.cfg.Color, "highlight pivots with 24-bit ANSI colour")
	pf.StringVar(&a.cfg.PivotColor, cliconfig.FlagPivotColor, a.cfg.PivotColor, "pivot highlight colour (#rrggbb or rgb(r,g,b))")
	pf.StringVar(&a.cfg.LogLevel, cliconfig.FlagLogLevel, a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.IntVar(&a.cfg.Workers, cliconfig.FlagWorkers, a.cfg.Workers, "concurrent reductions in batch mode")

	root.AddCommand(
		a.newReduceCmd(formREF),
		a.newReduceCmd(formRREF),
		a.newREPLCmd(),
		a.newBatchCmd(),
		a.newWatchCmd(),
	)

	return root
}

// resolveConfig layers file and environment under the explicitly set flags,
// validates the result and builds the logger.
func (a *app) resolveConfig(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if err := cliconfig.Load(&a.cfg, a.cfgPath, changed); err != nil {
		return err
	}
	log, err := logging.New(a.cfg.LogLevel, a.errOut)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug().Interface("config", a.cfg).Msg("configuration")

	return nil
}

// newPrinter builds a printer honouring the display settings.
func (a *app) newPrinter() (*render.Printer, error) {
	opts := render.Options{Places: a.cfg.Places, ShowSteps: a.cfg.ShowSteps}
	if a.cfg.Color {
		opts.PivotColor = a.cfg.PivotColor
	}

	return render.NewPrinter(a.out, opts)
}

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		log, _ := logging.New(logging.DefaultLevel, os.Stderr)
		log.Error().Err(err).Msg("rowreducer")
		os.Exit(1)
	}
}
