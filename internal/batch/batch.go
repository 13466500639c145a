// Package batch reduces named matrices read from a TOML file.
//
// File layout:
//
//	[[matrix]]
//	name = "system"
//	form = "rref"
//	rows = [[2, 1, -1], [-3, -1, 2], [-2, 1, 2]]
//
// Jobs are reduced concurrently; results keep the file order.
package batch

import (
	"context"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rowreducer/matrix"
)

// ErrNoJobs is returned when a batch file declares no matrices.
var ErrNoJobs = errors.New("batch: no [[matrix]] entries")

// Job is one named reduction.
type Job struct {
	Name   string
	Form   matrix.Form
	Matrix *matrix.Matrix
}

// Result pairs a job with its reduced matrix and the steps taken.
type Result struct {
	Job   Job
	Out   *matrix.Matrix
	Steps []matrix.Step
}

type fileEntry struct {
	Name string  `toml:"name"`
	Form string  `toml:"form"`
	Rows [][]any `toml:"rows"`
}

type file struct {
	Matrix []fileEntry `toml:"matrix"`
}

// Load reads and parses the batch file at path.
func Load(path string) ([]Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read batch file")
	}
	jobs, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return jobs, nil
}

// Parse decodes batch TOML. Integers and floats may be mixed in rows;
// an entry without a name is called "matrix N" (1-based).
func Parse(data []byte) ([]Job, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode toml")
	}
	if len(f.Matrix) == 0 {
		return nil, ErrNoJobs
	}

	jobs := make([]Job, 0, len(f.Matrix))
	for i, e := range f.Matrix {
		name := e.Name
		if name == "" {
			name = "matrix " + strconv.Itoa(i+1)
		}
		job, err := e.job(name)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %q", name)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (e fileEntry) job(name string) (Job, error) {
	form, err := matrix.ParseForm(e.Form)
	if err != nil {
		return Job{}, err
	}
	grid := make([][]float64, len(e.Rows))
	for i, row := range e.Rows {
		grid[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := toFloat(cell)
			if err != nil {
				return Job{}, errors.Wrapf(err, "row %d column %d", i+1, j+1)
			}
			grid[i][j] = v
		}
	}
	m, err := matrix.FromValues(grid)
	if err != nil {
		return Job{}, err
	}

	return Job{Name: name, Form: form, Matrix: m}, nil
}

func toFloat(cell any) (float64, error) {
	var v float64
	switch x := cell.(type) {
	case int64:
		v = float64(x)
	case float64:
		v = x
	default:
		return 0, errors.Errorf("value %v is not a number", cell)
	}
	if err := matrix.ValidateFinite(v); err != nil {
		return 0, err
	}

	return v, nil
}

// Run reduces every job with at most workers running at once and returns the
// results in job order. The first failure cancels the jobs not yet started.
// Progress is logged through zerolog.Ctx(ctx).
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		return nil, errors.Errorf("workers must be positive, got %d", workers)
	}
	log := zerolog.Ctx(ctx)
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := &matrix.Recorder{}
			out, err := matrix.Reduce(job.Matrix, job.Form, matrix.WithTracer(rec.Trace))
			if err != nil {
				return errors.Wrapf(err, "reduce %q", job.Name)
			}
			steps := rec.Steps()
			results[i] = Result{Job: job, Out: out, Steps: steps}
			log.Info().
				Str("name", job.Name).
				Str("form", job.Form.String()).
				Int("rows", out.Rows()).
				Int("cols", out.Cols()).
				Int("steps", len(steps)).
				Msg("reduced")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
