package puzzle

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// InputOpener returns the input stream for a day. The Runner closes it.
type InputOpener func(day int) (io.ReadCloser, error)

// RunnerOption configures optional behavior of a Runner.
type RunnerOption func(*runnerOptions)

type runnerOptions struct {
	logger   zerolog.Logger
	parallel int
	solve    Options
}

func defaultRunnerOptions() runnerOptions {
	return runnerOptions{
		logger:   zerolog.Nop(),
		parallel: 1,
	}
}

// WithLogger sets the logger used for per-day progress events.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(o *runnerOptions) {
		o.logger = l
	}
}

// WithParallelism bounds how many days are solved at once.
// Values below 1 are treated as 1.
func WithParallelism(n int) RunnerOption {
	return func(o *runnerOptions) {
		if n < 1 {
			n = 1
		}
		o.parallel = n
	}
}

// WithSolveOptions forwards opts to every SolveFunc.
func WithSolveOptions(opts Options) RunnerOption {
	return func(o *runnerOptions) {
		o.solve = opts
	}
}

// Runner solves registered days over inputs supplied by an InputOpener.
type Runner struct {
	reg  *Registry
	open InputOpener
	opts runnerOptions
}

// NewRunner binds a registry to an input source.
func NewRunner(reg *Registry, open InputOpener, options ...RunnerOption) *Runner {
	opts := defaultRunnerOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return &Runner{reg: reg, open: open, opts: opts}
}

// Run solves the given days and returns their results in the same order.
// Unknown days fail before anything is opened. The first solver error
// cancels the days still waiting to start and is returned.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	selected := make([]Day, len(days))
	for i, n := range days {
		d, err := r.reg.Lookup(n)
		if err != nil {
			return nil, err
		}
		selected[i] = d
	}

	results := make([]Result, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.parallel)
	for i, d := range selected {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.solve(d)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solve opens the input of d, runs its SolveFunc and stamps the day number.
func (r *Runner) solve(d Day) (Result, error) {
	log := r.opts.logger.With().Int("day", d.Number).Logger()
	start := time.Now()
	log.Debug().Str("title", d.Title).Msg("solving")

	in, err := r.open(d.Number)
	if err != nil {
		return Result{}, fmt.Errorf("day %02d: open input: %w", d.Number, err)
	}
	defer in.Close()

	res, err := d.Solve(in, r.opts.solve)
	if err != nil {
		return Result{}, fmt.Errorf("day %02d: %w", d.Number, err)
	}
	res.Day = d.Number
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solved")

	return res, nil
}
