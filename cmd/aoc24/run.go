package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc24/puzzle"
)

// errInputNeedsOneDay indicates --input was combined with several days.
var errInputNeedsOneDay = errors.New("--input requires exactly one day")

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every registered day",
		Long: `Solves each day over its input and prints both labelled answers.

Inputs are read from <data-dir>/DD.txt unless the config maps the day to
another file or --input is given for a single day.`,
		RunE: a.runDays,
	}
	f := cmd.Flags()
	f.StringVar(&a.input, "input", "", "input file for a single day")
	f.BoolVar(&a.strict, "strict", false, "verify rule consistency instead of trusting the input")
	f.IntVar(&a.parallel, "parallel", 0, "number of days solved at once")

	return cmd
}

func (a *app) runDays(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		days = a.reg.Numbers()
	}
	if a.input != "" && len(days) != 1 {
		return errInputNeedsOneDay
	}

	runner := puzzle.NewRunner(a.reg, a.opener(),
		puzzle.WithLogger(a.log),
		puzzle.WithParallelism(a.cfg.Parallel),
		puzzle.WithSolveOptions(puzzle.Options{Strict: a.cfg.Strict}),
	)

	start := time.Now()
	results, err := runner.Run(cmd.Context(), days)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprint(cmd.OutOrStdout(), res.String())
	}
	a.log.Info().Ints("days", days).Dur("elapsed", time.Since(start)).Msg("done")

	return nil
}

// opener resolves a day to its input file.
func (a *app) opener() puzzle.InputOpener {
	return func(day int) (io.ReadCloser, error) {
		path := a.cfg.InputPath(day)
		if a.input != "" {
			path = a.input
		}
		a.log.Debug().Int("day", day).Str("path", path).Msg("opening input")

		return os.Open(path)
	}
}

// parseDays converts positional arguments into day numbers.
func parseDays(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid day %q", s)
		}
		out = append(out, n)
	}

	return out, nil
}
