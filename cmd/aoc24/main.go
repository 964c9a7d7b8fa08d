// Command aoc24 solves the daily puzzles over their input files.
//
//	aoc24 run          # every registered day, inputs from data/DD.txt
//	aoc24 run 4 5      # selected days
//	aoc24 run 5 --input sample.txt --strict
//	aoc24 list
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.execute(ctx, os.Args[1:]); err != nil {
		a.log.Error().Err(err).Msg("aoc24 failed")
		stop()
		os.Exit(1)
	}
}
