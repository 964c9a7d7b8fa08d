package pageorder

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/aoc24/puzzle"
)

const dayNumber = 5

// Day is the registry entry for the print queue puzzle.
var Day = puzzle.Day{
	Number: dayNumber,
	Title:  "Print Queue",
	Solve:  Solve,
}

// Solve sums the middle pages of the updates already in order, then sorts
// the others and sums their middle pages.
// With opts.Strict every update is first checked for cyclic rules and every
// sorted update is compared with its topological order.
func Solve(r io.Reader, opts puzzle.Options) (puzzle.Result, error) {
	t, updates, err := Parse(r)
	if err != nil {
		return puzzle.Result{}, err
	}

	var correct, repaired uint64
	for n, u := range updates {
		sum, sorted, err := t.solveUpdate(u, opts.Strict)
		if err != nil {
			return puzzle.Result{}, fmt.Errorf("update %d: %w", n+1, err)
		}
		if sorted {
			correct += sum
		} else {
			repaired += sum
		}
	}

	return puzzle.Result{
		Day:   dayNumber,
		Part1: puzzle.Answer{Label: "correct_middle_page_sum", Value: correct},
		Part2: puzzle.Answer{Label: "incorrect_middle_page_sum", Value: repaired},
	}, nil
}

// solveUpdate classifies u and returns its middle page, sorting u in place
// when it is out of order.
func (t *Table) solveUpdate(u Update, strict bool) (uint64, bool, error) {
	var topo Update
	if strict {
		var err error
		if topo, err = t.TopologicalOrder(u); err != nil {
			return 0, false, err
		}
	}

	cmp, err := t.Closure(u)
	if err != nil {
		return 0, false, err
	}
	sorted, err := IsSortedBy(u, cmp)
	if err != nil {
		return 0, false, err
	}
	if !sorted {
		if err := SortBy(u, cmp); err != nil {
			return 0, false, err
		}
	}
	if strict && !slices.Equal(topo, u) {
		return 0, false, ErrInconsistentOrder
	}

	return uint64(u.Middle()), sorted, nil
}
