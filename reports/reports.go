// Package reports classifies reactor level reports.
//
// A report is safe when its levels move strictly in one direction and every
// step changes by at least one and at most MaxStep. A report is damped-safe
// when removing at most one level makes it safe.
package reports

import (
	"io"

	"github.com/katalvlaran/aoc24/puzzle"
)

// MaxStep is the largest allowed change between adjacent levels.
const MaxStep = 3

// Report is one line of levels.
type Report []uint32

const dayNumber = 2

// Day is the registry entry for the reactor report puzzle.
var Day = puzzle.Day{
	Number: dayNumber,
	Title:  "Red-Nosed Reports",
	Solve:  Solve,
}

// Parse reads one space separated report per line.
func Parse(r io.Reader) ([]Report, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}
	out := make([]Report, 0, len(lines))
	for i, line := range lines {
		levels, err := puzzle.ParseUints[uint32](line, " ")
		if err != nil {
			return nil, puzzle.LineError(i+1, err)
		}
		out = append(out, levels)
	}

	return out, nil
}

// IsSafe reports whether r is strictly monotonic with bounded steps.
// An empty report is unsafe; a single level is safe.
func IsSafe(r Report) bool {
	if len(r) == 0 {
		return false
	}
	dir := 0
	for i := 0; i+1 < len(r); i++ {
		a, b := r[i], r[i+1]
		step := 1
		switch {
		case a == b:
			return false
		case a > b:
			step = -1
		}
		if dir != 0 && step != dir {
			return false
		}
		dir = step
		if puzzle.AbsDiff(a, b) > MaxStep {
			return false
		}
	}

	return true
}

// IsSafeDamped reports whether r is safe after removing at most one level.
func IsSafeDamped(r Report) bool {
	if IsSafe(r) {
		return true
	}
	if len(r) == 0 {
		return false
	}
	buf := make(Report, len(r)-1)
	for skip := range r {
		copy(buf, r[:skip])
		copy(buf[skip:], r[skip+1:])
		if IsSafe(buf) {
			return true
		}
	}

	return false
}

// Solve reports safe_reports_count and safe_damped_reports_count.
func Solve(r io.Reader, _ puzzle.Options) (puzzle.Result, error) {
	reps, err := Parse(r)
	if err != nil {
		return puzzle.Result{}, err
	}

	var safe, damped uint64
	for _, rep := range reps {
		if IsSafe(rep) {
			safe++
		}
		if IsSafeDamped(rep) {
			damped++
		}
	}

	return puzzle.Result{
		Day:   dayNumber,
		Part1: puzzle.Answer{Label: "safe_reports_count", Value: safe},
		Part2: puzzle.Answer{Label: "safe_damped_reports_count", Value: damped},
	}, nil
}
