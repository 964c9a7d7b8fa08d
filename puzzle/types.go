package puzzle

import (
	"fmt"
	"io"
	"strings"
)

// Answer is one labelled puzzle answer, e.g. "total_distance = 11".
type Answer struct {
	Label string
	Value uint64
}

// String formats the answer as "label = value".
func (a Answer) String() string {
	return fmt.Sprintf("%s = %d", a.Label, a.Value)
}

// Result carries both answers computed for a day.
type Result struct {
	Day   int
	Part1 Answer
	Part2 Answer
}

// String renders the result the way the CLI prints it.
func (r Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "day %02d\n", r.Day)
	sb.WriteString(r.Part1.String())
	sb.WriteByte('\n')
	sb.WriteString(r.Part2.String())
	sb.WriteByte('\n')

	return sb.String()
}

// Options are the solver knobs the CLI can set. Solvers ignore what they do
// not understand.
type Options struct {
	// Strict asks solvers that trust their input to verify it instead.
	Strict bool
}

// SolveFunc reads a whole puzzle input from r and computes both answers.
type SolveFunc func(r io.Reader, opts Options) (Result, error)

// Day describes one registered puzzle.
type Day struct {
	Number int
	Title  string
	Solve  SolveFunc
}

// InputName returns the conventional input file name for a day ("05.txt").
func InputName(day int) string {
	return fmt.Sprintf("%02d.txt", day)
}
