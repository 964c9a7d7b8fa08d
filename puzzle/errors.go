package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates the puzzle input does not have the expected shape.
	ErrMalformedInput = errors.New("puzzle: malformed input")
	// ErrUnknownDay indicates no solver is registered for a day number.
	ErrUnknownDay = errors.New("puzzle: unknown day")
	// ErrDuplicateDay indicates two solvers were registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: duplicate day")
	// ErrNilSolver indicates a Day was registered without a SolveFunc.
	ErrNilSolver = errors.New("puzzle: day has no solve function")
)

// LineError attaches a 1-based line number to err.
func LineError(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
