package puzzle_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/puzzle"
)

// constDay returns a Day whose solver ignores its input and reports n twice.
func constDay(n int) puzzle.Day {
	return puzzle.Day{
		Number: n,
		Title:  "const",
		Solve: func(r io.Reader, _ puzzle.Options) (puzzle.Result, error) {
			if _, err := io.ReadAll(r); err != nil {
				return puzzle.Result{}, err
			}
			return puzzle.Result{
				Part1: puzzle.Answer{Label: "first", Value: uint64(n)},
				Part2: puzzle.Answer{Label: "second", Value: uint64(n * 10)},
			}, nil
		},
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := puzzle.NewRegistry(constDay(1), constDay(1))
	assert.ErrorIs(t, err, puzzle.ErrDuplicateDay)

	_, err = puzzle.NewRegistry(puzzle.Day{Number: 2})
	assert.ErrorIs(t, err, puzzle.ErrNilSolver)
}

func TestRegistry_LookupAndDays(t *testing.T) {
	reg, err := puzzle.NewRegistry(constDay(5), constDay(1), constDay(3))
	require.NoError(t, err)

	d, err := reg.Lookup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Number)

	_, err = reg.Lookup(4)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	assert.Equal(t, []int{1, 3, 5}, reg.Numbers())
	assert.Len(t, reg.Days(), 3)
}

func TestResult_String(t *testing.T) {
	res := puzzle.Result{
		Day:   4,
		Part1: puzzle.Answer{Label: "xmas_count", Value: 18},
		Part2: puzzle.Answer{Label: "x_mas_count", Value: 9},
	}
	assert.Equal(t, "day 04\nxmas_count = 18\nx_mas_count = 9\n", res.String())
	assert.Equal(t, "04.txt", puzzle.InputName(4))
}
