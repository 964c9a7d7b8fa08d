package wordsearch

import (
	"io"

	"github.com/katalvlaran/aoc24/puzzle"
)

const dayNumber = 4

// Day is the registry entry for the word search puzzle.
var Day = puzzle.Day{
	Number: dayNumber,
	Title:  "Ceres Search",
	Solve:  Solve,
}

// Solve parses the grid and reports the number of XMAS placements and the
// number of MAS crosses centered on A.
func Solve(r io.Reader, _ puzzle.Options) (puzzle.Result, error) {
	g, err := Parse(r)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{
		Day:   dayNumber,
		Part1: puzzle.Answer{Label: "xmas_count", Value: uint64(g.CountWord(XMAS))},
		Part2: puzzle.Answer{Label: "x_mas_count", Value: uint64(g.CountCross(A, M, S))},
	}, nil
}
