// Package locations reconciles two columns of location IDs.
//
// Part 1 pairs the columns after sorting each and sums the distances of the
// pairs. Part 2 weights every left ID by how often it occurs on the right.
package locations

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/aoc24/puzzle"
)

// columnSeparator sits between the two IDs of a line.
const columnSeparator = "   "

// ErrMissingSeparator indicates a line without the three-space separator.
var ErrMissingSeparator = fmt.Errorf("locations: line must be <id>%s<id>: %w", columnSeparator, puzzle.ErrMalformedInput)

const dayNumber = 1

// Day is the registry entry for the location list puzzle.
var Day = puzzle.Day{
	Number: dayNumber,
	Title:  "Historian Hysteria",
	Solve:  Solve,
}

// Parse reads the left and right columns.
func Parse(r io.Reader) (left, right []uint32, err error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, nil, err
	}
	left = make([]uint32, 0, len(lines))
	right = make([]uint32, 0, len(lines))
	for i, line := range lines {
		l, rt, ok := strings.Cut(line, columnSeparator)
		if !ok {
			return nil, nil, puzzle.LineError(i+1, ErrMissingSeparator)
		}
		lv, err := puzzle.ParseUint[uint32](l)
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, err)
		}
		rv, err := puzzle.ParseUint[uint32](rt)
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, err)
		}
		left = append(left, lv)
		right = append(right, rv)
	}

	return left, right, nil
}

// TotalDistance sorts copies of both columns and sums |left[i] - right[i]|.
func TotalDistance(left, right []uint32) uint64 {
	l, r := slices.Clone(left), slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	var sum uint64
	for i := range min(len(l), len(r)) {
		sum += uint64(puzzle.AbsDiff(l[i], r[i]))
	}

	return sum
}

// Similarity sums every left ID multiplied by its count in right.
func Similarity(left, right []uint32) uint64 {
	counts := make(map[uint32]uint64, len(right))
	for _, v := range right {
		counts[v]++
	}

	var sum uint64
	for _, v := range left {
		sum += uint64(v) * counts[v]
	}

	return sum
}

// Solve reports total_distance and similarity_score.
func Solve(r io.Reader, _ puzzle.Options) (puzzle.Result, error) {
	left, right, err := Parse(r)
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{
		Day:   dayNumber,
		Part1: puzzle.Answer{Label: "total_distance", Value: TotalDistance(left, right)},
		Part2: puzzle.Answer{Label: "similarity_score", Value: Similarity(left, right)},
	}, nil
}
