package reports_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/puzzle"
	"github.com/katalvlaran/aoc24/reports"
)

const sample = `7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`

func TestSolve_Sample(t *testing.T) {
	res, err := reports.Solve(strings.NewReader(sample), puzzle.Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Day)
	assert.Equal(t, puzzle.Answer{Label: "safe_reports_count", Value: 2}, res.Part1)
	assert.Equal(t, puzzle.Answer{Label: "safe_damped_reports_count", Value: 4}, res.Part2)
}

func TestIsSafe(t *testing.T) {
	cases := []struct {
		name   string
		report reports.Report
		safe   bool
		damped bool
	}{
		{"Empty", nil, false, false},
		{"Single", reports.Report{5}, true, true},
		{"Decreasing", reports.Report{7, 6, 4, 2, 1}, true, true},
		{"JumpTooBig", reports.Report{1, 2, 7, 8, 9}, false, false},
		{"DirectionChange", reports.Report{1, 3, 2, 4, 5}, false, true},
		{"Plateau", reports.Report{8, 6, 4, 4, 1}, false, true},
		{"FirstLevelBad", reports.Report{9, 1, 2, 3}, false, true},
		{"LastLevelBad", reports.Report{1, 2, 3, 9}, false, true},
		{"TwoBad", reports.Report{1, 1, 1}, false, false},
		{"StepOfThree", reports.Report{1, 4, 7}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.safe, reports.IsSafe(tc.report))
			assert.Equal(t, tc.damped, reports.IsSafeDamped(tc.report))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := reports.Parse(strings.NewReader("1 2 3\n1  2\n"))
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.Contains(t, err.Error(), "line 2")
}
