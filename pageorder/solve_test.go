package pageorder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/pageorder"
	"github.com/katalvlaran/aoc24/puzzle"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestParse_Sample(t *testing.T) {
	tbl, updates, err := pageorder.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 7, tbl.Len())
	require.Len(t, updates, 6)
	assert.Equal(t, pageorder.Update{75, 29, 13}, updates[2])
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		line string
	}{
		{"MissingSeparator", "1|2\n2|3\n", pageorder.ErrMissingSeparator, ""},
		{"RuleWithoutBar", "1|2\n1-3\n\n1,2\n", pageorder.ErrMalformedRule, "line 2"},
		{"RuleBadNumber", "1|x\n\n1\n", puzzle.ErrMalformedInput, "line 1"},
		{"SelfRule", "4|4\n\n4\n", pageorder.ErrSelfOrdering, "line 1"},
		{"ConflictingRule", "1|2\n2|1\n\n1,2\n", pageorder.ErrConflictingRule, "line 2"},
		{"UpdateBadNumber", "1|2\n\n1,,2\n", puzzle.ErrMalformedInput, "line 3"},
		{"DuplicatePage", "1|2\n\n1,2,1\n", pageorder.ErrDuplicatePage, "line 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := pageorder.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParse_SkipsExtraBlankLines accepts blank lines among the updates.
func TestParse_SkipsExtraBlankLines(t *testing.T) {
	_, updates, err := pageorder.Parse(strings.NewReader("1|2\n\n\n1,2\n\n2,1\n"))
	require.NoError(t, err)
	assert.Len(t, updates, 2)
}

func TestSolve_Sample(t *testing.T) {
	for _, strict := range []bool{false, true} {
		res, err := pageorder.Solve(strings.NewReader(sample), puzzle.Options{Strict: strict})
		require.NoError(t, err)
		assert.Equal(t, 5, res.Day)
		assert.Equal(t, puzzle.Answer{Label: "correct_middle_page_sum", Value: 143}, res.Part1)
		assert.Equal(t, puzzle.Answer{Label: "incorrect_middle_page_sum", Value: 123}, res.Part2)
	}
}

// TestSolve_UnrelatedPages fails instead of guessing when an update pairs
// pages that no chain of rules connects.
func TestSolve_UnrelatedPages(t *testing.T) {
	_, err := pageorder.Solve(strings.NewReader("1|2\n3|4\n\n1,3\n"), puzzle.Options{})
	require.ErrorIs(t, err, pageorder.ErrUnrelated)
	assert.Contains(t, err.Error(), "update 1")
}

// TestSolve_Strict reports pages no rule mentions, which the default mode
// tolerates in single-page updates.
func TestSolve_Strict(t *testing.T) {
	in := "1|2\n\n9\n"
	res, err := pageorder.Solve(strings.NewReader(in), puzzle.Options{})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), res.Part1.Value)

	_, err = pageorder.Solve(strings.NewReader(in), puzzle.Options{Strict: true})
	assert.ErrorIs(t, err, pageorder.ErrUnknownPage)
}

// TestSolve_Cycle rejects updates whose own rules are cyclic.
func TestSolve_Cycle(t *testing.T) {
	_, err := pageorder.Solve(strings.NewReader("1|2\n2|3\n3|1\n\n3,2,1\n"), puzzle.Options{})
	assert.ErrorIs(t, err, pageorder.ErrCycleDetected)
}
