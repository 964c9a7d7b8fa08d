package mulscan_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc24/mulscan"
	"github.com/katalvlaran/aoc24/puzzle"
)

func TestScan_MulForms(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"mul(44,46)", 2024},
		{"mul(123,4)", 492},
		{"mul(4*", 0},
		{"mul(6,9!", 0},
		{"?(12,34)", 0},
		{"mul ( 2 , 4 )", 0},
		{"mul(,4)", 0},
		{"mul(4,)", 0},
		{"mul(2,3", 0},
		{"mulmul(2,3)", 6},
		{"mul(mul(2,3))", 6},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			instrs, err := mulscan.Scan(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mulscan.Sum(instrs, false))
		})
	}
}

func TestScan_Conditionals(t *testing.T) {
	instrs, err := mulscan.Scan("don't()mul(2,3)do()mul(4,5)don't_mul(1,1)")
	require.NoError(t, err)
	assert.Equal(t, []mulscan.Instruction{
		{Kind: mulscan.Dont},
		{Kind: mulscan.Mul, Product: 6},
		{Kind: mulscan.Do},
		{Kind: mulscan.Mul, Product: 20},
		{Kind: mulscan.Mul, Product: 1},
	}, instrs)
	assert.Equal(t, uint64(27), mulscan.Sum(instrs, false))
	assert.Equal(t, uint64(21), mulscan.Sum(instrs, true))
}

func TestScan_Overflow(t *testing.T) {
	_, err := mulscan.Scan("mul(99999999999,2)")
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}

func TestSolve_Samples(t *testing.T) {
	res, err := mulscan.Solve(strings.NewReader(
		"xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))"), puzzle.Options{})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Label: "mul_result", Value: 161}, res.Part1)

	res, err = mulscan.Solve(strings.NewReader(
		"xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))"), puzzle.Options{})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Label: "mul_with_do_result", Value: 48}, res.Part2)
	assert.Equal(t, 3, res.Day)
}
