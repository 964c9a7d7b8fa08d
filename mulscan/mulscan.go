// Package mulscan extracts multiplication instructions from corrupted memory.
//
// Only exact "mul(X,Y)" forms count, X and Y being non-empty runs of decimal
// digits. "do()" and "don't()" switch later multiplications on and off; they
// start switched on.
package mulscan

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc24/puzzle"
)

const (
	doPattern   = "do()"
	dontPattern = "don't()"
	mulPattern  = "mul("
)

// Kind tells instructions apart.
type Kind uint8

const (
	Mul Kind = iota
	Do
	Dont
)

// Instruction is one recognized token; Product is set for Mul only.
type Instruction struct {
	Kind    Kind
	Product uint64
}

const dayNumber = 3

// Day is the registry entry for the corrupted memory puzzle.
var Day = puzzle.Day{
	Number: dayNumber,
	Title:  "Mull It Over",
	Solve:  Solve,
}

// Scan returns every well-formed instruction of s in order. Anything else,
// including malformed mul calls, is skipped. An operand too large for a
// uint32 is reported as malformed input.
func Scan(s string) ([]Instruction, error) {
	var out []Instruction
	for i := 0; i < len(s); i++ {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, doPattern):
			out = append(out, Instruction{Kind: Do})
		case strings.HasPrefix(rest, dontPattern):
			out = append(out, Instruction{Kind: Dont})
		case strings.HasPrefix(rest, mulPattern):
			p, ok, err := parseMul(rest[len(mulPattern):])
			if err != nil {
				return nil, fmt.Errorf("offset %d: %w", i, err)
			}
			if ok {
				out = append(out, Instruction{Kind: Mul, Product: p})
			}
		}
	}

	return out, nil
}

// parseMul reads "X,Y)" at the start of s.
func parseMul(s string) (uint64, bool, error) {
	x, s, ok := digitsThen(s, ',')
	if !ok {
		return 0, false, nil
	}
	y, _, ok := digitsThen(s, ')')
	if !ok {
		return 0, false, nil
	}
	a, err := puzzle.ParseUint[uint32](x)
	if err != nil {
		return 0, false, err
	}
	b, err := puzzle.ParseUint[uint32](y)
	if err != nil {
		return 0, false, err
	}

	return uint64(a) * uint64(b), true, nil
}

// digitsThen splits s into a leading non-empty digit run terminated by term
// and the remainder after term.
func digitsThen(s string, term byte) (digits, rest string, ok bool) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || n == len(s) || s[n] != term {
		return "", s, false
	}

	return s[:n], s[n+1:], true
}

// Sum adds up the products of instrs. With conditional set, products seen
// after a Dont and before the next Do are left out.
func Sum(instrs []Instruction, conditional bool) uint64 {
	enabled := true
	var sum uint64
	for _, in := range instrs {
		switch in.Kind {
		case Do:
			enabled = true
		case Dont:
			enabled = false
		case Mul:
			if enabled || !conditional {
				sum += in.Product
			}
		}
	}

	return sum
}

// Solve reports mul_result and mul_with_do_result over the whole input.
func Solve(r io.Reader, _ puzzle.Options) (puzzle.Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return puzzle.Result{}, fmt.Errorf("mulscan: read input: %w", err)
	}
	instrs, err := Scan(string(data))
	if err != nil {
		return puzzle.Result{}, err
	}

	return puzzle.Result{
		Day:   dayNumber,
		Part1: puzzle.Answer{Label: "mul_result", Value: Sum(instrs, false)},
		Part2: puzzle.Answer{Label: "mul_with_do_result", Value: Sum(instrs, true)},
	}, nil
}
