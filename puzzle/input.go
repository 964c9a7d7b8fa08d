package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// maxLineSize bounds a single input line; puzzle inputs are far below it.
const maxLineSize = 1 << 20

// ReadLines reads r fully and splits it into lines without terminators.
// A trailing carriage return is dropped so CRLF inputs parse the same.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read input: %w", err)
	}

	return lines, nil
}

// ParseUint parses a base-10 unsigned integer that must fit in T.
// Any failure wraps ErrMalformedInput.
func ParseUint[T constraints.Unsigned](s string) (T, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an unsigned integer", ErrMalformedInput, s)
	}
	if uint64(T(v)) != v {
		return 0, fmt.Errorf("%w: %q overflows", ErrMalformedInput, s)
	}

	return T(v), nil
}

// ParseUints splits s on sep and parses every field with ParseUint.
func ParseUints[T constraints.Unsigned](s, sep string) ([]T, error) {
	fields := strings.Split(s, sep)
	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := ParseUint[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// AbsDiff returns |a - b| without overflowing unsigned operands.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}
