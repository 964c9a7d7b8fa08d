package wordsearch

import (
	"fmt"

	"github.com/katalvlaran/aoc24/puzzle"
)

var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("wordsearch: all rows must have the same length: %w", puzzle.ErrMalformedInput)
	// ErrInvalidLetter indicates a byte that is not one of X, M, A, S.
	ErrInvalidLetter = fmt.Errorf("wordsearch: invalid letter: %w", puzzle.ErrMalformedInput)
)
