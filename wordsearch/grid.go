package wordsearch

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc24/puzzle"
)

// NewGrid builds a Grid from text rows. The first row fixes Width and the
// row count fixes Height; no rows yields an empty 0×0 grid.
// Returns ErrNonRectangular if a row length differs and ErrInvalidLetter
// for any byte outside the alphabet, both annotated with the 1-based line.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return &Grid{}, nil
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]Letter, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, puzzle.LineError(y+1, fmt.Errorf("%w: got %d, want %d", ErrNonRectangular, len(row), w))
		}
		for x := 0; x < len(row); x++ {
			l, ok := ParseLetter(row[x])
			if !ok {
				return nil, puzzle.LineError(y+1, fmt.Errorf("%w: %q at column %d", ErrInvalidLetter, row[x], x+1))
			}
			cells = append(cells, l)
		}
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// Parse reads one grid row per line from r.
func Parse(r io.Reader) (*Grid, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}

	return NewGrid(lines)
}

// Len returns the number of cells, Width*Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the letter at (x,y); false when (x,y) is out of bounds.
func (g *Grid) At(x, y int) (Letter, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}

	return g.cells[g.index(x, y)], true
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(i int) (x, y int) {
	return i % g.Width, i / g.Width
}

// translate moves index i by steps unit steps in direction d.
// The caller guarantees the destination is in bounds.
func (g *Grid) translate(i int, d Direction, steps int) int {
	return i + steps*(d.DX()+d.DY()*g.Width)
}

// String renders the grid back to its text form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, l := range g.cells {
		sb.WriteString(l.String())
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
