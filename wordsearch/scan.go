package wordsearch

import "iter"

// Directions yields the directions in which a word of length n starting at
// cell i stays entirely inside the grid. Bounds are computed once for the
// cell, not per step.
func (g *Grid) Directions(i, n int) iter.Seq[Direction] {
	x, y := g.Coordinate(i)
	span := n - 1
	west := x-span >= 0
	east := x+span < g.Width
	north := y-span >= 0
	south := y+span < g.Height

	feasible := func(d Direction) bool {
		switch {
		case d.DX() < 0 && !west, d.DX() > 0 && !east:
			return false
		case d.DY() < 0 && !north, d.DY() > 0 && !south:
			return false
		}

		return true
	}

	return func(yield func(Direction) bool) {
		for _, d := range Directions {
			if !feasible(d) {
				continue
			}
			if !yield(d) {
				return
			}
		}
	}
}

// CountWord counts every occurrence of w in the grid: each start cell equal
// to w[0] contributes one match per feasible direction spelling the rest of
// w. Words shorter than two letters have no direction and count 0.
// Complexity: O(W×H×8×n).
func (g *Grid) CountWord(w Word) int {
	if len(w) < 2 {
		return 0
	}
	count := 0
	for i, l := range g.cells {
		if l != w[0] {
			continue
		}
		for d := range g.Directions(i, len(w)) {
			if g.matches(i, d, w) {
				count++
			}
		}
	}

	return count
}

// matches walks w from cell i in direction d, stopping at the first letter
// that differs. d must be feasible for i and len(w).
func (g *Grid) matches(i int, d Direction, w Word) bool {
	for step := 1; step < len(w); step++ {
		if g.cells[g.translate(i, d, step)] != w[step] {
			return false
		}
	}

	return true
}

// CountCross counts interior cells equal to center whose NW/SE and NE/SW
// diagonal neighbors are each {arm1, arm2} in either order. Border cells
// are skipped since one of their diagonals leaves the grid.
// Complexity: O(W×H).
func (g *Grid) CountCross(center, arm1, arm2 Letter) int {
	count := 0
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			i := g.index(x, y)
			if g.cells[i] != center {
				continue
			}
			nw := g.cells[g.translate(i, NorthWest, 1)]
			se := g.cells[g.translate(i, SouthEast, 1)]
			ne := g.cells[g.translate(i, NorthEast, 1)]
			sw := g.cells[g.translate(i, SouthWest, 1)]
			if isPair(nw, se, arm1, arm2) && isPair(ne, sw, arm1, arm2) {
				count++
			}
		}
	}

	return count
}

// isPair reports whether {a, b} equals {p, q} as an unordered pair.
func isPair(a, b, p, q Letter) bool {
	return (a == p && b == q) || (a == q && b == p)
}
