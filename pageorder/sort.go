package pageorder

import (
	"fmt"
	"slices"
)

// Comparator orders two pages cmp-style (-1, 0, +1) or reports why it
// cannot. Table.Compare and the result of Table.Closure are Comparators.
type Comparator func(a, b Page) (int, error)

// IsSortedBy reports whether cmp orders every adjacent pair of u strictly
// increasing. The first comparator error is returned.
func IsSortedBy(u Update, cmp Comparator) (bool, error) {
	for i := 0; i+1 < len(u); i++ {
		c, err := cmp(u[i], u[i+1])
		if err != nil {
			return false, err
		}
		if c >= 0 {
			return false, nil
		}
	}

	return true, nil
}

// SortBy reorders u in place with a comparison sort driven by cmp.
// The first comparator error is returned and u is then left in an
// unspecified permutation.
func SortBy(u Update, cmp Comparator) error {
	var firstErr error
	slices.SortFunc(u, func(a, b Page) int {
		c, err := cmp(a, b)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return c
	})

	return firstErr
}

// IsSorted reports whether u follows the rules, reading pairs that no rule
// relates directly through chains of rules between u's own pages.
func (t *Table) IsSorted(u Update) (bool, error) {
	cmp, err := t.Closure(u)
	if err != nil {
		return false, err
	}

	return IsSortedBy(u, cmp)
}

// Sort reorders u in place so that it follows the rules, using the same
// comparator as IsSorted.
func (t *Table) Sort(u Update) error {
	cmp, err := t.Closure(u)
	if err != nil {
		return err
	}

	return SortBy(u, cmp)
}

// Closure returns a Comparator over the pages of u that relates a to b when
// a chain of rules leads from one to the other using only pages of u.
// Rules through pages outside u are ignored, since the whole rule set need
// not be acyclic. Returns ErrCycleDetected if the rules among u's pages are
// cyclic. The comparator reports ErrUnrelated for pairs no chain connects
// and ErrUnknownPage for pages outside u.
// Complexity: O(k³) for an update of k pages; comparisons are O(1).
func (t *Table) Closure(u Update) (Comparator, error) {
	k := len(u)
	local := make(map[Page]int, k)
	for i, p := range u {
		local[p] = i
	}

	reach := make([][]bool, k)
	for i := range reach {
		reach[i] = make([]bool, k)
	}
	stack := make([]int, 0, k)
	for i := range u {
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			vi, ok := t.index[u[v]]
			if !ok {
				continue
			}
			for j, q := range u {
				qi, ok := t.index[q]
				if !ok || reach[i][j] || t.rows[vi][qi] != Less {
					continue
				}
				reach[i][j] = true
				stack = append(stack, j)
			}
		}
		if reach[i][i] {
			return nil, fmt.Errorf("page %d: %w", u[i], ErrCycleDetected)
		}
	}

	return func(a, b Page) (int, error) {
		if a == b {
			return 0, nil
		}
		ai, ok := local[a]
		if !ok {
			return 0, fmt.Errorf("page %d: %w", a, ErrUnknownPage)
		}
		bi, ok := local[b]
		if !ok {
			return 0, fmt.Errorf("page %d: %w", b, ErrUnknownPage)
		}
		switch {
		case reach[ai][bi]:
			return -1, nil
		case reach[bi][ai]:
			return 1, nil
		}

		return 0, fmt.Errorf("%d,%d: %w", a, b, ErrUnrelated)
	}, nil
}
