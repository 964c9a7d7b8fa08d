package pageorder

import "fmt"

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{index: make(map[Page]int)}
}

// Insert records that before must precede after, together with the inverse.
// Both pages are interned on first use; a new page extends every existing
// row with an Unrelated column before its own row is added.
// Returns ErrSelfOrdering for before == after and ErrConflictingRule when the
// opposite rule was recorded earlier. Repeating a rule is a no-op.
func (t *Table) Insert(before, after Page) error {
	if before == after {
		return fmt.Errorf("%d|%d: %w", before, after, ErrSelfOrdering)
	}
	bi := t.intern(before)
	ai := t.intern(after)
	if t.rows[bi][ai] == Greater {
		return fmt.Errorf("%d|%d: %w", before, after, ErrConflictingRule)
	}
	t.rows[bi][ai] = Less
	t.rows[ai][bi] = Greater

	return nil
}

// Get returns the recorded relation of before to after.
// Returns ErrUnknownPage if either page was never interned and ErrUnrelated
// if both are known but no rule relates them.
func (t *Table) Get(before, after Page) (Ordering, error) {
	bi, ok := t.index[before]
	if !ok {
		return Unrelated, fmt.Errorf("page %d: %w", before, ErrUnknownPage)
	}
	ai, ok := t.index[after]
	if !ok {
		return Unrelated, fmt.Errorf("page %d: %w", after, ErrUnknownPage)
	}
	o := t.rows[bi][ai]
	if o == Unrelated {
		return Unrelated, fmt.Errorf("%d,%d: %w", before, after, ErrUnrelated)
	}

	return o, nil
}

// Compare is Get in cmp form: -1 if a precedes b, +1 if it follows.
// A page compared with itself is 0 without a lookup.
func (t *Table) Compare(a, b Page) (int, error) {
	if a == b {
		return 0, nil
	}
	o, err := t.Get(a, b)
	if err != nil {
		return 0, err
	}

	return int(o), nil
}

// Len returns the number of interned pages.
func (t *Table) Len() int {
	return len(t.pages)
}

// Pages returns the interned pages in first-seen order.
func (t *Table) Pages() []Page {
	out := make([]Page, len(t.pages))
	copy(out, t.pages)

	return out
}

// Has reports whether p appears in any rule.
func (t *Table) Has(p Page) bool {
	_, ok := t.index[p]

	return ok
}

// intern returns the dense index of p, adding a row and a column if needed.
func (t *Table) intern(p Page) int {
	if i, ok := t.index[p]; ok {
		return i
	}
	i := len(t.pages)
	t.index[p] = i
	t.pages = append(t.pages, p)
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], Unrelated)
	}
	t.rows = append(t.rows, make([]Ordering, len(t.pages)))

	return i
}
