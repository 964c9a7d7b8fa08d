package pageorder

// Page is a page number as printed in rules and updates.
type Page = uint32

// Ordering is the recorded relation between two pages.
type Ordering int8

const (
	// Less means the first page must come before the second.
	Less Ordering = -1
	// Unrelated means no rule relates the pair; it is the zero value.
	Unrelated Ordering = 0
	// Greater means the first page must come after the second.
	Greater Ordering = 1
)

// Invert swaps Less and Greater; Unrelated stays Unrelated.
func (o Ordering) Invert() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	}

	return "Unrelated"
}

// Update is one ordered list of pages to print.
type Update []Page

// Middle returns the page at index len/2. It panics on an empty update,
// which Parse never produces.
func (u Update) Middle() Page {
	return u[len(u)/2]
}

// Table is a sparse strict-order relation over pages.
//   - index maps a page to its row/column in rows.
//   - pages is the reverse lookup, pages[index[p]] == p.
//   - rows is square: len(rows) == len(pages) and every row has len(pages)
//     columns, Unrelated unless a rule set them.
type Table struct {
	index map[Page]int
	pages []Page
	rows  [][]Ordering
}
