package pageorder

import "fmt"

// Visitation states of a page during TopologicalOrder.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // page and everything after it fully explored
)

// topoSorter holds state for one topological traversal of an update.
type topoSorter struct {
	table *Table
	pages Update       // the update being ordered, in input order
	state map[Page]int // white/gray/black per page
	order Update       // post-order sequence
}

// TopologicalOrder returns the pages of u ordered so that for every rule
// X|Y between two of its pages, X comes first. Only rules whose both pages
// appear in u are followed. Ties are broken by position in u.
// Returns ErrUnknownPage if a page of u is in no rule and ErrCycleDetected if
// the rules among u's pages are cyclic.
func (t *Table) TopologicalOrder(u Update) (Update, error) {
	for _, p := range u {
		if !t.Has(p) {
			return nil, fmt.Errorf("page %d: %w", p, ErrUnknownPage)
		}
	}
	s := &topoSorter{
		table: t,
		pages: u,
		state: make(map[Page]int, len(u)),
		order: make(Update, 0, len(u)),
	}
	for _, p := range u {
		if s.state[p] == white {
			if err := s.visit(p); err != nil {
				return nil, err
			}
		}
	}
	// Reverse post-order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores every page of the update that must follow p.
func (s *topoSorter) visit(p Page) error {
	if s.state[p] == gray {
		return fmt.Errorf("page %d: %w", p, ErrCycleDetected)
	}
	if s.state[p] == black {
		return nil
	}
	s.state[p] = gray

	pi := s.table.index[p]
	for _, q := range s.pages {
		if q == p || s.table.rows[pi][s.table.index[q]] != Less {
			continue
		}
		if err := s.visit(q); err != nil {
			return err
		}
	}

	s.state[p] = black
	s.order = append(s.order, p)

	return nil
}
