package puzzle

import (
	"fmt"
	"sort"
)

// Registry maps day numbers to their solvers. It is immutable once built.
type Registry struct {
	days map[int]Day
}

// NewRegistry builds a Registry from days.
// Returns ErrNilSolver for a Day without Solve and ErrDuplicateDay when two
// entries share a number.
func NewRegistry(days ...Day) (*Registry, error) {
	reg := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		if d.Solve == nil {
			return nil, fmt.Errorf("day %d: %w", d.Number, ErrNilSolver)
		}
		if _, ok := reg.days[d.Number]; ok {
			return nil, fmt.Errorf("day %d: %w", d.Number, ErrDuplicateDay)
		}
		reg.days[d.Number] = d
	}

	return reg, nil
}

// Lookup returns the Day registered under n or ErrUnknownDay.
func (r *Registry) Lookup(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("day %d: %w", n, ErrUnknownDay)
	}

	return d, nil
}

// Days lists every registered day in ascending order.
func (r *Registry) Days() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// Numbers lists the registered day numbers in ascending order.
func (r *Registry) Numbers() []int {
	days := r.Days()
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = d.Number
	}

	return out
}
