package pageorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc24/puzzle"
)

// Parse reads the rule block, the blank separator line and the update block.
// Blank lines after the separator are skipped. Errors carry the 1-based line.
func Parse(r io.Reader) (*Table, []Update, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, nil, err
	}

	t := NewTable()
	sep := -1
	for i, line := range lines {
		if line == "" {
			sep = i
			break
		}
		if err := parseRule(t, line); err != nil {
			return nil, nil, puzzle.LineError(i+1, err)
		}
	}
	if sep < 0 {
		return nil, nil, ErrMissingSeparator
	}

	var updates []Update
	for i := sep + 1; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		u, err := parseUpdate(lines[i])
		if err != nil {
			return nil, nil, puzzle.LineError(i+1, err)
		}
		updates = append(updates, u)
	}

	return t, updates, nil
}

// parseRule records one "X|Y" line into t.
func parseRule(t *Table, line string) error {
	left, right, ok := strings.Cut(line, "|")
	if !ok {
		return fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	before, err := puzzle.ParseUint[Page](left)
	if err != nil {
		return err
	}
	after, err := puzzle.ParseUint[Page](right)
	if err != nil {
		return err
	}

	return t.Insert(before, after)
}

// parseUpdate reads one comma separated update with distinct pages.
func parseUpdate(line string) (Update, error) {
	pages, err := puzzle.ParseUints[Page](line, ",")
	if err != nil {
		return nil, err
	}
	seen := make(map[Page]struct{}, len(pages))
	for _, p := range pages {
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePage, p)
		}
		seen[p] = struct{}{}
	}

	return pages, nil
}
