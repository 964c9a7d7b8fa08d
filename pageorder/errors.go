package pageorder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc24/puzzle"
)

var (
	// ErrUnknownPage indicates a page that no rule has mentioned.
	ErrUnknownPage = errors.New("pageorder: page not present in any rule")
	// ErrUnrelated indicates two known pages that no rule relates.
	ErrUnrelated = errors.New("pageorder: pages are not related by any rule")
	// ErrSelfOrdering indicates a rule that orders a page before itself.
	ErrSelfOrdering = errors.New("pageorder: page cannot precede itself")
	// ErrConflictingRule indicates a rule whose inverse was already recorded.
	ErrConflictingRule = errors.New("pageorder: rule contradicts an earlier rule")
	// ErrCycleDetected indicates the rules between an update's pages form a cycle.
	ErrCycleDetected = errors.New("pageorder: cycle detected")
	// ErrInconsistentOrder indicates the sorted update disagrees with the rules.
	ErrInconsistentOrder = errors.New("pageorder: rules do not induce a consistent order")

	// ErrMissingSeparator indicates no blank line separates rules from updates.
	ErrMissingSeparator = fmt.Errorf("pageorder: missing blank line between rules and updates: %w", puzzle.ErrMalformedInput)
	// ErrMalformedRule indicates a rule line that is not "<uint>|<uint>".
	ErrMalformedRule = fmt.Errorf("pageorder: rule must be <page>|<page>: %w", puzzle.ErrMalformedInput)
	// ErrDuplicatePage indicates an update listing the same page twice.
	ErrDuplicatePage = fmt.Errorf("pageorder: update repeats a page: %w", puzzle.ErrMalformedInput)
)
