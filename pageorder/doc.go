// Package pageorder validates and repairs page updates against pairwise
// precedence rules "X|Y" (page X must be printed before page Y).
//
// What:
//
//   - Table: interns page numbers into a dense index and stores a square
//     Ordering matrix. Recording X|Y sets Less at (X,Y) and Greater at (Y,X).
//   - Get / Compare: look up a recorded relation. Asking about a page never
//     seen, or about two pages no rule relates, is an error and never a
//     silent default.
//   - Closure: a Comparator for one update that also follows chains of
//     rules through the update's own pages (1|2 and 2|3 order 1 before 3).
//   - IsSortedBy / SortBy: check or sort an update with any Comparator;
//     Table.IsSorted and Table.Sort use Closure.
//   - TopologicalOrder: depth-first ordering of an update's pages over the
//     rules between them; reports ErrCycleDetected on inconsistent rules.
//
// The relation is only as total and transitive as the rules make it. Sort
// trusts that every pair inside an update is related consistently; strict
// solving verifies it with TopologicalOrder first.
//
// Complexity:
//
//   - Insert: O(1) for known pages, O(n) when a new page adds a column.
//   - Get:    O(1).
//   - Closure: O(k³) to build for an update of k pages, O(1) per comparison.
//   - Sort:   O(k log k) comparisons.
//   - TopologicalOrder: O(k²).
//
// Errors:
//
//   - ErrUnknownPage, ErrUnrelated: precondition failures of Get.
//   - ErrSelfOrdering, ErrConflictingRule: rejected by Insert.
//   - ErrCycleDetected, ErrInconsistentOrder: strict verification failures.
//   - ErrMissingSeparator, ErrMalformedRule, ErrDuplicatePage: input shape.
package pageorder
