// Package wordsearch scans a rectangular letter grid for a fixed word in all
// eight compass directions and for the "X" cross pattern around a center
// letter.
//
// What:
//
//   - Grid wraps the puzzle letters as a flat row-major slice with explicit
//     Width and Height; (x,y) maps to y*Width + x.
//   - CountWord counts every placement of a Word starting on a cell equal to
//     its first letter, in any feasible direction.
//   - CountCross counts interior center cells whose two diagonals each read
//     arm1/arm2 in either order.
//
// Bounds:
//
//	A direction is feasible for a start cell only when the whole span of the
//	word stays inside the grid. Feasibility is decided once per cell from
//	x±(n-1) and y±(n-1); the walk itself never checks bounds again.
//
// Complexity:
//
//   - CountWord:  O(W×H×8×n), Memory: O(1).
//   - CountCross: O(W×H),     Memory: O(1).
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidLetter:  a byte outside X, M, A, S.
package wordsearch
