// Package puzzle holds the pieces shared by every daily solver: the
// Answer/Result pair printed for a day, the Day descriptor each solver
// package exports, a Registry keyed by day number and a Runner that drives
// several days over their inputs.
//
// What:
//
//   - Answer / Result: two labelled unsigned answers per day.
//   - Day: number, title and SolveFunc of one puzzle.
//   - Registry: lookup by day number, deterministic listing.
//   - Runner: opens inputs and solves days, optionally in parallel.
//   - Input helpers: ReadLines, ParseUint, ParseUints, AbsDiff.
//
// Solvers themselves are pure: they read one io.Reader, build their own
// structure and return a Result. Nothing is shared between days.
//
// Errors:
//
//   - ErrMalformedInput: input shape violation; every package-level parse
//     sentinel wraps it so callers can classify with errors.Is.
//   - ErrUnknownDay: no solver registered for the requested day.
//   - ErrDuplicateDay: two solvers claim the same day.
//   - ErrNilSolver: a Day without a SolveFunc.
package puzzle
