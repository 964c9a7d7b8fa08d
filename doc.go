// Package aoc24 holds daily puzzle solvers for the 2024 Advent calendar,
// each one a small library behind the same puzzle.SolveFunc shape.
//
// Layout:
//
//	puzzle/     - shared types, input helpers, the day registry and the runner
//	locations/  - day 1: list distance and similarity score
//	reports/    - day 2: monotone report safety with a one-level damper
//	mulscan/    - day 3: mul/do/don't instruction scanner
//	wordsearch/ - day 4: 8-direction word search and X-shaped crosses
//	pageorder/  - day 5: pairwise page ordering table, checks and repair
//	config/     - YAML, .env and environment settings
//	cmd/aoc24/  - the command line front end
//
// Quick start:
//
//	aoc24 list
//	aoc24 run 4 5 --data-dir ./data
//	aoc24 run 5 --input sample.txt --strict
package aoc24
