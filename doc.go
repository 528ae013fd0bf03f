// SPDX-License-Identifier: MIT

// Package atsp solves the asymmetric travelling salesman problem exactly
// with Little's branch-and-bound.
//
// The module is organised as:
//
//	matrix/             square integer cost matrix with forbidden cells
//	little/             one search node: reduction, penalties, branching, base case
//	tsp/                best-first driver, seeding, Held–Karp cross-check, tour helpers
//	internal/instance   plain and TSPLIB FULL_MATRIX readers
//	internal/config     koanf configuration (defaults, YAML, ATSP_* env, flags)
//	internal/logger     slog with optional rotating file output
//	internal/metrics    Prometheus counters written to a textfile
//	cmd/atsp            command-line solver
//
// Quick start:
//
//	res, err := tsp.SolveRows([][]int64{
//		{-1, 10, 15, 20},
//		{5, -1, 9, 10},
//		{6, 13, -1, 12},
//		{8, 8, 9, -1},
//	}, tsp.DefaultOptions())
//	// res.Tour == [0 1 3 2 0], res.Cost == 35
//
// A negative entry marks a forbidden edge. Costs are exact int64 arithmetic;
// single cells are capped at matrix.MaxCost.
package atsp
