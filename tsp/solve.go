// SPDX-License-Identifier: MIT

// Package tsp - public entry points.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/atsp/little"
	"github.com/katalvlaran/atsp/matrix"
)

// SolveATSP finds a minimum-cost Hamiltonian cycle of c with Little's
// branch-and-bound search. Forbidden cells of c are edges the tour may not
// use; self-loops are never used.
//
// The returned tour is 0-based, closed and starts at opts.StartVertex.
//
// Errors:
//   - ErrNonSquare, ErrStartOutOfRange, ErrDimensionMismatch for bad input.
//   - ErrIncompleteGraph if no Hamiltonian cycle exists.
//   - ErrTimeLimit, ErrNodeLimit, or the context error when a limit stops
//     the search; the result then holds the best tour found so far (Tour
//     is nil if none was found).
//   - little.ErrInconsistent (wrapped) on a broken search invariant; no
//     tour is returned.
func SolveATSP(c *matrix.Costs, opts Options) (TSResult, error) {
	opts.normalize()
	n, err := validateInput(c, opts)
	if err != nil {
		return TSResult{}, err
	}

	root, err := little.NewRoot(c)
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveATSP: %w", err)
	}

	e := newEngine(c, n, opts)
	e.stats.RootBound = root.LowerBound()
	if !root.Feasible() {
		return TSResult{Stats: e.stats}, ErrIncompleteGraph
	}
	if opts.SeedIncumbent {
		e.seed()
	}

	return e.result(e.run(root))
}

// SolveRows is SolveATSP over a [][]int64 matrix where negative entries
// are forbidden edges.
func SolveRows(rows [][]int64, opts Options) (TSResult, error) {
	c, err := matrix.FromRows(rows)
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveRows: %w", err)
	}

	return SolveATSP(c, opts)
}

// SolveMatrix is SolveATSP over a float64 matrix where math.Inf(1) marks a
// forbidden edge and every other entry must be a non-negative integer.
func SolveMatrix(m matrix.Matrix, opts Options) (TSResult, error) {
	c, err := matrix.FromMatrix(m)
	if err != nil {
		return TSResult{}, fmt.Errorf("SolveMatrix: %w", err)
	}

	return SolveATSP(c, opts)
}
