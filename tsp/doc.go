// SPDX-License-Identifier: MIT

// Package tsp solves the asymmetric Travelling Salesman Problem exactly.
//
// SolveATSP runs a best-first branch-and-bound search over little.Node
// sub-problems (Little, Murty, Sweeney & Karel, 1963):
//
//   - Frontier: min-priority queue keyed by lower bound.
//   - Incumbent: optional nearest-neighbour seed, then every improving leaf.
//   - Termination: the first popped node whose bound reaches the incumbent
//     proves the incumbent optimal.
//   - Limits: Options.TimeLimit, Options.MaxNodes and Options.Ctx stop the
//     search early with the best tour so far.
//
// Costs are non-negative integers; forbidden cells of the matrix are
// missing edges. Tours are 0-based, closed (len n+1) and start at
// Options.StartVertex.
//
// HeldKarp is an exact O(n²·2ⁿ) dynamic program for n <= MaxHeldKarp, kept
// as an independent cross-check.
//
// The package does not log. Observe the search through Options.Hooks and
// the returned Stats.
package tsp
