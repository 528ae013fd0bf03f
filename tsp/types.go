// SPDX-License-Identifier: MIT

// Package tsp - public types, options and sentinel errors.
package tsp

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/atsp/little"
)

// Sentinel errors. Callers match them with errors.Is; call sites add
// context with %w.
var (
	// ErrNonSquare indicates a missing, empty or non-square cost matrix.
	ErrNonSquare = errors.New("tsp: matrix must be square with n >= 2")

	// ErrStartOutOfRange indicates Options.StartVertex outside [0..n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists over
	// the allowed edges.
	ErrIncompleteGraph = errors.New("tsp: no Hamiltonian cycle over the allowed edges")

	// ErrTimeLimit is returned when Options.TimeLimit elapsed before the
	// search proved optimality. The result holds the best tour found so far,
	// if any.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrNodeLimit is returned when Options.MaxNodes nodes were expanded
	// before the search proved optimality. The result holds the best tour
	// found so far, if any.
	ErrNodeLimit = errors.New("tsp: node limit exceeded")

	// ErrDimensionMismatch indicates a malformed tour or an invalid option
	// value (negative limits).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrTooLarge is returned by HeldKarp for instances above MaxHeldKarp.
	ErrTooLarge = errors.New("tsp: instance too large for exhaustive solver")
)

// Hooks observe the search. Every field is optional. Hooks run on the
// solver goroutine and must not retain the node past the call.
type Hooks struct {
	// OnExpand is called for every node that is branched, with the edge
	// chosen for it.
	OnExpand func(n *little.Node, b little.Branch)

	// OnIncumbent is called whenever a strictly better tour is found.
	// tour is 0-based, closed and rotated to Options.StartVertex.
	OnIncumbent func(cost int64, tour []int)

	// OnPrune is called for every node discarded because its bound cannot
	// beat the incumbent.
	OnPrune func(bound int64)
}

// Options configures SolveATSP.
//   - Ctx: cancellation; nil means context.Background().
//   - StartVertex: the returned tour starts and ends here.
//   - TimeLimit: soft wall-clock budget; 0 means unlimited.
//   - MaxNodes: cap on expanded nodes; 0 means unlimited.
//   - SeedIncumbent: start from a nearest-neighbour tour when one exists,
//     so pruning begins before the first leaf is reached.
//   - PolishSeed: improve that tour with ThreeOptStar first.
//   - Hooks: search observers.
type Options struct {
	Ctx           context.Context
	StartVertex   int
	TimeLimit     time.Duration
	MaxNodes      int
	SeedIncumbent bool
	PolishSeed    bool
	Hooks         Hooks
}

// DefaultOptions returns the recommended defaults: start at vertex 0, no
// limits, a polished seed, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		StartVertex:   0,
		SeedIncumbent: true,
		PolishSeed:    true,
	}
}

// normalize fills zero-valued fields that have a non-zero default.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// Stats counts search events. Counters are exact for the run that
// produced them.
type Stats struct {
	RootBound  int64 // lower bound of the reduced root
	Expanded   int   // nodes branched
	Leaves     int   // 2x2 nodes completed into a tour
	Pruned     int   // nodes discarded by bound
	Infeasible int   // children discarded because a row or column emptied
	Incumbents int   // strictly improving tours, seed included
	MaxQueue   int   // largest frontier size observed
}

// TSResult holds the outcome of a solve.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at
	// Options.StartVertex. For n vertices len(Tour) == n+1. Nil when no tour
	// was found.
	Tour []int

	// Cost is the total cost of Tour.
	Cost int64

	// Stats describes the search.
	Stats Stats
}
