// SPDX-License-Identifier: MIT

// Package tsp - best-first branch-and-bound driver over little.Node.
//
// The frontier is a min-priority queue keyed by lower bound, so the first
// node popped whose bound cannot beat the incumbent proves optimality: every
// node still queued has a bound at least as large.
//
// Loop:
//  1. Pop the node with the smallest bound (deeper nodes first on ties).
//  2. If an incumbent exists and bound >= incumbent, prune it and the rest
//     of the frontier; the incumbent is optimal.
//  3. A 2x2 node is completed by CalSolution and offered as an incumbent.
//  4. Otherwise pick the branch edge, push the right child, turn the node
//     into its left branch and push it back. Infeasible children and
//     children that cannot beat the incumbent are dropped on the spot.
//
// Limits (time, node count, context) are checked sparsely; on a limit the
// best tour found so far is returned together with the limit error.
//
// Complexity:
//   - Worst case exponential in n; each expansion is O(n²).
//   - Memory: O(n²) per queued node.
package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/oleiade/lane/v2"

	"github.com/katalvlaran/atsp/little"
	"github.com/katalvlaran/atsp/matrix"
)

const (
	// keyDepthBits low bits of a frontier key hold the inverted depth.
	keyDepthBits = 8
	keyDepthMax  = 1<<keyDepthBits - 1
	keyBoundMax  = math.MaxInt64 >> keyDepthBits

	// deadlineMask spaces out clock and context checks (every 16 pops).
	deadlineMask = 15
)

// bbEngine holds the search state of one SolveATSP call.
type bbEngine struct {
	n     int
	costs *matrix.Costs
	opts  Options

	useDeadline bool
	deadline    time.Time
	steps       int

	queue *lane.PriorityQueue[*little.Node, int64]

	bestTour []int
	bestCost int64
	found    bool
	limited  bool // the search stopped on a limit, not on an error

	stats Stats
}

func newEngine(c *matrix.Costs, n int, opts Options) *bbEngine {
	e := &bbEngine{
		n:     n,
		costs: c,
		opts:  opts,
		queue: lane.NewMinPriorityQueue[*little.Node, int64](),
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	return e
}

// frontierKey orders nodes by bound, then by depth (deeper first), so that
// equal-bound subtrees are finished before new ones are opened.
func frontierKey(n *little.Node) int64 {
	var (
		b     = n.LowerBound()
		depth = n.Order() - n.Size()
	)
	if b > keyBoundMax {
		b = keyBoundMax
	}
	if depth > keyDepthMax {
		depth = keyDepthMax
	}

	return b<<keyDepthBits | int64(keyDepthMax-depth)
}

// checkLimits runs the sparse deadline/context test and the node cap.
func (e *bbEngine) checkLimits() error {
	if e.opts.MaxNodes > 0 && e.stats.Expanded >= e.opts.MaxNodes {
		return ErrNodeLimit
	}
	e.steps++
	if e.steps&deadlineMask != 1 {
		return nil
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return err
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return ErrTimeLimit
	}

	return nil
}

// push adds a node to the frontier and tracks the high-water mark.
func (e *bbEngine) push(n *little.Node) {
	e.queue.Push(n, frontierKey(n))
	if size := int(e.queue.Size()); size > e.stats.MaxQueue {
		e.stats.MaxQueue = size
	}
}

// prune records a node discarded by bound.
func (e *bbEngine) prune(bound int64) {
	e.stats.Pruned++
	if e.opts.Hooks.OnPrune != nil {
		e.opts.Hooks.OnPrune(bound)
	}
}

// offerNode pushes a child unless it is infeasible or cannot beat the incumbent.
func (e *bbEngine) offerNode(n *little.Node) {
	switch {
	case !n.Feasible():
		e.stats.Infeasible++
	case e.found && n.LowerBound() >= e.bestCost:
		e.prune(n.LowerBound())
	default:
		e.push(n)
	}
}

// offerTour records a tour if it strictly improves the incumbent.
func (e *bbEngine) offerTour(tour []int, cost int64) {
	if e.found && cost >= e.bestCost {
		return
	}
	e.bestTour, e.bestCost, e.found = tour, cost, true
	e.stats.Incumbents++
	if e.opts.Hooks.OnIncumbent != nil {
		e.opts.Hooks.OnIncumbent(cost, append([]int(nil), tour...))
	}
}

// complete solves a 2x2 node and offers its tour. A failure here is a
// broken invariant and aborts the search.
func (e *bbEngine) complete(n *little.Node) error {
	if err := n.CalSolution(); err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	e.stats.Leaves++

	tour, err := RotateTourToStart(fromOneBased(n.FinalPath()), e.opts.StartVertex)
	if err != nil {
		return fmt.Errorf("complete: rotate %v: %v: %w", n.FinalPath(), err, little.ErrInconsistent)
	}
	cost, err := TourCost(e.costs, tour)
	if err != nil || cost != n.LowerBound() {
		return fmt.Errorf("complete: tour %v costs %d (%v), bound %d: %w",
			tour, cost, err, n.LowerBound(), little.ErrInconsistent)
	}
	e.offerTour(tour, cost)

	return nil
}

// drain prunes everything left in the frontier.
func (e *bbEngine) drain() {
	for !e.queue.Empty() {
		n, _, _ := e.queue.Pop()
		e.prune(n.LowerBound())
	}
}

// run performs the best-first search from root.
func (e *bbEngine) run(root *little.Node) error {
	e.push(root)
	for !e.queue.Empty() {
		node, _, _ := e.queue.Pop()
		if e.found && node.LowerBound() >= e.bestCost {
			e.prune(node.LowerBound())
			e.drain()

			return nil
		}
		if err := e.checkLimits(); err != nil {
			e.limited = true

			return err
		}

		if node.Size() == 2 {
			if err := e.complete(node); err != nil {
				return err
			}
			continue
		}

		if !node.SelectBranchPath() {
			e.stats.Infeasible++
			continue
		}
		b, _ := node.Selection()
		e.stats.Expanded++
		if e.opts.Hooks.OnExpand != nil {
			e.opts.Hooks.OnExpand(node, b)
		}

		right, err := node.BranchRight()
		if err != nil {
			return fmt.Errorf("branch %v: %w", b.Edge, err)
		}
		e.offerNode(right)

		if node.TransToLeftBranch() {
			e.offerNode(node)
		}
	}

	return nil
}

// result packs the engine state. A limit (time, nodes, context) keeps the
// incumbent; any other error drops it.
func (e *bbEngine) result(runErr error) (TSResult, error) {
	res := TSResult{Stats: e.stats}
	if runErr != nil && !e.limited {
		return res, runErr
	}
	if e.found {
		res.Tour = e.bestTour
		res.Cost = e.bestCost
	}
	if runErr != nil {
		return res, runErr
	}
	if !e.found {
		return res, ErrIncompleteGraph
	}

	return res, nil
}
