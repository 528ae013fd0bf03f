// SPDX-License-Identifier: MIT

// Package little implements the sub-problem node of Little's branch-and-bound
// algorithm for the Asymmetric Travelling Salesman Problem (ATSP).
//
// A Node is one vertex of the search tree. It owns:
//
//   - a reduced cost matrix (matrix.Costs) whose rows and columns carry
//     labels mapping local indices back to original cities;
//   - a lower bound: the sum of every row/column reduction applied so far plus
//     the costs and penalties committed by branching;
//   - the committed edges of the partial tour and the shortcut chains used to
//     forbid edges that would close a premature sub-cycle.
//
// Life of a node (the search driver owns the loop, see package tsp):
//
//	root := NewRoot(costs)            // reduced in the constructor
//	for each popped node:
//	    if node.Size() == 2 {
//	        node.CalSolution()        // complete tour, final bound
//	    } else {
//	        node.SelectBranchPath()   // zero cell with the largest penalty
//	        right := node.BranchRight() // edge committed, size N−1
//	        node.TransToLeftBranch()  // same node, edge forbidden
//	    }
//
// Bound bookkeeping is exact integer arithmetic. Forbidden cells are an
// explicit state of matrix.Costs and an "infinite" penalty is an explicit
// flag, so no sentinel value ever takes part in a sum.
//
// Invariants:
//   - LowerBound never decreases along right or left branching.
//   - Row and column labels are duplicate-free subsets of {0..Order()-1} of
//     size Size().
//   - Committed edges plus any single allowed cell never close a cycle shorter
//     than Order().
//   - For a solved node, the original cost of FinalPath equals LowerBound.
//
// Concurrency: a Node is not safe for concurrent mutation. Right children
// deep-copy all parent state, so parent and child never share storage.
package little
