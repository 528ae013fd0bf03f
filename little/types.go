// SPDX-License-Identifier: MIT

package little

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the node operations.
var (
	// ErrNilCosts indicates that NewRoot received a nil matrix.
	ErrNilCosts = errors.New("little: cost matrix is nil")

	// ErrNilNode indicates that a nil parent was passed to NewRightChild.
	ErrNilNode = errors.New("little: node is nil")

	// ErrTooSmall is returned when a matrix or node is too small for the
	// requested operation (root needs n ≥ 2, right branching needs size ≥ 3).
	ErrTooSmall = errors.New("little: sub-problem too small")

	// ErrIndexOutOfRange indicates a local row/column index outside [0..Size()).
	ErrIndexOutOfRange = errors.New("little: local index out of range")

	// ErrForbiddenEdge is returned when branching on a cell that is not allowed.
	ErrForbiddenEdge = errors.New("little: edge is forbidden")

	// ErrNoSelection is returned by BranchRight when SelectBranchPath has not
	// produced a valid selection for the current matrix.
	ErrNoSelection = errors.New("little: no branch edge selected")

	// ErrNotBaseCase is returned by CalSolution on a node whose size is not 2.
	ErrNotBaseCase = errors.New("little: node is not a 2x2 base case")

	// ErrSolved is returned by CalSolution on a node that is already solved.
	ErrSolved = errors.New("little: node already solved")

	// ErrInconsistent reports a broken search invariant (no feasible 2x2
	// pairing, committed edge count different from the problem order, or a
	// tour walk that does not close). It signals a defect, not bad input;
	// callers must abort instead of reporting a tour.
	ErrInconsistent = errors.New("little: internal consistency violation")
)

// Edge is a directed edge between two original cities (0-based).
type Edge struct {
	From int
	To   int
}

// String renders the edge as "from→to".
func (e Edge) String() string { return fmt.Sprintf("%d→%d", e.From, e.To) }

// Branch describes the edge chosen by SelectBranchPath.
type Branch struct {
	Row, Col int   // local indices into the node matrix
	Edge     Edge  // the same cell in original city numbering
	Penalty  int64 // row penalty + column penalty; meaningless when Infinite
	Infinite bool  // excluding the edge leaves a row or column with no allowed cell
}

// penalty is a non-negative cost increase with an explicit infinite state.
type penalty struct {
	v   int64
	inf bool
}

// add returns p+q; infinity absorbs.
func (p penalty) add(q penalty) penalty {
	if p.inf || q.inf {
		return penalty{inf: true}
	}

	return penalty{v: p.v + q.v}
}

// greater reports p > q with +∞ above every finite value (∞ > ∞ is false).
func (p penalty) greater(q penalty) bool {
	switch {
	case q.inf:
		return false
	case p.inf:
		return true
	default:
		return p.v > q.v
	}
}
