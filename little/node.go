// SPDX-License-Identifier: MIT

// Package little - node construction (root and right branch) and accessors.
//
// Both constructors leave the node fully reduced. A right child is an
// independent deep copy of its parent minus one row and one column: the
// matrix, labels, committed edges and chain index are all copied.
//
// Complexity:
//   - NewRoot:       O(n²) (clone + reduction).
//   - NewRightChild: O(n²) (copy + cycle elimination O(n) + reduction).
package little

import (
	"fmt"

	"github.com/katalvlaran/atsp/matrix"
)

// Node is one sub-problem of Little's branch-and-bound search.
type Node struct {
	// order is the size of the original problem (the root's n). It is
	// threaded through every child and checked when the tour is rebuilt.
	order int

	// Reduced matrix and the original city behind each local row/column.
	m    *matrix.Costs
	rows []int
	cols []int

	bound      int64
	infeasible bool

	path   []Edge     // committed edges, in commit order
	chains chainIndex // maximal committed chains, used for cycle elimination

	// Penalties and selection from the last SelectBranchPath; valid until
	// the matrix is next mutated.
	rowPen []penalty
	colPen []penalty
	sel    selection

	// tour is the 1-based closed city sequence, set by CalSolution.
	tour []int
}

// selection is the zero cell chosen by SelectBranchPath.
type selection struct {
	row, col int
	pen      penalty
	valid    bool
}

// NewRoot builds the root node from a full cost matrix and reduces it.
// The matrix is cloned; the caller keeps ownership of c.
//
// Forbidden cells of c are the disallowed directed edges. The diagonal is
// always forbidden in the node's copy: a self-loop is never part of a
// Hamiltonian cycle on two or more cities, and leaving it allowed would let
// the 2x2 base case close a one-city cycle.
//
// Errors:
//   - ErrNilCosts if c is nil.
//   - ErrTooSmall if c has fewer than 2 cities.
func NewRoot(c *matrix.Costs) (*Node, error) {
	if c == nil {
		return nil, ErrNilCosts
	}
	var n = c.Size()
	if n < 2 {
		return nil, fmt.Errorf("NewRoot: n=%d: %w", n, ErrTooSmall)
	}

	node := &Node{
		order:  n,
		m:      c.Clone(),
		rows:   make([]int, n),
		cols:   make([]int, n),
		chains: newChainIndex(),
	}
	var i int
	for i = 0; i < n; i++ {
		node.rows[i] = i
		node.cols[i] = i
		_ = node.m.Forbid(i, i) // in range by construction
	}
	node.Reduce()

	return node, nil
}

// NewRightChild builds the right branch of parent: the edge at local cell
// (row, col) is committed to the tour, that row and column are removed, the
// edge that would close a premature cycle is forbidden, and the result is
// reduced.
//
// The parent's reduced cost of the committed cell is added to the child's
// bound. For a cell picked by SelectBranchPath that cost is zero; for any
// other caller-chosen cell it keeps the bound exact.
//
// The parent is not modified.
//
// Errors:
//   - ErrNilNode if parent is nil.
//   - ErrTooSmall if parent.Size() < 3 (a 2x2 node is finished by CalSolution).
//   - ErrIndexOutOfRange for row/col outside [0..parent.Size()).
//   - ErrForbiddenEdge if the cell is not allowed.
func NewRightChild(parent *Node, row, col int) (*Node, error) {
	if parent == nil {
		return nil, ErrNilNode
	}
	var size = parent.Size()
	if size < 3 {
		return nil, fmt.Errorf("NewRightChild: size=%d: %w", size, ErrTooSmall)
	}
	if row < 0 || row >= size || col < 0 || col >= size {
		return nil, fmt.Errorf("NewRightChild: cell (%d,%d) in %dx%d: %w", row, col, size, size, ErrIndexOutOfRange)
	}
	cost, ok := parent.m.At(row, col)
	if !ok {
		return nil, fmt.Errorf("NewRightChild: cell (%d,%d): %w", row, col, ErrForbiddenEdge)
	}

	m, err := parent.m.Without(row, col)
	if err != nil {
		return nil, fmt.Errorf("NewRightChild: %w", err)
	}

	child := &Node{
		order:      parent.order,
		m:          m,
		rows:       dropAt(parent.rows, row),
		cols:       dropAt(parent.cols, col),
		bound:      parent.bound + cost,
		infeasible: parent.infeasible,
		path:       make([]Edge, len(parent.path), len(parent.path)+1),
		chains:     parent.chains.clone(),
	}
	copy(child.path, parent.path)

	e := Edge{From: parent.rows[row], To: parent.cols[col]}
	child.path = append(child.path, e)
	child.eliminateCycle(e)
	child.Reduce()

	return child, nil
}

// BranchRight is NewRightChild on the cell chosen by the last
// SelectBranchPath.
//
// Errors:
//   - ErrNoSelection if there is no valid selection.
//   - Any error of NewRightChild.
func (n *Node) BranchRight() (*Node, error) {
	if !n.sel.valid {
		return nil, ErrNoSelection
	}

	return NewRightChild(n, n.sel.row, n.sel.col)
}

// dropAt returns a copy of s without element k.
func dropAt(s []int, k int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:k]...)

	return append(out, s[k+1:]...)
}

// rowIndex returns the local row holding original city city, or -1.
func (n *Node) rowIndex(city int) int {
	var i int
	for i = range n.rows {
		if n.rows[i] == city {
			return i
		}
	}

	return -1
}

// colIndex returns the local column holding original city city, or -1.
func (n *Node) colIndex(city int) int {
	var j int
	for j = range n.cols {
		if n.cols[j] == city {
			return j
		}
	}

	return -1
}

// ---------- accessors ----------

// LowerBound returns the accumulated lower bound of every complete tour
// reachable from this node. For a solved node it is the tour cost.
func (n *Node) LowerBound() int64 { return n.bound }

// Size returns the current matrix size (number of cities still to route).
func (n *Node) Size() int { return n.m.Size() }

// Order returns the number of cities of the original problem.
func (n *Node) Order() int { return n.order }

// Feasible reports whether the node can still lead to a tour. A node
// becomes infeasible when a row or column loses every allowed cell.
func (n *Node) Feasible() bool { return !n.infeasible }

// Solved reports whether CalSolution has completed on this node.
func (n *Node) Solved() bool { return n.tour != nil }

// RowLabel maps local row i to its original city, or -1 when out of range.
func (n *Node) RowLabel(i int) int {
	if i < 0 || i >= len(n.rows) {
		return -1
	}

	return n.rows[i]
}

// ColLabel maps local column j to its original city, or -1 when out of range.
func (n *Node) ColLabel(j int) int {
	if j < 0 || j >= len(n.cols) {
		return -1
	}

	return n.cols[j]
}

// RowLabels returns a copy of the local-row → city mapping.
func (n *Node) RowLabels() []int { return append([]int(nil), n.rows...) }

// ColLabels returns a copy of the local-column → city mapping.
func (n *Node) ColLabels() []int { return append([]int(nil), n.cols...) }

// Cost returns the reduced cost at local cell (i, j) and whether it is allowed.
func (n *Node) Cost(i, j int) (int64, bool) { return n.m.At(i, j) }

// CostOf returns the reduced cost of edge from→to in original numbering.
// ok is false when the edge is forbidden or either city has left the matrix.
func (n *Node) CostOf(from, to int) (int64, bool) {
	i, j := n.rowIndex(from), n.colIndex(to)
	if i < 0 || j < 0 {
		return 0, false
	}

	return n.m.At(i, j)
}

// Matrix returns a copy of the reduced matrix.
func (n *Node) Matrix() *matrix.Costs { return n.m.Clone() }

// Path returns a copy of the committed edges in commit order.
func (n *Node) Path() []Edge { return append([]Edge(nil), n.path...) }

// Chains returns the current shortcut chains (head→tail of every maximal
// committed chain), ordered by head city.
func (n *Node) Chains() []Edge { return n.chains.edges() }

// FinalPath returns the discovered tour as 1-based city numbers, starting
// and ending at the same city (Order()+1 entries). Nil until CalSolution.
func (n *Node) FinalPath() []int {
	if n.tour == nil {
		return nil
	}

	return append([]int(nil), n.tour...)
}
