// SPDX-License-Identifier: MIT

package little

// TransToLeftBranch turns the node into its left branch: the edge chosen by
// the last SelectBranchPath is forbidden instead of committed. The size is
// unchanged.
//
// On success the selected combined penalty is added to the bound, the cell
// is forbidden and only the affected row and column are re-reduced (by
// their own penalties); the rest of the matrix was already reduced.
// If the penalty is infinite the excluded edge was the only way out of its
// row or into its column: the node is marked infeasible, the bound is left
// as it was and no subtraction takes place.
//
// It returns false and leaves the node untouched when there is no valid
// selection, or when the selected cell no longer fits the matrix.
// The selection is consumed either way on success.
//
// Complexity: O(n).
func (n *Node) TransToLeftBranch() bool {
	var size = n.m.Size()
	if !n.sel.valid || n.sel.row >= size || n.sel.col >= size {
		return false
	}

	var (
		r, c = n.sel.row, n.sel.col
		pen  = n.sel.pen
	)
	_ = n.m.Forbid(r, c) // in range, checked above

	if pen.inf {
		n.infeasible = true
	} else {
		n.bound += pen.v
		n.m.SubRow(r, n.rowPen[r].v)
		n.m.SubCol(c, n.colPen[c].v)
	}
	n.sel = selection{}

	return true
}
