// SPDX-License-Identifier: MIT

// Package little - penalties and branch-edge selection.
//
// The penalty of a zero cell (i, j) is what the bound must grow by if the
// edge is excluded: the cheapest other way out of row i plus the cheapest
// other way into column j. Little's rule branches on the zero with the
// largest penalty, because its left branch is the most expensive and is
// therefore the most likely to be pruned.
//
// Complexity: SelectBranchPath is O(n²).
package little

// SelectBranchPath recomputes all row and column penalties and selects the
// zero cell with the largest row+column penalty. Ties keep the first cell
// in row-major order, so the search order is reproducible.
//
// It returns false when the matrix has no zero cell (an infeasible node);
// no selection is recorded in that case.
func (n *Node) SelectBranchPath() bool {
	n.calRowPenalty()
	n.calColPenalty()

	var (
		size  = n.m.Size()
		best  selection
		i, j  int
		v     int64
		ok    bool
		total penalty
	)
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			v, ok = n.m.At(i, j)
			if !ok || v != 0 {
				continue
			}
			total = n.rowPen[i].add(n.colPen[j])
			if !best.valid || total.greater(best.pen) {
				best = selection{row: i, col: j, pen: total, valid: true}
			}
		}
	}
	n.sel = best

	return best.valid
}

// Selection returns the edge chosen by the last SelectBranchPath.
// ok is false when there is no valid selection (never selected, no zero
// cell, or the matrix changed since).
func (n *Node) Selection() (Branch, bool) {
	if !n.sel.valid {
		return Branch{}, false
	}

	return Branch{
		Row:      n.sel.row,
		Col:      n.sel.col,
		Edge:     Edge{From: n.rows[n.sel.row], To: n.cols[n.sel.col]},
		Penalty:  n.sel.pen.v,
		Infinite: n.sel.pen.inf,
	}, true
}

// calRowPenalty fills n.rowPen: 0 for rows with two or more zeros,
// otherwise the smallest positive allowed value (infinite if none).
func (n *Node) calRowPenalty() {
	var (
		size = n.m.Size()
		i, j int
	)
	n.rowPen = resizePenalties(n.rowPen, size)
	for i = 0; i < size; i++ {
		var (
			zeros int
			p     = penalty{inf: true}
		)
		for j = 0; j < size; j++ {
			v, ok := n.m.At(i, j)
			if !ok {
				continue
			}
			if v == 0 {
				zeros++
				if zeros > 1 {
					p = penalty{}
					break
				}
				continue
			}
			if p.inf || v < p.v {
				p = penalty{v: v}
			}
		}
		n.rowPen[i] = p
	}
}

// calColPenalty is calRowPenalty for columns.
func (n *Node) calColPenalty() {
	var (
		size = n.m.Size()
		i, j int
	)
	n.colPen = resizePenalties(n.colPen, size)
	for j = 0; j < size; j++ {
		var (
			zeros int
			p     = penalty{inf: true}
		)
		for i = 0; i < size; i++ {
			v, ok := n.m.At(i, j)
			if !ok {
				continue
			}
			if v == 0 {
				zeros++
				if zeros > 1 {
					p = penalty{}
					break
				}
				continue
			}
			if p.inf || v < p.v {
				p = penalty{v: v}
			}
		}
		n.colPen[j] = p
	}
}

// resizePenalties reuses buf when it is large enough.
func resizePenalties(buf []penalty, size int) []penalty {
	if cap(buf) >= size {
		return buf[:size]
	}

	return make([]penalty, size)
}
