// SPDX-License-Identifier: MIT

package little

// Reduce performs row reduction followed by column reduction and returns
// the amount added to the lower bound.
//
// Each row with at least one allowed cell has its minimum subtracted from
// every allowed cell; then the same is done per column on the row-reduced
// matrix. Rows and columns whose minimum is already 0 are untouched. A row
// or column with no allowed cell contributes nothing and marks the node
// infeasible.
//
// Reduce is idempotent: on a reduced matrix it returns 0 and changes nothing.
//
// Complexity: O(n²).
func (n *Node) Reduce() int64 {
	added := n.reduceRows() + n.reduceCols()
	if added != 0 {
		n.sel = selection{}
	}

	return added
}

// reduceRows subtracts each row minimum; returns the total subtracted.
func (n *Node) reduceRows() int64 {
	var (
		size  = n.m.Size()
		total int64
		i     int
	)
	for i = 0; i < size; i++ {
		lo, ok := n.m.RowMin(i)
		if !ok {
			n.infeasible = true
			continue
		}
		if lo == 0 {
			continue
		}
		n.m.SubRow(i, lo)
		total += lo
	}
	n.bound += total

	return total
}

// reduceCols subtracts each column minimum; returns the total subtracted.
func (n *Node) reduceCols() int64 {
	var (
		size  = n.m.Size()
		total int64
		j     int
	)
	for j = 0; j < size; j++ {
		lo, ok := n.m.ColMin(j)
		if !ok {
			n.infeasible = true
			continue
		}
		if lo == 0 {
			continue
		}
		n.m.SubCol(j, lo)
		total += lo
	}
	n.bound += total

	return total
}
