// SPDX-License-Identifier: MIT

package little

import "github.com/katalvlaran/atsp/matrix"

// White-box bridge for package little_test.
//
// Exposes the tour walk and an unreduced node constructor, so the base case
// and reconstruction can be driven with matrices the search itself would
// never produce.

// ExportedCalFinalPath exposes calFinalPath.
var ExportedCalFinalPath = calFinalPath

// NewUnreduced_TestOnly builds a node over a clone of c with the given
// labels and committed path, without reducing it. order is the size of the
// original problem.
func NewUnreduced_TestOnly(c *matrix.Costs, order int, rows, cols []int, path []Edge) *Node {
	n := &Node{
		order:  order,
		m:      c.Clone(),
		rows:   append([]int(nil), rows...),
		cols:   append([]int(nil), cols...),
		path:   append([]Edge(nil), path...),
		chains: newChainIndex(),
	}
	var e Edge
	for _, e = range path {
		n.chains.link(e)
	}

	return n
}
