// SPDX-License-Identifier: MIT

// Package little - base case (2x2) and tour reconstruction.
package little

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// CalSolution completes a 2x2 node into a full tour.
//
// The two ways to finish are the diagonal pairing (0,0)+(1,1) and the
// off-diagonal pairing (0,1)+(1,0). A pairing is feasible when both of its
// cells are allowed; when both are feasible the cheaper wins, the
// off-diagonal one on ties. The winning cost is added to the bound, both
// edges are committed and the tour is rebuilt from the committed edges.
//
// Errors:
//   - ErrNotBaseCase if Size() != 2.
//   - ErrSolved if the node was already solved.
//   - ErrInconsistent (wrapped with a diagnostic) when no pairing is
//     feasible or the committed edges do not form one Hamiltonian cycle.
//     The node must then be discarded and the search aborted.
//
// Complexity: O(n²) for the reconstruction walk, n = Order().
func (n *Node) CalSolution() error {
	if n.Solved() {
		return ErrSolved
	}
	if n.m.Size() != 2 {
		return fmt.Errorf("CalSolution: size=%d: %w", n.m.Size(), ErrNotBaseCase)
	}

	var (
		a00, ok00 = n.m.At(0, 0)
		a01, ok01 = n.m.At(0, 1)
		a10, ok10 = n.m.At(1, 0)
		a11, ok11 = n.m.At(1, 1)
		diag      = ok00 && ok11
		off       = ok01 && ok10
		useOff    bool
	)
	switch {
	case diag && off:
		useOff = a01+a10 <= a00+a11
	case off:
		useOff = true
	case diag:
		useOff = false
	default:
		return fmt.Errorf("CalSolution: residual %v has no feasible pairing: %w", n.m.Rows(), ErrInconsistent)
	}

	var e1, e2 Edge
	if useOff {
		n.bound += a01 + a10
		e1 = Edge{From: n.rows[0], To: n.cols[1]}
		e2 = Edge{From: n.rows[1], To: n.cols[0]}
	} else {
		n.bound += a00 + a11
		e1 = Edge{From: n.rows[0], To: n.cols[0]}
		e2 = Edge{From: n.rows[1], To: n.cols[1]}
	}
	n.path = append(n.path, e1, e2)

	tour, err := calFinalPath(n.path, n.order)
	if err != nil {
		return err
	}
	n.tour = tour
	n.sel = selection{}

	return nil
}

// calFinalPath walks the committed edges into a closed tour of 1-based
// cities, starting at the origin of the first edge. It returns order+1
// cities with the first repeated at the end.
//
// Errors: ErrInconsistent when len(path) != order, when the walk reaches a
// city with no unused outgoing edge, or when it visits a city twice before
// consuming every edge.
func calFinalPath(path []Edge, order int) ([]int, error) {
	if len(path) != order || order == 0 {
		return nil, fmt.Errorf("calFinalPath: %d committed edges for %d cities: %w", len(path), order, ErrInconsistent)
	}

	var (
		used    = make([]bool, len(path))
		visited = mapset.NewThreadUnsafeSetWithSize[int](order)
		out     = make([]int, 0, order+1)
		start   = path[0].From
		tail    = start
		step, k int
	)
	out = append(out, start+1)
	visited.Add(start)
	for step = 0; step < len(path); step++ {
		next := -1
		if step == 0 {
			next = 0
		} else {
			for k = range path {
				if !used[k] && path[k].From == tail {
					next = k
					break
				}
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("calFinalPath: no edge leaves city %d: %w", tail, ErrInconsistent)
		}
		used[next] = true
		tail = path[next].To
		out = append(out, tail+1)

		last := step == len(path)-1
		if last && tail != start {
			return nil, fmt.Errorf("calFinalPath: tour ends at %d, not %d: %w", tail, start, ErrInconsistent)
		}
		if !last && !visited.Add(tail) {
			return nil, fmt.Errorf("calFinalPath: city %d visited twice: %w", tail, ErrInconsistent)
		}
	}

	return out, nil
}
