// SPDX-License-Identifier: MIT

package tsp

import "github.com/katalvlaran/atsp/matrix"

// seed offers the nearest-neighbour tour, polished when asked, as the
// first incumbent.
func (e *bbEngine) seed() {
	tour, cost, ok := nearestNeighbor(e.costs, e.opts.StartVertex)
	if !ok {
		return
	}
	if e.opts.PolishSeed {
		if better, bc, err := ThreeOptStar(e.costs, tour, 0); err == nil {
			tour, cost = better, bc
		}
	}
	e.offerTour(tour, cost)
}

// nearestNeighbor builds a greedy closed tour from start: always take the
// cheapest allowed edge to an unvisited vertex (lowest index on ties).
// ok is false when the greedy walk gets stuck or cannot close.
//
// Complexity: O(n²).
func nearestNeighbor(c *matrix.Costs, start int) (tour []int, cost int64, ok bool) {
	var (
		n       = c.Size()
		visited = make([]bool, n)
		at      = start
		step, v int
	)
	tour = make([]int, 0, n+1)
	tour = append(tour, start)
	visited[start] = true

	for step = 1; step < n; step++ {
		next, best := -1, int64(0)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			w, allowed := c.At(at, v)
			if allowed && (next < 0 || w < best) {
				next, best = v, w
			}
		}
		if next < 0 {
			return nil, 0, false
		}
		visited[next] = true
		tour = append(tour, next)
		cost += best
		at = next
	}

	w, allowed := c.At(at, start)
	if !allowed {
		return nil, 0, false
	}

	return append(tour, start), cost + w, true
}
