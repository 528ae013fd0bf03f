// SPDX-License-Identifier: MIT

// Package tsp - 3-opt* local search for asymmetric tours.
//
// A 3-opt* move cuts a closed tour T into P = T[0..i-1], S1 = T[i..j-1],
// S2 = T[j..k-1] and S3 = T[k..n-1] and reconnects it as P + S2 + S1 + S3.
// It is the only 3-edge exchange that keeps every segment's direction, so
// the internal arcs keep their cost on an asymmetric matrix and only three
// boundary arcs change:
//
//	Δ = (a→d) + (e→b) + (c→f) − [(a→b) + (c→d) + (e→f)]
//	a=T[i−1], b=T[i], c=T[j−1], d=T[j], e=T[k−1], f=T[k].
//
// T[0] never moves, so the start vertex is preserved. Moves that would use
// a forbidden edge are skipped.
//
// Complexity: O(n³) per sweep; first improvement restarts the sweep.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/atsp/matrix"
)

// ThreeOptStar improves a closed tour by first-improvement 3-opt* moves
// until no move helps or maxMoves moves were applied (0 = unlimited).
// The input tour is not modified.
//
// Errors: ErrDimensionMismatch for a malformed tour; TourCost errors when
// the input uses a forbidden edge.
func ThreeOptStar(c *matrix.Costs, tour []int, maxMoves int) ([]int, int64, error) {
	if c == nil {
		return nil, 0, ErrNonSquare
	}
	var n = c.Size()
	if len(tour) == 0 {
		return nil, 0, ErrDimensionMismatch
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return nil, 0, fmt.Errorf("ThreeOptStar: %w", err)
	}
	cost, err := TourCost(c, tour)
	if err != nil {
		return nil, 0, fmt.Errorf("ThreeOptStar: %w", err)
	}

	var (
		cur      = append([]int(nil), tour...)
		accepted int
	)
	for maxMoves == 0 || accepted < maxMoves {
		i, j, k, delta, ok := firstImprovingSwap(c, cur)
		if !ok {
			break
		}
		cur = applySegmentSwap(cur, i, j, k)
		cost += delta
		accepted++
	}

	return cur, cost, nil
}

// firstImprovingSwap scans 1 <= i < j < k <= n in lexicographic order and
// returns the first move with Δ < 0.
func firstImprovingSwap(c *matrix.Costs, t []int) (i, j, k int, delta int64, ok bool) {
	var n = len(t) - 1
	for i = 1; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k <= n; k++ {
				var (
					a, b = t[i-1], t[i]
					cc   = t[j-1]
					d, e = t[j], t[k-1]
					f    = t[k]
				)
				ab, _ := c.At(a, b)
				cd, _ := c.At(cc, d)
				ef, _ := c.At(e, f)
				ad, ok1 := c.At(a, d)
				eb, ok2 := c.At(e, b)
				cf, ok3 := c.At(cc, f)
				if !ok1 || !ok2 || !ok3 {
					continue
				}
				if delta = ad + eb + cf - ab - cd - ef; delta < 0 {
					return i, j, k, delta, true
				}
			}
		}
	}

	return 0, 0, 0, 0, false
}

// applySegmentSwap assembles P + S2 + S1 + S3 and closes the tour.
func applySegmentSwap(t []int, i, j, k int) []int {
	var n = len(t) - 1
	out := make([]int, 0, n+1)
	out = append(out, t[:i]...)
	out = append(out, t[j:k]...)
	out = append(out, t[i:j]...)
	out = append(out, t[k:n]...)

	return append(out, t[0])
}
