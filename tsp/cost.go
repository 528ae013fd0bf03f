// SPDX-License-Identifier: MIT

// Package tsp - tour cost.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/atsp/matrix"
)

// TourCost sums c over the edges tour[i]→tour[i+1] of a closed tour.
//
// Errors:
//   - ErrNonSquare for a nil matrix.
//   - ErrDimensionMismatch for a tour shorter than 2 or with indices outside [0..n).
//   - ErrIncompleteGraph (wrapped with the edge) when the tour uses a forbidden edge.
//
// Complexity: O(len(tour)).
func TourCost(c *matrix.Costs, tour []int) (int64, error) {
	if c == nil {
		return 0, ErrNonSquare
	}
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		n     = c.Size()
		total int64
		i     int
		u, v  int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, ok := c.At(u, v)
		if !ok {
			return 0, fmt.Errorf("edge %d→%d: %w", u, v, ErrIncompleteGraph)
		}
		total += w
	}

	return total, nil
}
