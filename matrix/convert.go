// SPDX-License-Identifier: MIT

// Package matrix - converters into Costs.
//
// FromRows reads the integer convention of textbook ATSP instances (negative
// entry = no edge). FromMatrix reads float64 distance matrices where
// math.Inf(1) means no edge, and insists on integral values: bound
// arithmetic downstream is exact integer arithmetic.
package matrix

import (
	"fmt"
	"math"
)

// FromRows builds a Costs from a square [][]int64.
// Any negative entry marks the edge as forbidden.
//
// Errors:
//   - ErrBadShape for an empty input.
//   - ErrNonSquare if some row length differs from len(rows).
//   - ErrCostTooLarge for entries above MaxCost.
//
// Complexity: O(n²).
func FromRows(rows [][]int64) (*Costs, error) {
	var n = len(rows)
	if n == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}

	var (
		c    = newCosts(n)
		i, j int
		v    int64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			v = rows[i][j]
			if v < 0 {
				continue // forbidden
			}
			if err := c.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("FromRows: %w", err)
			}
		}
	}

	return c, nil
}

// FromMatrix converts a float64 Matrix into Costs.
//   - +Inf entries become forbidden cells.
//   - NaN, negative values (including −Inf) and fractional values are rejected.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNonSquare for shape problems.
//   - ErrNaN, ErrNegativeCost, ErrNonInteger, ErrCostTooLarge for values.
//   - Errors from m.At are wrapped and returned.
//
// Complexity: O(n²).
func FromMatrix(m Matrix) (*Costs, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}
	var n = m.Rows()
	if n <= 0 {
		return nil, fmt.Errorf("FromMatrix: %w", ErrBadShape)
	}
	if m.Cols() != n {
		return nil, fmt.Errorf("FromMatrix: %dx%d: %w", n, m.Cols(), ErrNonSquare)
	}

	var (
		c    = newCosts(n)
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("FromMatrix: At(%d,%d): %w", i, j, err)
			}
			switch {
			case math.IsNaN(x):
				return nil, costsErrorf("FromMatrix", i, j, ErrNaN)
			case math.IsInf(x, 1):
				continue // forbidden
			case x < 0:
				return nil, costsErrorf("FromMatrix", i, j, ErrNegativeCost)
			case x > float64(MaxCost):
				return nil, costsErrorf("FromMatrix", i, j, ErrCostTooLarge)
			case x != math.Trunc(x):
				return nil, costsErrorf("FromMatrix", i, j, ErrNonInteger)
			}
			c.w[i*n+j] = int64(x)
			c.open[i*n+j] = true
		}
	}

	return c, nil
}
