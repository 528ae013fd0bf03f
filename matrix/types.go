// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the cost matrix and its adapters.
package matrix

import "math"

// MaxCost is the largest edge cost accepted by Set and the converters.
// Capping single cells at the int32 range keeps every lower bound (a sum of
// at most n² cells) far inside int64 for any matrix that fits in memory.
const MaxCost = int64(math.MaxInt32)

// Matrix is the read-only float64 view accepted by FromMatrix.
// Any dense float matrix with math.Inf(1) for missing edges satisfies it and
// can be handed over as-is.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	At(i, j int) (float64, error)
}
