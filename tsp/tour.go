// SPDX-License-Identifier: MIT

// Package tsp - tour utilities.
//
// Tours are 0-based closed sequences: for n vertices len(tour) == n+1 and
// tour[0] == tour[n] == start. The helpers only look at tour structure;
// TourCost (cost.go) adds the matrix.
package tsp

// ValidateTour enforces the Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v in [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of a closed tour shifted so that
// out[0] == out[n] == start. Direction is preserved.
//
// Errors: ErrDimensionMismatch for an open or empty tour or one that does
// not contain start; ErrStartOutOfRange for start outside [0..n).
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return nil, ErrDimensionMismatch
	}
	var n = len(tour) - 1
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrDimensionMismatch
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// fromOneBased converts a 1-based closed city sequence into a 0-based tour.
func fromOneBased(path []int) []int {
	out := make([]int, len(path))
	var i int
	for i = range path {
		out[i] = path[i] - 1
	}

	return out
}
