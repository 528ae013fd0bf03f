// SPDX-License-Identifier: MIT

package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/tsp"
)

// TestValidateTour covers every invariant violation.
func TestValidateTour(t *testing.T) {
	cases := []struct {
		name  string
		tour  []int
		n     int
		start int
		want  error
	}{
		{"valid", []int{1, 0, 2, 1}, 3, 1, nil},
		{"wrong length", []int{0, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"not closed", []int{0, 1, 2, 1}, 3, 0, tsp.ErrDimensionMismatch},
		{"wrong start", []int{1, 0, 2, 1}, 3, 0, tsp.ErrDimensionMismatch},
		{"duplicate", []int{0, 1, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"out of range", []int{0, 3, 1, 0}, 3, 0, tsp.ErrDimensionMismatch},
		{"start out of range", []int{0, 1, 2, 0}, 3, 5, tsp.ErrStartOutOfRange},
		{"empty", nil, 0, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n, tc.start)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRotateTourToStart keeps direction and closes the result.
func TestRotateTourToStart(t *testing.T) {
	in := []int{0, 2, 3, 1, 0}
	out, err := tsp.RotateTourToStart(in, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 0, 2, 3}, out)
	require.Equal(t, []int{0, 2, 3, 1, 0}, in, "input is not modified")

	_, err = tsp.RotateTourToStart([]int{0, 1, 2}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch, "open tour")

	_, err = tsp.RotateTourToStart([]int{0, 1, 0}, 2)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, err = tsp.RotateTourToStart([]int{1, 1, 1}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch, "start not in tour")
}

// TestTourCost sums directed edges and rejects forbidden ones.
func TestTourCost(t *testing.T) {
	c := mustCosts(t, fourCity())

	cost, err := tsp.TourCost(c, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, int64(35), cost)

	cost, err = tsp.TourCost(c, []int{0, 2, 3, 1, 0})
	require.NoError(t, err)
	require.Equal(t, int64(15+12+8+5), cost, "direction matters")

	_, err = tsp.TourCost(c, []int{0, 0, 1, 2, 3, 0})
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)

	_, err = tsp.TourCost(c, []int{0, 4})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}
