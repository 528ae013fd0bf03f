// SPDX-License-Identifier: MIT

package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/tsp"
)

// TestThreeOptStar_FourCity swaps the last two cities of the greedy tour.
func TestThreeOptStar_FourCity(t *testing.T) {
	c := mustCosts(t, fourCity())
	in := []int{0, 1, 2, 3, 0}

	out, cost, err := tsp.ThreeOptStar(c, in, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, out)
	require.Equal(t, int64(35), cost)
	require.Equal(t, []int{0, 1, 2, 3, 0}, in, "input is not modified")

	out, cost, err = tsp.ThreeOptStar(c, out, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, out, "local optimum is stable")
	require.Equal(t, int64(35), cost)
}

// TestThreeOptStar_NeverWorse checks monotonicity and validity on random tours.
func TestThreeOptStar_NeverWorse(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var round int
	for round = 0; round < 30; round++ {
		n := 4 + rng.Intn(8)
		c := mustCosts(t, randomRows(rng, n, 100, 0))

		perm := rng.Perm(n)
		tour := append(perm, perm[0])
		before, err := tsp.TourCost(c, tour)
		require.NoError(t, err)

		out, cost, err := tsp.ThreeOptStar(c, tour, 0)
		require.NoError(t, err)
		require.LessOrEqual(t, cost, before)
		require.NoError(t, tsp.ValidateTour(out, n, perm[0]))
		got, err := tsp.TourCost(c, out)
		require.NoError(t, err)
		require.Equal(t, cost, got)
	}
}

// TestThreeOptStar_MoveCap applies at most maxMoves moves.
func TestThreeOptStar_MoveCap(t *testing.T) {
	c := mustCosts(t, fourCity())
	out, cost, err := tsp.ThreeOptStar(c, []int{0, 2, 1, 3, 0}, 1)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(out, 4, 0))
	before, err := tsp.TourCost(c, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.Less(t, cost, before)
}

// TestThreeOptStar_Errors covers the guards.
func TestThreeOptStar_Errors(t *testing.T) {
	c := mustCosts(t, fourCity())

	_, _, err := tsp.ThreeOptStar(nil, []int{0, 1, 0}, 0)
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	_, _, err = tsp.ThreeOptStar(c, nil, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, _, err = tsp.ThreeOptStar(c, []int{0, 1, 2, 0}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, _, err = tsp.ThreeOptStar(mustCosts(t, [][]int64{
		{x, 1, x},
		{x, x, 1},
		{1, x, x},
	}), []int{0, 2, 1, 0}, 0)
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)
}
