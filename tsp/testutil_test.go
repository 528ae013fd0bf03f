// SPDX-License-Identifier: MIT

// Package tsp_test - shared helpers.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/matrix"
	"github.com/katalvlaran/atsp/tsp"
)

const (
	// x marks a forbidden cell in test matrices.
	x = -1

	// seedDet is the deterministic seed for generated instances.
	seedDet = int64(42)
)

// fourCity is the worked instance: optimum 35 along 0→1→3→2→0.
func fourCity() [][]int64 {
	return [][]int64{
		{x, 10, 15, 20},
		{5, x, 9, 10},
		{6, 13, x, 12},
		{8, 8, 9, x},
	}
}

// randomRows returns an n×n instance with costs in [1..maxCost], a
// forbidden diagonal and, when holes > 0, about one forbidden edge in holes.
func randomRows(rng *rand.Rand, n int, maxCost int64, holes int) [][]int64 {
	rows := make([][]int64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				rows[i][j] = x
			case holes > 0 && rng.Intn(holes) == 0:
				rows[i][j] = x
			default:
				rows[i][j] = 1 + rng.Int63n(maxCost)
			}
		}
	}

	return rows
}

// mustCosts builds a cost matrix or fails the test.
func mustCosts(t testing.TB, rows [][]int64) *matrix.Costs {
	t.Helper()
	c, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return c
}

// noSeed returns DefaultOptions without the nearest-neighbour incumbent.
func noSeed() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.SeedIncumbent = false

	return opts
}

// requireTour checks shape and cost of a solver result against c.
func requireTour(t *testing.T, c *matrix.Costs, res tsp.TSResult, start int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, c.Size(), start))
	cost, err := tsp.TourCost(c, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, cost)
}
