// SPDX-License-Identifier: MIT

package little_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/little"
	"github.com/katalvlaran/atsp/matrix"
)

// x marks a forbidden cell in test matrices.
const x = -1

// fourCity is the worked 4-city instance; its unique optimum costs 35
// along 1→2→4→3→1 (1-based).
func fourCity() [][]int64 {
	return [][]int64{
		{x, 10, 15, 20},
		{5, x, 9, 10},
		{6, 13, x, 12},
		{8, 8, 9, x},
	}
}

// mustCosts builds a cost matrix or fails the test.
func mustCosts(t testing.TB, rows [][]int64) *matrix.Costs {
	t.Helper()
	c, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return c
}

// mustRoot builds a reduced root node or fails the test.
func mustRoot(t testing.TB, rows [][]int64) *little.Node {
	t.Helper()
	n, err := little.NewRoot(mustCosts(t, rows))
	require.NoError(t, err)

	return n
}

// nodeRows renders a node's reduced matrix with -1 for forbidden cells.
func nodeRows(n *little.Node) [][]int64 { return n.Matrix().Rows() }
