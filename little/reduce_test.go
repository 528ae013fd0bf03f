// SPDX-License-Identifier: MIT

package little_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atsp/little"
)

// TestNewRoot_FourCityReduction checks the row-then-column reduction of the
// worked instance: rows give 10+5+6+8, columns give 1+5.
func TestNewRoot_FourCityReduction(t *testing.T) {
	root := mustRoot(t, fourCity())

	require.Equal(t, int64(35), root.LowerBound())
	require.Equal(t, 4, root.Size())
	require.Equal(t, 4, root.Order())
	require.True(t, root.Feasible())
	require.False(t, root.Solved())
	require.Equal(t, [][]int64{
		{x, 0, 4, 5},
		{0, x, 3, 0},
		{0, 7, x, 1},
		{0, 0, 0, x},
	}, nodeRows(root))
	require.Equal(t, []int{0, 1, 2, 3}, root.RowLabels())
	require.Equal(t, []int{0, 1, 2, 3}, root.ColLabels())
	require.Empty(t, root.Path())
	require.Empty(t, root.Chains())
	require.Nil(t, root.FinalPath())
}

// TestNewRoot_DoesNotAliasInput verifies that the caller's matrix is cloned.
func TestNewRoot_DoesNotAliasInput(t *testing.T) {
	c := mustCosts(t, fourCity())
	root, err := little.NewRoot(c)
	require.NoError(t, err)

	v, ok := c.At(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(10), v, "input must keep its original costs")

	v, ok = root.Cost(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(0), v)
}

// TestNewRoot_ForbidsDiagonal checks that self-loops never survive into the node.
func TestNewRoot_ForbidsDiagonal(t *testing.T) {
	root := mustRoot(t, [][]int64{
		{0, 3, 4},
		{2, 0, 6},
		{5, 1, 0},
	})

	var i int
	for i = 0; i < root.Size(); i++ {
		_, ok := root.Cost(i, i)
		require.False(t, ok, "diagonal cell (%d,%d) must be forbidden", i, i)
	}
	// rows: 3+2+1; column 2 is left at {1,4,-} and gives 1 more.
	require.Equal(t, int64(7), root.LowerBound())
}

// TestReduce_Idempotent verifies that reducing a reduced matrix adds nothing.
func TestReduce_Idempotent(t *testing.T) {
	root := mustRoot(t, fourCity())
	before := nodeRows(root)

	require.Equal(t, int64(0), root.Reduce())
	require.Equal(t, int64(35), root.LowerBound())
	require.Equal(t, before, nodeRows(root))
}

// TestReduce_EveryRowAndColumnHasZero checks the reduced-matrix invariant.
func TestReduce_EveryRowAndColumnHasZero(t *testing.T) {
	root := mustRoot(t, [][]int64{
		{x, 7, 3, 12, 9},
		{4, x, 8, 2, 11},
		{6, 5, x, 14, 3},
		{9, 1, 7, x, 4},
		{2, 8, 6, 5, x},
	})
	rows := nodeRows(root)

	var i, j int
	for i = range rows {
		rowZero, colZero := false, false
		for j = range rows {
			rowZero = rowZero || rows[i][j] == 0
			colZero = colZero || rows[j][i] == 0
		}
		require.True(t, rowZero, "row %d has no zero", i)
		require.True(t, colZero, "column %d has no zero", i)
	}
}

// TestReduce_RowWithoutAllowedCell marks the node infeasible and still
// reduces everything else.
func TestReduce_RowWithoutAllowedCell(t *testing.T) {
	root := mustRoot(t, [][]int64{
		{x, 2, 3},
		{x, x, x},
		{4, 5, x},
	})

	require.False(t, root.Feasible())
	// rows: 2 + 4; columns: c2 = {1,-,-} gives 1.
	require.Equal(t, int64(7), root.LowerBound())
	require.Equal(t, [][]int64{
		{x, 0, 0},
		{x, x, x},
		{0, 1, x},
	}, nodeRows(root))
}

// TestNewRoot_Errors covers the input guards.
func TestNewRoot_Errors(t *testing.T) {
	_, err := little.NewRoot(nil)
	require.ErrorIs(t, err, little.ErrNilCosts)

	_, err = little.NewRoot(mustCosts(t, [][]int64{{x}}))
	require.ErrorIs(t, err, little.ErrTooSmall)
}
