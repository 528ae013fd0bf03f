// SPDX-License-Identifier: MIT

package little_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTransToLeftBranch_FourCity excludes 0→1 from the reduced worked
// instance: the bound grows by the penalty and row 0 is re-reduced by 4.
func TestTransToLeftBranch_FourCity(t *testing.T) {
	root := mustRoot(t, fourCity())
	require.True(t, root.SelectBranchPath())

	require.True(t, root.TransToLeftBranch())
	require.Equal(t, int64(39), root.LowerBound())
	require.True(t, root.Feasible())
	require.Equal(t, 4, root.Size())
	require.Equal(t, [][]int64{
		{x, x, 0, 1},
		{0, x, 3, 0},
		{0, 7, x, 1},
		{0, 0, 0, x},
	}, nodeRows(root))

	// The node is reduced again, so a second pass costs nothing.
	require.Equal(t, int64(0), root.Reduce())

	// Without a fresh selection the left branch is refused.
	require.False(t, root.TransToLeftBranch())
	require.Equal(t, int64(39), root.LowerBound())
}

// TestTransToLeftBranch_NoSelection leaves the node untouched.
func TestTransToLeftBranch_NoSelection(t *testing.T) {
	root := mustRoot(t, fourCity())
	before := nodeRows(root)

	require.False(t, root.TransToLeftBranch())
	require.Equal(t, int64(35), root.LowerBound())
	require.Equal(t, before, nodeRows(root))
}

// TestTransToLeftBranch_InfinitePenalty marks the node infeasible and keeps
// the bound.
func TestTransToLeftBranch_InfinitePenalty(t *testing.T) {
	root := mustRoot(t, [][]int64{
		{x, 5, x},
		{1, x, 2},
		{3, 4, x},
	})
	require.True(t, root.SelectBranchPath())

	require.True(t, root.TransToLeftBranch())
	require.False(t, root.Feasible())
	require.Equal(t, int64(10), root.LowerBound())
	_, ok := root.CostOf(0, 1)
	require.False(t, ok)
}

// TestLeftThenRight_InfinitePenalty follows the only feasible side of an
// infinite-penalty branch down to the tour 1→2→3→1 of cost 5+2+3.
func TestLeftThenRight_InfinitePenalty(t *testing.T) {
	root := mustRoot(t, [][]int64{
		{x, 5, x},
		{1, x, 2},
		{3, 4, x},
	})
	require.True(t, root.SelectBranchPath())

	right, err := root.BranchRight()
	require.NoError(t, err)
	require.True(t, right.Feasible())
	require.Equal(t, 2, right.Size())
	require.Equal(t, int64(10), right.LowerBound())

	require.NoError(t, right.CalSolution())
	require.Equal(t, []int{1, 2, 3, 1}, right.FinalPath())
	require.Equal(t, int64(10), right.LowerBound())
}
