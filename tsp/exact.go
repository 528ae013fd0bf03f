// SPDX-License-Identifier: MIT

package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/atsp/matrix"
)

// MaxHeldKarp is the largest instance HeldKarp accepts. Its tables need
// n·2ⁿ entries.
const MaxHeldKarp = 16

// HeldKarp solves the instance exactly with the Held–Karp dynamic program.
// It is an independent reference for SolveATSP on small instances: it
// shares no code with the branch-and-bound search.
//
// dp[mask][j] is the cheapest path that starts at start, visits exactly the
// vertices in mask and ends at j. The tour is closed by the cheapest j→start.
//
// Errors:
//   - ErrNonSquare, ErrStartOutOfRange for bad input.
//   - ErrTooLarge for n > MaxHeldKarp.
//   - ErrIncompleteGraph if no Hamiltonian cycle exists.
//
// Time complexity:   O(n²·2ⁿ)
// Memory complexity: O(n·2ⁿ)
func HeldKarp(c *matrix.Costs, start int) (TSResult, error) {
	if c == nil || c.Size() < 2 {
		return TSResult{}, ErrNonSquare
	}
	var n = c.Size()
	if err := validateStartVertex(n, start); err != nil {
		return TSResult{}, err
	}
	if n > MaxHeldKarp {
		return TSResult{}, fmt.Errorf("HeldKarp: n=%d > %d: %w", n, MaxHeldKarp, ErrTooLarge)
	}

	const unreached = int64(math.MaxInt64)
	var (
		full   = 1<<n - 1
		first  = 1 << start
		dp     = make([][]int64, 1<<n)
		parent = make([][]int, 1<<n)
		mask   int
		j, k   int
	)
	for mask = 0; mask <= full; mask++ {
		dp[mask] = make([]int64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = unreached
			parent[mask][j] = -1
		}
	}
	dp[first][start] = 0

	for mask = 0; mask <= full; mask++ {
		if mask&first == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || dp[prev][k] == unreached {
					continue
				}
				w, ok := c.At(k, j)
				if !ok {
					continue
				}
				if cand := dp[prev][k] + w; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	var (
		best = unreached
		last = -1
	)
	for j = 0; j < n; j++ {
		if j == start || dp[full][j] == unreached {
			continue
		}
		w, ok := c.At(j, start)
		if !ok {
			continue
		}
		if total := dp[full][j] + w; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return TSResult{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	mask, j = full, last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return TSResult{Tour: tour, Cost: best}, nil
}
