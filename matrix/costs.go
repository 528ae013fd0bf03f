// SPDX-License-Identifier: MIT

// Package matrix - Costs storage (row-major) with explicit forbidden cells.
//
// Purpose:
//   - Keep a cache-friendly flat buffer addressed as i*n + j.
//   - Represent "no edge" as a separate allowed mask, so that no caller ever
//     has to reason about sentinel arithmetic.
//   - Provide the row/column primitives needed by reduced-cost-matrix
//     algorithms without exposing the buffers.
//
// Complexity quicksheet:
//   - NewCosts: O(n²); At/Set/Forbid/Sub: O(1); RowMin/ColMin/SubRow/SubCol: O(n);
//     Clone/Without: O(n²).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxSet     = "Set"
	ctxForbid  = "Forbid"
	ctxWithout = "Without"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen   = "["
	_fmtRowClose  = "]\n"
	_fmtSep       = " "
	_fmtForbidden = "∞"
)

// costsErrorf wraps a sentinel with a uniform Costs context and coordinates.
func costsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Costs.%s(%d,%d): %w", method, row, col, err)
}

// Costs is a square n×n matrix of directed edge costs.
//   - n is the order (rows == cols == n).
//   - w holds costs in row-major order; w[k] is meaningful only when open[k].
//   - open[k] reports whether the edge is allowed; the zero value is forbidden.
type Costs struct {
	n    int
	w    []int64
	open []bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Costs)(nil)

// NewCosts creates an n×n matrix with every cell forbidden.
//
// Errors:
//   - ErrBadShape if n <= 0.
//
// Complexity: O(n²) time and space.
func NewCosts(n int) (*Costs, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewCosts(%d): %w", n, ErrBadShape)
	}

	return newCosts(n), nil
}

// newCosts allocates without validation; n must be positive or zero.
func newCosts(n int) *Costs {
	return &Costs{
		n:    n,
		w:    make([]int64, n*n),
		open: make([]bool, n*n),
	}
}

// Size returns the order n of the matrix.
func (c *Costs) Size() int { return c.n }

// inRange reports whether (i, j) addresses a cell.
func (c *Costs) inRange(i, j int) bool {
	return i >= 0 && i < c.n && j >= 0 && j < c.n
}

// At returns the cost of edge i→j and whether the edge is allowed.
// Out-of-range indices report (0, false), the same as a forbidden cell.
//
// Complexity: O(1).
func (c *Costs) At(i, j int) (int64, bool) {
	if !c.inRange(i, j) {
		return 0, false
	}
	k := i*c.n + j
	if !c.open[k] {
		return 0, false
	}

	return c.w[k], true
}

// Allowed reports whether edge i→j is allowed.
func (c *Costs) Allowed(i, j int) bool {
	_, ok := c.At(i, j)

	return ok
}

// Set allows edge i→j with cost v.
//
// Errors:
//   - ErrOutOfRange for indices outside [0..n).
//   - ErrNegativeCost for v < 0 (use Forbid for missing edges).
//   - ErrCostTooLarge for v > MaxCost.
//
// Complexity: O(1).
func (c *Costs) Set(i, j int, v int64) error {
	if !c.inRange(i, j) {
		return costsErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if v < 0 {
		return costsErrorf(ctxSet, i, j, ErrNegativeCost)
	}
	if v > MaxCost {
		return costsErrorf(ctxSet, i, j, ErrCostTooLarge)
	}
	k := i*c.n + j
	c.w[k] = v
	c.open[k] = true

	return nil
}

// Forbid marks edge i→j as not allowed. Forbidding a forbidden cell is a no-op.
//
// Errors:
//   - ErrOutOfRange for indices outside [0..n).
func (c *Costs) Forbid(i, j int) error {
	if !c.inRange(i, j) {
		return costsErrorf(ctxForbid, i, j, ErrOutOfRange)
	}
	k := i*c.n + j
	c.open[k] = false
	c.w[k] = 0

	return nil
}

// Sub subtracts d from cell (i, j) if it is allowed; forbidden or
// out-of-range cells are left untouched.
func (c *Costs) Sub(i, j int, d int64) {
	if !c.inRange(i, j) {
		return
	}
	k := i*c.n + j
	if c.open[k] {
		c.w[k] -= d
	}
}

// RowMin returns the minimum allowed value in row i.
// ok is false when the row has no allowed cell (or i is out of range).
//
// Complexity: O(n).
func (c *Costs) RowMin(i int) (lo int64, ok bool) {
	if i < 0 || i >= c.n {
		return 0, false
	}
	var (
		base = i * c.n
		j    int
	)
	for j = 0; j < c.n; j++ {
		if !c.open[base+j] {
			continue
		}
		if !ok || c.w[base+j] < lo {
			lo = c.w[base+j]
			ok = true
		}
	}

	return lo, ok
}

// ColMin returns the minimum allowed value in column j.
// ok is false when the column has no allowed cell (or j is out of range).
//
// Complexity: O(n).
func (c *Costs) ColMin(j int) (lo int64, ok bool) {
	if j < 0 || j >= c.n {
		return 0, false
	}
	var (
		i, k int
	)
	for i = 0; i < c.n; i++ {
		k = i*c.n + j
		if !c.open[k] {
			continue
		}
		if !ok || c.w[k] < lo {
			lo = c.w[k]
			ok = true
		}
	}

	return lo, ok
}

// SubRow subtracts d from every allowed cell of row i.
//
// Complexity: O(n).
func (c *Costs) SubRow(i int, d int64) {
	if i < 0 || i >= c.n || d == 0 {
		return
	}
	var (
		base = i * c.n
		j    int
	)
	for j = 0; j < c.n; j++ {
		if c.open[base+j] {
			c.w[base+j] -= d
		}
	}
}

// SubCol subtracts d from every allowed cell of column j.
//
// Complexity: O(n).
func (c *Costs) SubCol(j int, d int64) {
	if j < 0 || j >= c.n || d == 0 {
		return
	}
	var i, k int
	for i = 0; i < c.n; i++ {
		k = i*c.n + j
		if c.open[k] {
			c.w[k] -= d
		}
	}
}

// Clone returns an independent deep copy.
//
// Complexity: O(n²).
func (c *Costs) Clone() *Costs {
	cp := newCosts(c.n)
	copy(cp.w, c.w)
	copy(cp.open, c.open)

	return cp
}

// Without returns an independent (n−1)×(n−1) copy with row r and column col
// removed; the relative order of the remaining rows and columns is kept.
//
// Errors:
//   - ErrOutOfRange if r or col is outside [0..n).
//   - ErrBadShape if n < 2.
//
// Complexity: O(n²).
func (c *Costs) Without(r, col int) (*Costs, error) {
	if !c.inRange(r, col) {
		return nil, costsErrorf(ctxWithout, r, col, ErrOutOfRange)
	}
	if c.n < 2 {
		return nil, costsErrorf(ctxWithout, r, col, ErrBadShape)
	}

	var (
		m        = c.n - 1
		res      = newCosts(m)
		i, j     int
		dst, src int
	)
	for i = 0; i < c.n; i++ {
		if i == r {
			continue
		}
		for j = 0; j < c.n; j++ {
			if j == col {
				continue
			}
			src = i*c.n + j
			res.w[dst] = c.w[src]
			res.open[dst] = c.open[src]
			dst++
		}
	}

	return res, nil
}

// Rows exports the matrix as [][]int64 using −1 for forbidden cells, the
// textbook convention read back by FromRows.
//
// Complexity: O(n²).
func (c *Costs) Rows() [][]int64 {
	out := make([][]int64, c.n)
	var i, j int
	for i = 0; i < c.n; i++ {
		out[i] = make([]int64, c.n)
		for j = 0; j < c.n; j++ {
			if v, ok := c.At(i, j); ok {
				out[i][j] = v
			} else {
				out[i][j] = -1
			}
		}
	}

	return out
}

// String renders one bracketed line per row; forbidden cells print as ∞.
// Intended for logs and test failure messages.
func (c *Costs) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < c.n; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < c.n; j++ {
			if v, ok := c.At(i, j); ok {
				b.WriteString(strconv.FormatInt(v, 10))
			} else {
				b.WriteString(_fmtForbidden)
			}
			if j+1 < c.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
