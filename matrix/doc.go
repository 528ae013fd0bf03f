// SPDX-License-Identifier: MIT

// Package matrix provides the square integer cost matrix used by the ATSP
// solver.
//
// A Costs value stores, for every ordered pair of cities (i, j), either a
// non-negative int64 cost or the explicit "forbidden" state. Forbidden is a
// real state of the cell, not a magic value: arithmetic helpers (Sub,
// SubRow, SubCol) skip forbidden cells and minimum scans ignore them, so an
// "infinite" edge can never leak into a bound as a finite number.
//
// Constructors:
//
//   - NewCosts(n)        n×n matrix with every cell forbidden.
//   - FromRows(rows)     from [][]int64; any negative value means forbidden
//     (the conventional −1 marker of textbook ATSP instances).
//   - FromMatrix(m)      from a float64 Matrix; +Inf means forbidden.
//   - FromDense(m)       from a gonum mat.Matrix, same rules as FromMatrix.
//
// Structural helpers used by branch-and-bound:
//
//   - RowMin / ColMin    minimum allowed value of a row/column.
//   - SubRow / SubCol    subtract from every allowed cell of a row/column.
//   - Without(r, c)      copy with one row and one column removed.
//
// Complexity quicksheet:
//   - NewCosts/FromRows/Clone/Without: O(n²); At/Set/Forbid/Sub: O(1);
//     RowMin/ColMin/SubRow/SubCol: O(n).
package matrix
