// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors of this package return these sentinels
// (optionally wrapped with call-site context via %w). Tests match them with
// errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested size is invalid (n <= 0) or a
	// row slice is ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0..n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeCost is returned by Set for a negative cost. Forbidden
	// edges are expressed with Forbid, never with a negative value.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrCostTooLarge is returned for costs above MaxCost.
	ErrCostTooLarge = errors.New("matrix: cost exceeds MaxCost")

	// ErrNaN is returned by FromMatrix when a NaN entry is encountered.
	ErrNaN = errors.New("matrix: NaN entry")

	// ErrNonInteger is returned by FromMatrix for finite entries with a
	// fractional part.
	ErrNonInteger = errors.New("matrix: non-integer entry")

	// ErrNilMatrix indicates that a nil Matrix or *Costs was supplied.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
