// SPDX-License-Identifier: MIT

// Package tsp - validation helpers shared by the solvers.
//
// Deterministic, side-effect free; sentinel errors from types.go only.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/atsp/matrix"
)

// validateInput checks options and matrix shape and returns n.
//
// Complexity: O(1).
func validateInput(c *matrix.Costs, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	if c == nil || c.Size() < 2 {
		return 0, ErrNonSquare
	}
	var n = c.Size()
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions rejects negative limits.
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit=%v: %w", opts.TimeLimit, ErrDimensionMismatch)
	}
	if opts.MaxNodes < 0 {
		return fmt.Errorf("MaxNodes=%d: %w", opts.MaxNodes, ErrDimensionMismatch)
	}

	return nil
}

// validateStartVertex checks 0 <= start < n.
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}
