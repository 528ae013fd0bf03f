// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts a gonum matrix to Matrix.
type gonumView struct{ m mat.Matrix }

func (g gonumView) Rows() int {
	r, _ := g.m.Dims()

	return r
}

func (g gonumView) Cols() int {
	_, c := g.m.Dims()

	return c
}

func (g gonumView) At(i, j int) (float64, error) { return g.m.At(i, j), nil }

// FromDense converts a gonum matrix with the FromMatrix conventions
// (+Inf forbids an edge, values must be non-negative integers).
// A nil interface or a typed nil pointer such as (*mat.Dense)(nil) yields
// ErrNilMatrix.
func FromDense(m mat.Matrix) (*Costs, error) {
	if m == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("FromDense: %T: %w", m, ErrNilMatrix)
	}

	return FromMatrix(gonumView{m: m})
}

// Dense returns c as a gonum matrix with +Inf in forbidden cells.
func (c *Costs) Dense() *mat.Dense {
	d := mat.NewDense(c.n, c.n, nil)
	var i, j int
	for i = 0; i < c.n; i++ {
		for j = 0; j < c.n; j++ {
			if v, ok := c.At(i, j); ok {
				d.Set(i, j, float64(v))
			} else {
				d.Set(i, j, math.Inf(1))
			}
		}
	}

	return d
}
