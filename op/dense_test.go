// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestDenseMatrixOpStandard(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	o := NewDenseMatrixOp(a)

	assert.Equal(t, 2, o.Dim())

	x := []float64{1, 1}
	dst := make([]float64, 2)
	o.ApplyA(dst, x)
	assert.InDeltaSlice(t, []float64{3, 3}, dst, 1e-12)

	o.ApplyB(dst, x)
	assert.InDeltaSlice(t, []float64{1, 1}, dst, 1e-12)

	assert.InDelta(t, 2.0, o.DotB(x, x), 1e-12)
	assert.InDelta(t, 1.4142135623730951, o.NormB(x), 1e-12)
}

func TestDenseMatrixOpGeneralized(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	b := mat.NewDense(2, 2, []float64{2, 0, 0, 2})
	o := NewGeneralizedDenseMatrixOp(a, b)

	x := []float64{1, 1}
	dst := make([]float64, 2)
	o.ApplyB(dst, x)
	assert.InDeltaSlice(t, []float64{2, 2}, dst, 1e-12)

	// x^T*B*y = x . (B*y) = 1*2 + 1*2 = 4.
	assert.InDelta(t, 4.0, o.DotB(x, x), 1e-12)
	assert.InDelta(t, 2.0, o.NormB(x), 1e-12)
}
