// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timokoch/spectra/internal/dok"
)

func TestSparseMatrixOp(t *testing.T) {
	a := dok.New(3, 3)
	a.SetSym(0, 0, 4)
	a.SetSym(0, 1, -1)
	a.SetSym(1, 1, 3)
	a.SetSym(2, 2, 5)

	o := NewSparseMatrixOp(a)
	assert.Equal(t, 3, o.Dim())

	x := []float64{1, 0, 0}
	dst := make([]float64, 3)
	o.ApplyA(dst, x)
	assert.InDeltaSlice(t, []float64{4, -1, 0}, dst, 1e-12)

	o.ApplyB(dst, x)
	assert.InDeltaSlice(t, x, dst, 1e-12)

	assert.InDelta(t, 1.0, o.DotB(x, x), 1e-12)
	assert.InDelta(t, 1.0, o.NormB(x), 1e-12)
}

func TestSparseMatrixOpReflectsMutation(t *testing.T) {
	a := dok.New(2, 2)
	o := NewSparseMatrixOp(a)

	dst := make([]float64, 2)
	o.ApplyA(dst, []float64{1, 1})
	assert.InDeltaSlice(t, []float64{0, 0}, dst, 1e-12)

	a.SetSym(0, 1, 2)
	o.ApplyA(dst, []float64{1, 1})
	assert.InDeltaSlice(t, []float64{2, 2}, dst, 1e-12)
}
