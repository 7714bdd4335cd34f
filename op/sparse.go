// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"gonum.org/v1/gonum/floats"

	"github.com/timokoch/spectra/internal/dok"
)

// SparseMatrixOp adapts a sparse, dictionary-of-keys operator A to the
// spectra.Operator contract for the standard (B = I) eigenproblem. It is
// the natural fit for the rotation-block and nilpotent-shift test
// matrices, which are built one nonzero entry at a time.
type SparseMatrixOp struct {
	a *dok.DOK
}

// NewSparseMatrixOp wraps a, taking ownership of it: further SetAt/SetSym
// calls on a are visible through the returned operator.
func NewSparseMatrixOp(a *dok.DOK) *SparseMatrixOp {
	return &SparseMatrixOp{a: a}
}

// Dim implements spectra.Operator.
func (o *SparseMatrixOp) Dim() int { return o.a.Dim() }

// ApplyA implements spectra.Operator.
func (o *SparseMatrixOp) ApplyA(dst, x []float64) { o.a.MulVec(dst, x) }

// ApplyB implements spectra.Operator; B is the identity.
func (o *SparseMatrixOp) ApplyB(dst, x []float64) { copy(dst, x) }

// DotB implements spectra.Operator as the Euclidean inner product.
func (o *SparseMatrixOp) DotB(x, y []float64) float64 { return floats.Dot(x, y) }

// NormB implements spectra.Operator as the Euclidean norm.
func (o *SparseMatrixOp) NormB(x []float64) float64 { return floats.Norm(x, 2) }
