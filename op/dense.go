// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package op supplies reference spectra.Operator implementations backed
// by a dense matrix, a sparse matrix, and a shift-invert factorization.
// None of these are imported by the core package; they exist so the
// driver has something concrete to run against.
package op

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DenseMatrixOp adapts a dense *mat.Dense operator A, and optionally a
// symmetric positive definite B for the generalized eigenproblem, to the
// spectra.Operator contract. A nil B selects the standard (B = I)
// problem. Callers are responsible for A (and B) actually being
// symmetric; this type does not check.
type DenseMatrixOp struct {
	a, b *mat.Dense
	n    int
}

// NewDenseMatrixOp builds a standard-problem operator from a dense
// symmetric matrix A.
func NewDenseMatrixOp(a *mat.Dense) *DenseMatrixOp {
	n, _ := a.Dims()
	return &DenseMatrixOp{a: a, n: n}
}

// NewGeneralizedDenseMatrixOp builds a generalized-problem operator from
// dense symmetric matrices A and B; B must be positive definite.
func NewGeneralizedDenseMatrixOp(a, b *mat.Dense) *DenseMatrixOp {
	n, _ := a.Dims()
	return &DenseMatrixOp{a: a, b: b, n: n}
}

// Dim implements spectra.Operator.
func (o *DenseMatrixOp) Dim() int { return o.n }

// ApplyA implements spectra.Operator.
func (o *DenseMatrixOp) ApplyA(dst, x []float64) {
	y := mat.NewVecDense(o.n, dst)
	y.MulVec(o.a, mat.NewVecDense(o.n, x))
}

// ApplyB implements spectra.Operator.
func (o *DenseMatrixOp) ApplyB(dst, x []float64) {
	if o.b == nil {
		copy(dst, x)
		return
	}
	y := mat.NewVecDense(o.n, dst)
	y.MulVec(o.b, mat.NewVecDense(o.n, x))
}

// DotB implements spectra.Operator as x^T*B*y.
func (o *DenseMatrixOp) DotB(x, y []float64) float64 {
	if o.b == nil {
		return floats.Dot(x, y)
	}
	by := make([]float64, o.n)
	o.ApplyB(by, y)
	return floats.Dot(x, by)
}

// NormB implements spectra.Operator as sqrt(x^T*B*x).
func (o *DenseMatrixOp) NormB(x []float64) float64 {
	d := o.DotB(x, x)
	if d < 0 {
		d = 0
	}
	return math.Sqrt(d)
}
