// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package op

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/timokoch/spectra/internal/triplet"
)

var errSingular = errors.New("op: shift-invert matrix is singular to working precision")

// ShiftInvertOp adapts the shift-invert transform (A - sigma*B)^-1 * B to
// the spectra.Operator contract, the standard device for targeting
// eigenvalues near an interior point sigma rather than the extremes of
// the spectrum. A and B are assembled from sparse triplets into a dense
// matrix and factored once, at construction.
type ShiftInvertOp struct {
	n    int
	lu   []float64 // n x n row-major, holds L (unit diagonal implied) and U in place
	piv  []int     // piv[i] is the original row now in factored row i
	bRow []float64 // n x n row-major dense B, nil selects the standard (B = I) problem
}

// NewShiftInvertOp builds a standard-problem shift-invert operator from
// the sparse matrix A and shift sigma.
func NewShiftInvertOp(a *triplet.Matrix, sigma float64) (*ShiftInvertOp, error) {
	return newShiftInvertOp(a, nil, sigma)
}

// NewGeneralizedShiftInvertOp builds a generalized-problem shift-invert
// operator (A - sigma*B)^-1 * B from sparse matrices A and B and shift
// sigma.
func NewGeneralizedShiftInvertOp(a, b *triplet.Matrix, sigma float64) (*ShiftInvertOp, error) {
	return newShiftInvertOp(a, b, sigma)
}

func newShiftInvertOp(a, b *triplet.Matrix, sigma float64) (*ShiftInvertOp, error) {
	n := a.Dim()
	dense := a.ToDense()

	var bDense []float64
	if b == nil {
		for i := 0; i < n; i++ {
			dense[i*n+i] -= sigma
		}
	} else {
		bDense = b.ToDense()
		for i := range dense {
			dense[i] -= sigma * bDense[i]
		}
	}

	lu, piv, err := luFactorize(dense, n)
	if err != nil {
		return nil, errors.Wrap(err, "shift-invert factorization")
	}
	return &ShiftInvertOp{n: n, lu: lu, piv: piv, bRow: bDense}, nil
}

// Dim implements spectra.Operator.
func (o *ShiftInvertOp) Dim() int { return o.n }

// ApplyA implements spectra.Operator as the shift-invert transform
// (A - sigma*B)^-1 * B * x.
func (o *ShiftInvertOp) ApplyA(dst, x []float64) {
	rhs := make([]float64, o.n)
	o.ApplyB(rhs, x)
	luSolve(o.lu, o.piv, o.n, rhs, dst)
}

// ApplyB implements spectra.Operator.
func (o *ShiftInvertOp) ApplyB(dst, x []float64) {
	if o.bRow == nil {
		copy(dst, x)
		return
	}
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < o.n; i++ {
		var s float64
		for j := 0; j < o.n; j++ {
			s += o.bRow[i*o.n+j] * x[j]
		}
		dst[i] = s
	}
}

// DotB implements spectra.Operator as x^T*B*y.
func (o *ShiftInvertOp) DotB(x, y []float64) float64 {
	if o.bRow == nil {
		return floats.Dot(x, y)
	}
	by := make([]float64, o.n)
	o.ApplyB(by, y)
	return floats.Dot(x, by)
}

// NormB implements spectra.Operator as sqrt(x^T*B*x).
func (o *ShiftInvertOp) NormB(x []float64) float64 {
	d := o.DotB(x, x)
	if d < 0 {
		d = 0
	}
	return math.Sqrt(d)
}

// luFactorize computes an in-place PA = LU factorization of the n x n
// row-major matrix a with partial pivoting: the classic select-max-pivot
// / swap-rows / eliminate loop. L's unit diagonal is implicit; a's strict
// lower triangle holds L's multipliers and its upper triangle (including
// the diagonal) holds U on return.
func luFactorize(a []float64, n int) (lu []float64, piv []int, err error) {
	lu = a
	piv = make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	for k := 0; k < n; k++ {
		maxRow, maxAbs := k, math.Abs(lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs, maxRow = v, i
			}
		}
		if maxAbs < 1e-300 {
			return nil, nil, errSingular
		}
		if maxRow != k {
			for j := 0; j < n; j++ {
				lu[k*n+j], lu[maxRow*n+j] = lu[maxRow*n+j], lu[k*n+j]
			}
			piv[k], piv[maxRow] = piv[maxRow], piv[k]
		}

		pivot := lu[k*n+k]
		for i := k + 1; i < n; i++ {
			factor := lu[i*n+k] / pivot
			lu[i*n+k] = factor
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}
	return lu, piv, nil
}

// luSolve solves A*x = b given A's LU factorization (lu, piv) from
// luFactorize, by forward substitution (Ly = Pb) then back substitution
// (Ux = y).
func luSolve(lu []float64, piv []int, n int, b, x []float64) {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[piv[i]]
		for j := 0; j < i; j++ {
			sum -= lu[i*n+j] * y[j]
		}
		y[i] = sum
	}
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= lu[i*n+j] * x[j]
		}
		x[i] = sum / lu[i*n+i]
	}
}
