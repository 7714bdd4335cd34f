// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// breakdownTol is the threshold below which a residual B-norm is
// considered to signal an exhausted invariant subspace.
const breakdownTol = 1e-12

// reorthogTol is the classical Kahan/Parlett re-orthogonalization
// threshold: if one round of Gram-Schmidt reduces the norm of the working
// vector by more than this factor, the projection is numerically
// suspect and a second round is performed.
const reorthogTol = 1 / math.Sqrt2

// factorization holds a Krylov factorization F = (V, H, f, p) as
// described in the data model: V is n×m with B-orthonormal leading p
// columns, H is (m+1)×m so that its square top-left m×m block is the
// projected Hessenberg matrix and its one extra row carries the residual
// coupling needed across a restart, and f/beta is the current residual
// direction and its B-norm.
//
// V and H are stored as flat row-major slices with an explicit leading
// dimension, the layout gonum's lapack/gonum routines expect directly.
type factorization struct {
	n, m int

	v    []float64 // n x m, row-major, ld = m
	h    []float64 // (m+1) x m, row-major, ld = m
	f    []float64 // n-vector, current residual direction
	p    int       // number of valid, B-orthonormal columns in V
	beta float64   // B-norm of f
}

func newFactorization(n, m int) *factorization {
	return &factorization{
		n: n,
		m: m,
		v: make([]float64, n*m),
		h: make([]float64, (m+1)*m),
		f: make([]float64, n),
	}
}

// col returns the j-th column of V as a freshly-copied slice; V is
// row-major so columns are not contiguous.
func (fz *factorization) col(j int) []float64 {
	c := make([]float64, fz.n)
	for i := 0; i < fz.n; i++ {
		c[i] = fz.v[i*fz.m+j]
	}
	return c
}

func (fz *factorization) setCol(j int, x []float64) {
	for i := 0; i < fz.n; i++ {
		fz.v[i*fz.m+j] = x[i]
	}
}

// init resets the factorization to p = 0 with residual direction v0,
// as (*KrylovSchur).InitVector requires.
func (fz *factorization) init(op Operator, v0 []float64) {
	copy(fz.f, v0)
	fz.beta = op.NormB(fz.f)
	fz.p = 0
	for i := range fz.h {
		fz.h[i] = 0
	}
}

// extend grows the factorization from its current length p to m columns
// by the B-orthonormal Arnoldi process. It returns stop = true if the
// residual B-norm collapses below the breakdown threshold, meaning the
// invariant subspace has been exhausted.
func (fz *factorization) extend(op Operator, m int, counter *int) (stop bool) {
	n := fz.n
	ldh := fz.m
	w := make([]float64, n)

	for j := fz.p; j < m; j++ {
		if fz.beta < breakdownTol {
			fz.p = j
			return true
		}

		// v_j := f / beta
		vj := make([]float64, n)
		floats.AddScaled(vj, 1/fz.beta, fz.f)
		fz.setCol(j, vj)

		// w := A*v_j
		op.ApplyA(w, vj)
		*counter++

		// Modified Gram-Schmidt against V[:, :j+1] in the B-inner product,
		// with one round of iterative refinement if the reduction in norm
		// suggests cancellation (the classical 1/sqrt(2) rule).
		wnorm0 := op.NormB(w)
		hcol := make([]float64, j+1)
		for pass := 0; pass < 2; pass++ {
			var reduced float64
			for k := 0; k <= j; k++ {
				vk := fz.col(k)
				hki := op.DotB(vk, w)
				floats.AddScaled(w, -hki, vk)
				hcol[k] += hki
			}
			reduced = op.NormB(w)
			if pass == 0 && reduced > reorthogTol*wnorm0 {
				break
			}
			wnorm0 = reduced
		}
		for k := 0; k <= j; k++ {
			fz.h[k*ldh+j] = hcol[k]
		}

		fz.beta = op.NormB(w)
		fz.h[(j+1)*ldh+j] = fz.beta
		copy(fz.f, w)
	}

	fz.p = m
	return false
}

// hessenberg returns a copy of the square m×m top-left Hessenberg block
// of H, in row-major layout with leading dimension m, suitable for
// passing directly to a dense-LA collaborator.
func (fz *factorization) hessenberg(m int) []float64 {
	ldh := fz.m
	block := make([]float64, m*m)
	for i := 0; i < m; i++ {
		copy(block[i*m:i*m+m], fz.h[i*ldh:i*ldh+m])
	}
	return block
}

// augmentedRow returns H's extra row (row m, the residual-coupling row)
// restricted to the first m columns.
func (fz *factorization) augmentedRow(m int) []float64 {
	ldh := fz.m
	row := make([]float64, m)
	copy(row, fz.h[m*ldh:m*ldh+m])
	return row
}

// truncate restarts the factorization with a new leading block of size
// nev, per the outer driver's step 6: H's leading nev×nev block becomes
// T's leading nev×nev block, the residual-coupling row is re-expressed in
// the new basis, and V's leading nev columns become V*Xk. t is the full
// reordered Schur form, m x m row-major with ld = m; xk is m x nev,
// row-major with ld = nev.
func (fz *factorization) truncate(m, nev int, t, xk []float64) {
	ldh := fz.m

	// The old augmented row is needed below; every other entry of H is
	// cleared so no coupling row from an earlier restart survives.
	oldRow := fz.augmentedRow(m)
	for i := range fz.h {
		fz.h[i] = 0
	}

	// H_new[:nev,:nev] := T[:nev,:nev]
	for i := 0; i < nev; i++ {
		for j := 0; j < nev; j++ {
			fz.h[i*ldh+j] = t[i*m+j]
		}
	}

	// H_new[nev, :nev] := (old augmented row) * Xk
	newRow := make([]float64, nev)
	for j := 0; j < nev; j++ {
		var s float64
		for i := 0; i < m; i++ {
			s += oldRow[i] * xk[i*nev+j]
		}
		newRow[j] = s
	}
	copy(fz.h[nev*ldh:nev*ldh+nev], newRow)

	// V_new[:, :nev] := V * Xk
	vnew := make([]float64, fz.n*nev)
	for i := 0; i < fz.n; i++ {
		for j := 0; j < nev; j++ {
			var s float64
			for k := 0; k < m; k++ {
				s += fz.v[i*fz.m+k] * xk[k*nev+j]
			}
			vnew[i*nev+j] = s
		}
	}
	for i := 0; i < fz.n; i++ {
		copy(fz.v[i*fz.m:i*fz.m+nev], vnew[i*nev:i*nev+nev])
	}

	fz.p = nev
}
