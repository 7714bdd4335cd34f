// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"math"

	"gonum.org/v1/gonum/lapack"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// impl is the dense-LA collaborator this package delegates the real Schur
// decomposition and eigenvector computation to. It is the same
// lapack/gonum package that backs gonum.org/v1/gonum/mat's higher-level
// Schur/Eigen types.
var impl lapackgonum.Implementation

// ritzSet holds the output of the Ritz analyzer for one outer iteration:
// the real Schur pair (x, t) of H[:m,:m], the complex eigenvalues d of T,
// the Schur-vector-composed eigenvectors u = x*(eigenvectors of T), and
// the implicit residual bound r for each Ritz pair.
type ritzSet struct {
	x, t []float64 // m x m, row-major, ld = m
	d    []complex128
	u    []complex128 // m x m, row-major, ld = m (column j is the j-th Ritz vector in the reduced basis)
	r    []float64
}

// analyzeRitz computes, given H[:m,:m] (fz.hessenberg(m)) and the
// residual-coupling row (fz.augmentedRow(m)), the real Schur
// decomposition, the eigenpairs of T, and the implicit residual bounds
// r[j] = |H[m,m-1]| * |e_{m-1}^T U[:,j]|.
func analyzeRitz(h []float64, augRow []float64, m int) (*ritzSet, error) {
	a := make([]float64, m*m)
	copy(a, h)

	wr := make([]float64, m)
	wi := make([]float64, m)
	x := make([]float64, m*m)

	work := make([]float64, 1)
	impl.Dgees(lapack.SchurHess, lapack.SortNone, nil, m, a, m, wr, wi, x, m, work, -1, nil)
	lwork := int(work[0])
	if lwork < 1 {
		lwork = 1
	}
	work = make([]float64, lwork)

	_, ok := impl.Dgees(lapack.SchurHess, lapack.SortNone, nil, m, a, m, wr, wi, x, m, work, lwork, nil)
	if !ok {
		return nil, wrapNumericalFailure(errNotConverged, "real Schur decomposition did not converge")
	}
	// a now holds T, x holds the Schur vectors.
	t := a

	// U := X * (eigenvectors of T), computed directly by Dtrevc3 with
	// howmny = AllEVMulQ: on entry vr holds X, on return vr holds X*E.
	vr := make([]float64, m*m)
	copy(vr, x)
	vwork := make([]float64, 1)
	impl.Dtrevc3(lapack.RightEV, lapack.AllEVMulQ, nil, m, t, m, nil, 1, vr, m, m, vwork, -1)
	vlwork := int(vwork[0])
	if vlwork < 1 {
		vlwork = 1
	}
	vwork = make([]float64, vlwork)
	impl.Dtrevc3(lapack.RightEV, lapack.AllEVMulQ, nil, m, t, m, nil, 1, vr, m, m, vwork, vlwork)

	d := make([]complex128, m)
	u := make([]complex128, m*m)
	for j := 0; j < m; j++ {
		d[j] = complex(wr[j], wi[j])
		if wi[j] == 0 {
			for i := 0; i < m; i++ {
				u[i*m+j] = complex(vr[i*m+j], 0)
			}
			continue
		}
		if wi[j] > 0 {
			// vr[:,j] is the real part, vr[:,j+1] is the imaginary part.
			for i := 0; i < m; i++ {
				u[i*m+j] = complex(vr[i*m+j], vr[i*m+j+1])
			}
		} else {
			// Conjugate: same real part, negated imaginary part.
			for i := 0; i < m; i++ {
				u[i*m+j] = complex(vr[i*m+(j-1)], -vr[i*m+j])
			}
		}
	}

	beta := 0.0
	if len(augRow) > 0 {
		beta = augRow[len(augRow)-1]
	}
	r := make([]float64, m)
	for j := 0; j < m; j++ {
		r[j] = math.Abs(beta) * cmplxAbs(u[(m-1)*m+j])
	}

	return &ritzSet{x: x, t: t, d: d, u: u, r: r}, nil
}

var errNotConverged = &Error{Kind: NumericalFailure, Msg: "QR iteration failed to converge"}
