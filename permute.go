// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

// permuteComplex returns a new slice with out[i] = d[ind[i]].
func permuteComplex(d []complex128, ind []int) []complex128 {
	out := make([]complex128, len(ind))
	for i, j := range ind {
		out[i] = d[j]
	}
	return out
}

// permuteFloat returns a new slice with out[i] = r[ind[i]].
func permuteFloat(r []float64, ind []int) []float64 {
	out := make([]float64, len(ind))
	for i, j := range ind {
		out[i] = r[j]
	}
	return out
}

// extractColumns returns the leading nev columns of the m x m row-major
// matrix x as an m x nev row-major matrix.
func extractColumns(x []float64, m, nev int) []float64 {
	out := make([]float64, m*nev)
	for i := 0; i < m; i++ {
		copy(out[i*nev:i*nev+nev], x[i*m:i*m+nev])
	}
	return out
}

// permuteComplexColumns reorders the columns of the m x m row-major
// matrix u according to ind, returning an m x len(ind) row-major matrix
// with column j equal to u's column ind[j].
func permuteComplexColumns(u []complex128, m int, ind []int) []complex128 {
	nout := len(ind)
	out := make([]complex128, m*nout)
	for i := 0; i < m; i++ {
		for j, src := range ind {
			out[i*nout+j] = u[i*m+src]
		}
	}
	return out
}
