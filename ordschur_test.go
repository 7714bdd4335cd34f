// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandSelectionForcesBlockPair(t *testing.T) {
	m := 4
	// Block at (0,1): t[1,0] != 0. Plain 1x1s at 2, 3.
	tt := make([]float64, m*m)
	tt[1*m+0] = -2 // marks (0,1) as a 2x2 block

	sigma := []bool{false, true, false, false}
	added := expandSelection(tt, m, sigma)
	assert.Equal(t, 1, added)
	assert.True(t, sigma[0])
	assert.True(t, sigma[1])
	assert.False(t, sigma[2])
	assert.False(t, sigma[3])
}

func TestExpandSelectionNoOp(t *testing.T) {
	m := 3
	tt := make([]float64, m*m) // no 2x2 blocks anywhere
	sigma := []bool{false, false, true}
	added := expandSelection(tt, m, sigma)
	assert.Equal(t, 0, added)
	assert.Equal(t, []bool{false, false, true}, sigma)
}

// TestOrdschurAllReal exercises the case where every block is 1x1, so
// each step is a genuine real-eigenvalue exchange. It checks that the
// leading entry after reordering carries the selected eigenvalue, that T
// stays upper triangular, and that the diagonal multiset (the spectrum)
// is preserved.
func TestOrdschurAllReal(t *testing.T) {
	m := 3
	// Upper triangular: distinct real eigenvalues 1, 2, 3 on the diagonal.
	tv := []float64{
		1, 4, 5,
		0, 2, 6,
		0, 0, 3,
	}
	x := []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	sigma := []bool{false, false, true} // select eigenvalue 3 to lead

	added := expandSelection(tv, m, sigma)
	assert.Equal(t, 0, added)

	assert.NoError(t, ordschur(x, tv, m, sigma))

	assert.InDelta(t, 3.0, tv[0*m+0], 1e-9)
	for i := 1; i < m; i++ {
		assert.InDelta(t, 0.0, tv[i*m+i-1], 1e-9)
	}

	gotDiag := []float64{tv[0*m+0], tv[1*m+1], tv[2*m+2]}
	wantDiag := []float64{1, 2, 3}
	assert.ElementsMatch(t, wantDiag, roundAll(gotDiag))

	assertOrthonormalColumns(t, x, m)
}

// TestOrdschurPreserves2x2Block builds a genuine quasi-triangular T with
// a complex-conjugate 2x2 block sandwiched between two real eigenvalues,
// selects the block to move ahead of the eigenvalue that precedes it (a
// crossing only a dedicated block-swap, not a scalar adjacent swap, can
// perform correctly), and checks the block survives as a single 2x2 unit
// with its eigenvalues unchanged.
func TestOrdschurPreserves2x2Block(t *testing.T) {
	m := 4
	// Index 0: real eigenvalue 9.
	// Indices 1,2: complex-conjugate block with eigenvalues 2 ± 3i
	// (diagonal entries equal, off-diagonal product negative).
	// Index 3: real eigenvalue 5.
	tv := []float64{
		9, 1, 2, 3,
		0, 2, 3, 4,
		0, -3, 2, 5,
		0, 0, 0, 5,
	}
	x := []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	sigma := []bool{false, true, true, false}

	added := expandSelection(tv, m, sigma)
	assert.Equal(t, 0, added)

	assert.NoError(t, ordschur(x, tv, m, sigma))

	// The block must have been moved to the leading 2x2 position, intact:
	// equal diagonal entries and a strictly negative off-diagonal product.
	assert.InDelta(t, tv[0*m+0], tv[1*m+1], 1e-9)
	assert.Less(t, tv[1*m+0]*tv[0*m+1], 0.0)

	// Below the leading block the subdiagonal must be zero, so the two
	// real eigenvalues remain 1x1 blocks of an upper quasi-triangular T.
	for i := 2; i < m; i++ {
		assert.InDelta(t, 0.0, tv[i*m+i-1], 1e-9)
	}

	gotEigen := schurEigenvalues(tv, m)
	wantEigen := []complex128{complex(2, 3), complex(2, -3), 9, 5}
	assertSameSpectrum(t, wantEigen, gotEigen)

	// The block leads: its eigenvalues must be the first two reported.
	assert.InDelta(t, 2.0, real(gotEigen[0]), 1e-6)
	assert.InDelta(t, 2.0, real(gotEigen[1]), 1e-6)
	assert.InDelta(t, 3.0, math.Abs(imag(gotEigen[0])), 1e-6)

	assertOrthonormalColumns(t, x, m)
}

// schurEigenvalues reads the eigenvalues off a real quasi-triangular
// matrix's diagonal, pairing up each 2x2 block into a conjugate pair.
func schurEigenvalues(t []float64, m int) []complex128 {
	d := make([]complex128, 0, m)
	for i := 0; i < m; {
		if i+1 < m && t[(i+1)*m+i] != 0 {
			re := t[i*m+i]
			im := math.Sqrt(math.Abs(t[i*m+i+1])) * math.Sqrt(math.Abs(t[(i+1)*m+i]))
			d = append(d, complex(re, im), complex(re, -im))
			i += 2
			continue
		}
		d = append(d, complex(t[i*m+i], 0))
		i++
	}
	return d
}

func assertSameSpectrum(t *testing.T, want, got []complex128) {
	t.Helper()
	assert.Len(t, got, len(want))
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if used[i] {
				continue
			}
			if math.Abs(real(w)-real(g)) < 1e-6 && math.Abs(imag(w)-imag(g)) < 1e-6 {
				used[i] = true
				found = true
				break
			}
		}
		assert.True(t, found, "eigenvalue %v not found in %v", w, got)
	}
}

func assertOrthonormalColumns(t *testing.T, x []float64, m int) {
	t.Helper()
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			dot := 0.0
			for k := 0; k < m; k++ {
				dot += x[k*m+i] * x[k*m+j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, dot, 1e-9)
		}
	}
}

func roundAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = float64(int(v + 0.5))
		if v < 0 {
			out[i] = -float64(int(-v + 0.5))
		}
	}
	return out
}
