// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import "math"

// dlamchE is the machine epsilon for float64.
const dlamchE = 1.0 / (1 << 53)

// eps23 is pow(machine epsilon, 2/3), the floor used by the convergence
// threshold so it does not collapse to zero for Ritz values near the
// origin.
var eps23 = math.Pow(dlamchE, 2.0/3.0)

// numConverged reports, given the top-k ranked Ritz values d and their
// residual bounds r, and tolerance tol, the count of converged pairs and
// a per-index convergence indicator.
func numConverged(tol float64, d []complex128, r []float64, k int) (nconv int, converged []bool) {
	converged = make([]bool, k)
	for j := 0; j < k; j++ {
		threshold := tol * math.Max(eps23, cmplxAbs(d[j]))
		if r[j] < threshold {
			converged[j] = true
			nconv++
		}
	}
	return nconv, converged
}

// nextNev computes the adaptively widened restart size, including the
// classical stagnation bump ARPACK uses.
func nextNev(k, m, nconv, nconvPrev int) int {
	nevNew := k + min(nconv, (m-k)/2)
	if nevNew == 1 && m > 3 {
		nevNew = m / 2
	}
	if nevNew+1 < m && nconvPrev > nconv {
		nevNew++
	}
	return nevNew
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
