// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

// expandSelection forces both members of every complex-conjugate 2x2
// block to be selected together: "if σ includes one
// index, the other is forced to true before reordering begins." t is the
// m×m quasi-triangular Schur form, row-major with leading dimension m.
// It returns the number of newly-selected indices.
func expandSelection(t []float64, m int, sigma []bool) (added int) {
	for i := 0; i < m; i++ {
		if !sigma[i] {
			continue
		}
		if i+1 < m && t[(i+1)*m+i] != 0 && !sigma[i+1] {
			sigma[i+1] = true
			added++
		}
		if i > 0 && t[i*m+i-1] != 0 && !sigma[i-1] {
			sigma[i-1] = true
			added++
		}
	}
	return added
}

// ordschur permutes the real Schur pair (x, t), both m×m row-major with
// leading dimension m, so that the indices flagged by sigma occupy the
// leading block. sigma must already have been expanded (via
// expandSelection) so that no 2x2 block is split between a selected and
// an unselected index. x and t are modified in place.
//
// The reordering itself is delegated to lapack/gonum's Dtrsen, which
// moves each selected cluster to the front one eigenvalue at a time via
// Dtrexc's block-swap primitive: the dedicated 2-by-2-aware exchange
// that solves the small Sylvester system coupling a crossed pair of
// blocks, unlike a naive adjacent-transposition walk that treats every
// index as 1x1 and would split a complex-conjugate pair the moment a
// lone eigenvalue needs to cross it. Dtrsen reports ok=false when two
// clusters are too close to separate safely; ordschur surfaces that as
// a NumericalFailure rather than returning a corrupted Schur form.
func ordschur(x, t []float64, m int, sigma []bool) error {
	if m == 0 {
		return nil
	}

	wr := make([]float64, m)
	wi := make([]float64, m)
	work := make([]float64, max(1, m))
	iwork := make([]int, 1)

	_, _, _, ok := impl.Dtrsen(0, true, sigma, m, t, m, x, m, wr, wi, work, len(work), iwork, len(iwork))
	if !ok {
		return wrapNumericalFailure(errReorderFailed, "Schur reordering failed: selected eigenvalue clusters are too close to separate")
	}
	return nil
}

var errReorderFailed = &Error{Kind: NumericalFailure, Msg: "Dtrsen could not reorder the requested eigenvalue cluster"}
