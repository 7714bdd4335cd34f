// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"math/cmplx"
	"sort"
)

// Selection is the rule used to choose the wanted subset of Ritz values
// at each outer iteration.
type Selection int

const (
	// LargestMagnitude selects eigenvalues with the largest |λ| first.
	LargestMagnitude Selection = iota
	// SmallestMagnitude selects eigenvalues with the smallest |λ| first.
	SmallestMagnitude
	// LargestReal selects eigenvalues with the largest real part first.
	LargestReal
	// SmallestReal selects eigenvalues with the smallest real part first.
	SmallestReal
	// LargestImaginary selects eigenvalues with the largest imaginary part first.
	LargestImaginary
	// SmallestImaginary selects eigenvalues with the smallest imaginary part first.
	SmallestImaginary
)

// SortRule is the rule used to order the final, exported eigenvalues.
type SortRule int

const (
	// LargestAlgebraic orders by largest real part first.
	LargestAlgebraic SortRule = iota
	// SmallestAlgebraic orders by smallest real part first.
	SmallestAlgebraic
	// LargestMagnitudeSort orders by largest |λ| first.
	LargestMagnitudeSort
	// SmallestMagnitudeSort orders by smallest |λ| first.
	SmallestMagnitudeSort
)

// valid reports whether rule is one of the named Selection constants.
func (rule Selection) valid() bool {
	return rule >= LargestMagnitude && rule <= SmallestImaginary
}

// valid reports whether rule is one of the named SortRule constants.
func (rule SortRule) valid() bool {
	return rule >= LargestAlgebraic && rule <= SmallestMagnitudeSort
}

// rank sorts indices 0..len(d)-1 by rule, breaking ties by original index
// (stable). It is used both to order the wanted k Ritz values for
// convergence counting and to drive the selection vector for the Schur
// reorderer.
func rank(d []complex128, rule Selection) []int {
	ind := make([]int, len(d))
	for i := range ind {
		ind[i] = i
	}

	var less func(a, b complex128) bool
	switch rule {
	case LargestMagnitude:
		less = func(a, b complex128) bool { return cmplx.Abs(a) > cmplx.Abs(b) }
	case SmallestMagnitude:
		less = func(a, b complex128) bool { return cmplx.Abs(a) < cmplx.Abs(b) }
	case LargestReal:
		less = func(a, b complex128) bool { return real(a) > real(b) }
	case SmallestReal:
		less = func(a, b complex128) bool { return real(a) < real(b) }
	case LargestImaginary:
		less = func(a, b complex128) bool { return imag(a) > imag(b) }
	case SmallestImaginary:
		less = func(a, b complex128) bool { return imag(a) < imag(b) }
	default:
		panic(invalidArgument("unsupported selection rule"))
	}

	sort.SliceStable(ind, func(i, j int) bool {
		return less(d[ind[i]], d[ind[j]])
	})
	return ind
}

// rankBySort orders indices by the final SortRule used to present results
// to the caller, the same stable-tie-break discipline as rank.
func rankBySort(d []complex128, rule SortRule) []int {
	ind := make([]int, len(d))
	for i := range ind {
		ind[i] = i
	}

	var less func(a, b complex128) bool
	switch rule {
	case LargestAlgebraic:
		less = func(a, b complex128) bool { return real(a) > real(b) }
	case SmallestAlgebraic:
		less = func(a, b complex128) bool { return real(a) < real(b) }
	case LargestMagnitudeSort:
		less = func(a, b complex128) bool { return cmplx.Abs(a) > cmplx.Abs(b) }
	case SmallestMagnitudeSort:
		less = func(a, b complex128) bool { return cmplx.Abs(a) < cmplx.Abs(b) }
	default:
		panic(invalidArgument("unsupported sort rule"))
	}

	sort.SliceStable(ind, func(i, j int) bool {
		return less(d[ind[i]], d[ind[j]])
	})
	return ind
}
