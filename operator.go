// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import "gonum.org/v1/gonum/floats"

// Operator abstracts the linear operator A (and, for generalized
// eigenproblems, B) as a pure matrix-vector action. Implementations may
// back A with a dense matrix, a sparse matrix, or a shift-invert
// factorization; this package never assumes more than what is declared
// here. See package op for reference implementations.
//
// Implementations must be side-effect free with respect to their
// arguments and deterministic across repeated calls with the same input,
// since the outer driver issues operator applications in strict program
// order and relies on repeatability for its round-trip law.
type Operator interface {
	// Dim returns the dimension n of the problem. It must be constant
	// for the lifetime of the Operator.
	Dim() int

	// ApplyA computes y := A*x and stores the result in dst.
	ApplyA(dst, x []float64)

	// ApplyB computes y := B*x and stores the result in dst. For a
	// standard eigenproblem, B is the identity.
	ApplyB(dst, x []float64)

	// DotB returns the B-inner product x^T*B*y.
	DotB(x, y []float64) float64

	// NormB returns the B-norm sqrt(x^T*B*x).
	NormB(x []float64) float64
}

// IdentityB adapts a bare A-only operator to the standard (B = I)
// eigenproblem, reducing DotB and NormB to their Euclidean form via a
// raw ApplyA closure wrapped to satisfy the richer Operator contract.
type IdentityB struct {
	N     int
	Apply func(dst, x []float64)
}

// Dim implements Operator.
func (o IdentityB) Dim() int { return o.N }

// ApplyA implements Operator.
func (o IdentityB) ApplyA(dst, x []float64) { o.Apply(dst, x) }

// ApplyB implements Operator; B is the identity, so dst is simply set to x.
func (o IdentityB) ApplyB(dst, x []float64) { copy(dst, x) }

// DotB implements Operator as the Euclidean inner product.
func (o IdentityB) DotB(x, y []float64) float64 { return floats.Dot(x, y) }

// NormB implements Operator as the Euclidean norm.
func (o IdentityB) NormB(x []float64) float64 { return floats.Norm(x, 2) }
