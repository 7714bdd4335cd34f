// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectra computes a small number of extremal eigenpairs of a
// large linear operator by Krylov-Schur iteration, a restarted
// alternative to implicitly-restarted Arnoldi.
//
// The operator A (and, for generalized problems, a symmetric positive
// definite B) is supplied only as a matrix-vector action through the
// Operator interface, so A may be huge, sparse, or implicit. Package op
// provides reference Operator implementations backed by a dense matrix,
// a sparse matrix, and a shift-invert factorization.
//
// The algorithm follows G.W. Stewart's Krylov-Schur method as implemented
// by MATLAB's eigs and by the Spectra C++ library.
package spectra
