// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// State is the outer driver's state machine.
type State int

const (
	// NotComputed is the state after New, Init or InitVector, before
	// Compute has run.
	NotComputed State = iota
	// Running is set for the duration of Compute.
	Running
	// Successful indicates Compute finished with nconv >= k, or with an
	// early breakdown (which is reported as zero eigenpairs, not as an
	// error).
	Successful
	// NotConverging indicates maxit was exhausted with nconv < k.
	NotConverging
)

// defaultSeed is the fixed seed used by Init's default random residual,
// for reproducibility.
const defaultSeed = 0

// ComputeOptions configures a single call to (*KrylovSchur).Compute.
// Zero values select the package defaults.
type ComputeOptions struct {
	Selection     Selection
	MaxIterations int
	Tolerance     float64
	Sort          SortRule
}

func (o *ComputeOptions) withDefaults() {
	if o.MaxIterations == 0 {
		o.MaxIterations = 1000
	}
	if o.Tolerance == 0 {
		o.Tolerance = 1e-10
	}
	// Selection and Sort default to their zero values, LargestMagnitude
	// and LargestAlgebraic respectively.
}

// KrylovSchur computes k extremal eigenpairs of an Operator by
// Krylov-Schur iteration. A KrylovSchur is not safe for concurrent use;
// distinct instances are independent, each owning its own factorization
// state. It must be constructed with New, initialized with Init or
// InitVector, and then driven with Compute.
type KrylovSchur struct {
	op Operator
	k  int
	m  int

	log zerolog.Logger

	fac         *factorization
	initialized bool

	state  State
	niter  int
	nmatop int
	nconv  int
	evals  []complex128
	evecs  [][]complex128 // n-length columns, one per exported eigenpair
}

// New constructs a solver for k extremal eigenpairs of op using an
// m-dimensional Krylov subspace. It fails with InvalidArgument when
// k is not in [1, n-1] or m is not in (k, n]
func New(op Operator, k, m int) (*KrylovSchur, error) {
	n := op.Dim()
	if k < 1 || k > n-1 {
		return nil, invalidArgument("k must satisfy 1 <= k <= n-1")
	}
	if m <= k || m > n {
		return nil, invalidArgument("m must satisfy k < m <= n")
	}
	return &KrylovSchur{
		op:  op,
		k:   k,
		m:   m,
		log: zerolog.Nop(),
		fac: newFactorization(n, m),
	}, nil
}

// SetLogger attaches a structured logger for per-iteration diagnostics.
// A nil logger disables logging; this is the only observability
// side-channel this package exposes, and it never influences control
// flow
func (ks *KrylovSchur) SetLogger(l *zerolog.Logger) {
	if l == nil {
		ks.log = zerolog.Nop()
		return
	}
	ks.log = *l
}

// InitVector initializes the solver with an explicit initial residual
// vector of length n.
func (ks *KrylovSchur) InitVector(v0 []float64) error {
	if len(v0) != ks.op.Dim() {
		return invalidArgument("length of v0 must equal the operator dimension")
	}
	ks.fac.init(ks.op, v0)
	ks.state = NotComputed
	ks.niter = 0
	ks.nmatop = 0
	ks.nconv = 0
	ks.evals = nil
	ks.evecs = nil
	ks.initialized = true
	return nil
}

// Init generates a reproducible random initial residual vector.
// Elements are drawn independently from Uniform(-0.5, 0.5) with a fixed
// seed for repeatability across runs.
func (ks *KrylovSchur) Init() error {
	rng := rand.New(rand.NewSource(defaultSeed))
	n := ks.op.Dim()
	v0 := make([]float64, n)
	for i := range v0 {
		v0[i] = rng.Float64() - 0.5
	}
	return ks.InitVector(v0)
}

// Compute runs the Krylov-Schur driver to completion (or to maxit
// iterations) and returns the number of converged eigenpairs, bounded by
// k. opts' zero values select the documented defaults.
func (ks *KrylovSchur) Compute(opts ComputeOptions) (int, error) {
	if !ks.initialized {
		return 0, notInitialized("Compute called before Init or InitVector")
	}
	opts.withDefaults()
	if opts.Tolerance <= 0 || opts.Tolerance >= 1 {
		return 0, invalidArgument("tolerance must be in (0, 1)")
	}
	if !opts.Selection.valid() {
		return 0, invalidArgument("unsupported selection rule")
	}
	if !opts.Sort.valid() {
		return 0, invalidArgument("unsupported sort rule")
	}

	ks.state = Running
	k, m := ks.k, ks.m

	var (
		d       []complex128
		r       []float64
		ind     []int
		u       []complex128
		nconv   int
	)

	i := 0
	for ; i < opts.MaxIterations; i++ {
		stop := ks.fac.extend(ks.op, m, &ks.nmatop)
		if stop {
			ks.state = Successful
			ks.niter += i + 1
			ks.nconv = 0
			ks.evals = nil
			ks.evecs = nil
			ks.log.Warn().Int("iteration", i).Msg("breakdown: invariant subspace exhausted")
			return 0, nil
		}

		h := ks.fac.hessenberg(m)
		rs, err := analyzeRitz(h, ks.fac.augmentedRow(m), m)
		if err != nil {
			ks.state = NotConverging
			return 0, err
		}

		ind = rank(rs.d, opts.Selection)
		d = permuteComplex(rs.d, ind)
		r = permuteFloat(rs.r, ind)
		u = rs.u

		nconvPrev := nconv
		nconv, _ = numConverged(opts.Tolerance, d, r, k)

		ks.log.Debug().Int("iter", i).Int("p", ks.fac.p).Int("m", m).Int("nconv", nconv).Msg("outer iteration")

		if nconv >= k || i == opts.MaxIterations-1 {
			break
		}

		nevNew := nextNev(k, m, nconv, nconvPrev)

		// ind already maps rank position -> T's own (unpermuted) index.
		sigma := make([]bool, m)
		for _, idx := range ind[:nevNew] {
			sigma[idx] = true
		}
		nevNew += expandSelection(rs.t, m, sigma)

		x, t := append([]float64(nil), rs.x...), append([]float64(nil), rs.t...)
		if err := ordschur(x, t, m, sigma); err != nil {
			ks.state = NotConverging
			return 0, err
		}

		xk := extractColumns(x, m, nevNew)
		ks.fac.truncate(m, nevNew, t, xk)
	}

	ks.niter += i + 1
	ks.nconv = nconv
	if nconv >= k {
		ks.state = Successful
	} else {
		ks.state = NotConverging
	}

	// Export the top nconv (of the k wanted) eigenpairs, reordered by the
	// caller's final sort rule.
	wanted := d[:nconv]
	uWanted := permuteComplexColumns(u, m, ind[:nconv])
	sortInd := rankBySort(wanted, opts.Sort)

	ks.evals = make([]complex128, nconv)
	ks.evecs = make([][]complex128, nconv)
	n := ks.op.Dim()
	for j, si := range sortInd {
		ks.evals[j] = wanted[si]
		col := make([]complex128, n)
		for row := 0; row < n; row++ {
			var s complex128
			for l := 0; l < m; l++ {
				s += complex(ks.fac.v[row*ks.fac.m+l], 0) * uWanted[l*nconv+si]
			}
			col[row] = s
		}
		ks.evecs[j] = col
	}

	return nconv, nil
}

// Info reports the solver's current state.
func (ks *KrylovSchur) Info() State { return ks.state }

// NumIterations returns the number of outer iterations across all
// Compute calls since the last Init or InitVector.
func (ks *KrylovSchur) NumIterations() int { return ks.niter }

// NumOperations returns the number of A-applications across all Compute
// calls since the last Init or InitVector.
func (ks *KrylovSchur) NumOperations() int { return ks.nmatop }

// Eigenvalues returns the real parts of the converged eigenvalues,
// ordered by the sort rule requested in the most recent Compute call.
func (ks *KrylovSchur) Eigenvalues() []float64 {
	out := make([]float64, len(ks.evals))
	for i, z := range ks.evals {
		out[i] = real(z)
	}
	return out
}

// Eigenvectors returns the real parts of the n x min(nvec, nconv)
// eigenvector matrix, columns ordered to match Eigenvalues.
func (ks *KrylovSchur) Eigenvectors(nvec int) [][]float64 {
	if nvec > len(ks.evecs) {
		nvec = len(ks.evecs)
	}
	out := make([][]float64, nvec)
	for j := 0; j < nvec; j++ {
		col := make([]float64, ks.op.Dim())
		for i, z := range ks.evecs[j] {
			col[i] = real(z)
		}
		out[j] = col
	}
	return out
}
