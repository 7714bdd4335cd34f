// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra

import pkgerrors "github.com/pkg/errors"

// ErrorKind classifies the errors returned by this package's constructors
// and entry points, per the propagation policy in the design notes:
// invalid input fails eagerly at the call site; non-convergence and
// breakdown are never reported this way, only through Info.
type ErrorKind int

const (
	// InvalidArgument indicates k or m out of range at construction, or
	// an unknown selection/sort rule passed to Compute.
	InvalidArgument ErrorKind = iota
	// NotInitialized indicates Compute was called before Init or InitVector.
	NotInitialized
	// NumericalFailure indicates the Schur or eigendecomposition in the
	// Ritz analyzer failed to converge.
	NumericalFailure
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case NotInitialized:
		return "not initialized"
	case NumericalFailure:
		return "numerical failure"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by this package. Breakdown and
// non-convergence are deliberately not represented by this type; they are
// observable only through (*KrylovSchur).Info.
type Error struct {
	Kind  ErrorKind
	Msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return "spectra: " + e.Kind.String() + ": " + e.Msg + ": " + e.cause.Error()
	}
	return "spectra: " + e.Kind.String() + ": " + e.Msg
}

// Unwrap allows errors.Is/errors.As to recover the underlying collaborator
// failure. Error has no Cause method, so github.com/pkg/errors.Cause
// returns the *Error itself.
func (e *Error) Unwrap() error { return e.cause }

func invalidArgument(msg string) error {
	return &Error{Kind: InvalidArgument, Msg: msg}
}

func notInitialized(msg string) error {
	return &Error{Kind: NotInitialized, Msg: msg}
}

// wrapNumericalFailure wraps a collaborator error (from the dense-LA
// backend) as a NumericalFailure. pkgerrors.WithStack attaches a stack
// trace to the original cause so it survives past this package's boundary
// for diagnostics; Unwrap returns that stack-carrying wrapper, through
// which errors.Is/errors.As still reach the original cause.
func wrapNumericalFailure(cause error, msg string) error {
	return &Error{Kind: NumericalFailure, Msg: msg, cause: pkgerrors.WithStack(cause)}
}
