// SPDX-License-Identifier: MIT
// Package quad: sentinel error set. All strategies MUST return these
// sentinels and tests MUST check them via errors.Is. Non-convergence is NOT
// an error (see Result.Converged); only structural misuse is.

package quad

import "errors"

var (
	// ErrNilIntegrand is returned when Integrate receives a nil integrand.
	ErrNilIntegrand = errors.New("quad: integrand must be non-nil")

	// ErrBadBounds is returned when a bound resolves to NaN/±Inf, when an
	// upper bound resolves below its lower bound, or when a dependent bound
	// carries a nil function.
	ErrBadBounds = errors.New("quad: invalid integration bounds")

	// ErrBadTolerance is returned when AbsTol or RelTol is negative, or both
	// are zero (the adaptive recursion would never terminate by tolerance).
	ErrBadTolerance = errors.New("quad: invalid tolerance")

	// ErrBadSamples is returned when SamplesPerAxis < 2 in FixedGrid mode
	// (the trapezoidal rule needs at least two samples per axis).
	ErrBadSamples = errors.New("quad: samples per axis must be ≥ 2")

	// ErrBadDepth is returned when MaxDepth < 1 in Adaptive mode.
	ErrBadDepth = errors.New("quad: max recursion depth must be ≥ 1")

	// ErrUnknownMode is returned when Options.Mode is not a recognized
	// strategy.
	ErrUnknownMode = errors.New("quad: unknown quadrature mode")
)
