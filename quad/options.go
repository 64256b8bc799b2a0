// SPDX-License-Identifier: MIT

// Package quad: strategy configuration. This file defines the Mode enum,
// the Options struct consumed by Integrate, documented defaults (single
// source of truth) and Options validation.

package quad

// Mode selects the quadrature strategy.
type Mode int

const (
	// Adaptive — error-controlled nested adaptive Simpson. One high-accuracy
	// value at a time; returns an error estimate and a convergence flag.
	Adaptive Mode = iota

	// FixedGrid — dense n³ tensor sampling plus repeated trapezoidal
	// reduction. Many approximate values quickly; no error bound.
	FixedGrid
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultAbsTol is the default absolute tolerance of the adaptive mode.
	// Field components on laboratory-scale magnets sit around 1e-3..1e-1 T,
	// so 1e-12 T leaves ample headroom.
	DefaultAbsTol = 1e-12

	// DefaultRelTol is the default relative tolerance of the adaptive mode.
	DefaultRelTol = 1e-6

	// DefaultMaxDepth caps the per-axis bisection depth of the adaptive
	// mode. 2^20 panels per axis is far beyond any smooth magnet integrand;
	// hitting the cap indicates a near-singular region and is reported via
	// Result.Converged=false.
	DefaultMaxDepth = 20

	// DefaultSamplesPerAxis is the default fixed-grid resolution per axis.
	// 64³ samples keep a single evaluation under a few hundred thousand
	// integrand calls while staying within a few percent of adaptive values
	// on non-degenerate geometries.
	DefaultSamplesPerAxis = 64
)

// Options configures one Integrate call.
//
// Fields:
//   - Mode           — Adaptive or FixedGrid.
//   - AbsTol, RelTol — adaptive tolerances; a panel is accepted when its
//     Richardson error estimate falls below max(AbsTol, RelTol·|panel|).
//   - MaxDepth       — adaptive bisection cap per axis (≥ 1).
//   - SamplesPerAxis — fixed-grid resolution per axis (≥ 2).
//
// The zero value is not valid; start from DefaultOptions and override.
type Options struct {
	Mode           Mode
	AbsTol         float64
	RelTol         float64
	MaxDepth       int
	SamplesPerAxis int
}

// DefaultOptions returns the documented defaults: adaptive integration with
// DefaultAbsTol/DefaultRelTol, DefaultMaxDepth and DefaultSamplesPerAxis
// (the latter is carried so switching Mode to FixedGrid needs no further
// edits).
func DefaultOptions() Options {
	return Options{
		Mode:           Adaptive,
		AbsTol:         DefaultAbsTol,
		RelTol:         DefaultRelTol,
		MaxDepth:       DefaultMaxDepth,
		SamplesPerAxis: DefaultSamplesPerAxis,
	}
}

// Validate checks internal consistency of the options for the selected mode.
// Returns ErrBadTolerance, ErrBadDepth, ErrBadSamples or ErrUnknownMode.
//
// Complexity: O(1).
func (o Options) Validate() error {
	switch o.Mode {
	case Adaptive:
		if o.AbsTol < 0 || o.RelTol < 0 || (o.AbsTol == 0 && o.RelTol == 0) {
			return ErrBadTolerance
		}
		if o.MaxDepth < 1 {
			return ErrBadDepth
		}
	case FixedGrid:
		if o.SamplesPerAxis < 2 {
			return ErrBadSamples
		}
	default:
		return ErrUnknownMode
	}

	return nil
}
