// Package core: sentinel error set shared by all solvers.
// This file defines ONLY package-level sentinel errors. Solvers MUST return
// these sentinels on invalid geometry and tests MUST check them via
// errors.Is. No solver panics on user input; panics are reserved for
// programmer errors in private helpers.

package core

import "errors"

var (
	// ErrNonPositiveRadius is returned when a disc geometry carries an outer
	// radius ≤ 0. A disc with no cross-section has no field to evaluate.
	ErrNonPositiveRadius = errors.New("core: disc radius must be > 0")

	// ErrInvertedAxialSpan is returned when a disc geometry carries an axial
	// span with ZMax ≤ ZMin (empty or inverted volume).
	ErrInvertedAxialSpan = errors.New("core: axial span must satisfy ZMax > ZMin")

	// ErrDegenerateBox is returned when a bar geometry carries a half-extent
	// ≤ 0, collapsing a face pair onto a single plane.
	ErrDegenerateBox = errors.New("core: bar half-extents must all be > 0")

	// ErrPermeabilityBelowUnity is returned when a bar geometry carries a
	// relative permeability < 1, which has no physical meaning here.
	ErrPermeabilityBelowUnity = errors.New("core: relative permeability must be ≥ 1")

	// ErrNonFinite is returned when a geometry field is NaN or ±Inf.
	ErrNonFinite = errors.New("core: geometry values must be finite")
)
