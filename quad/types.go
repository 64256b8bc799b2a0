// SPDX-License-Identifier: MIT

package quad

import "math"

// Integrand is a scalar field over the 3-D source region, taking the source
// coordinates in integration order, innermost first: φ, then r, then z.
type Integrand func(phi, r, z float64) float64

// BoundKind tags a Bound as constant or dependent on outer axes.
type BoundKind int

const (
	// ConstantBound — the limit is a fixed number, independent of the outer
	// integration variables.
	ConstantBound BoundKind = iota

	// DependentBound — the limit is a function of the outer axes' current
	// values (r bounds receive z; φ bounds receive z, r).
	DependentBound
)

// Bound describes one integration limit of one axis: either a constant
// value or a function of the outer axes. The zero value is the constant 0.
type Bound struct {
	Kind  BoundKind
	Value float64                        // used when Kind == ConstantBound
	Fn    func(outer ...float64) float64 // used when Kind == DependentBound
}

// Constant returns a constant Bound.
func Constant(v float64) Bound {
	return Bound{Kind: ConstantBound, Value: v}
}

// Dependent returns a Bound computed from the outer axes' current values.
func Dependent(fn func(outer ...float64) float64) Bound {
	return Bound{Kind: DependentBound, Fn: fn}
}

// at resolves the bound given the outer axes' current values.
// Returns ErrBadBounds for a nil dependent function or a non-finite value.
func (b Bound) at(outer ...float64) (float64, error) {
	var v float64
	switch b.Kind {
	case ConstantBound:
		v = b.Value
	case DependentBound:
		if b.Fn == nil {
			return 0, ErrBadBounds
		}
		v = b.Fn(outer...)
	default:
		return 0, ErrBadBounds
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadBounds
	}

	return v, nil
}

// AxisBounds holds the lower and upper limit of one integration axis.
type AxisBounds struct {
	Lo Bound
	Hi Bound
}

// span resolves both limits and checks Hi ≥ Lo.
func (a AxisBounds) span(outer ...float64) (lo, hi float64, err error) {
	if lo, err = a.Lo.at(outer...); err != nil {
		return 0, 0, err
	}
	if hi, err = a.Hi.at(outer...); err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, ErrBadBounds
	}

	return lo, hi, nil
}

// Region describes the 3-D integration region. Axes are listed in
// integration order, innermost to outermost: Phi, R, Z. Z bounds must not
// depend on anything (there are no outer axes left); dependent Z bounds are
// resolved with no arguments.
type Region struct {
	Phi AxisBounds
	R   AxisBounds
	Z   AxisBounds
}

// Box builds a Region with all-constant bounds — the common case for solid
// magnet volumes.
func Box(phiLo, phiHi, rLo, rHi, zLo, zHi float64) Region {
	return Region{
		Phi: AxisBounds{Lo: Constant(phiLo), Hi: Constant(phiHi)},
		R:   AxisBounds{Lo: Constant(rLo), Hi: Constant(rHi)},
		Z:   AxisBounds{Lo: Constant(zLo), Hi: Constant(zHi)},
	}
}

// Result is the outcome of one triple integration.
type Result struct {
	// Value is the integral estimate.
	Value float64

	// AbsError is the estimated absolute error. For the adaptive strategy it
	// is a heuristic accumulation of the outermost level's accepted-panel
	// Richardson estimates, plus the raw defect of any panel that exhausted
	// MaxDepth (a diagnostic, not a rigorous bound). The fixed-grid strategy
	// provides no error bound and reports NaN here.
	AbsError float64

	// Converged is true when the adaptive strategy met its tolerance on
	// every panel before exhausting MaxDepth. The fixed-grid strategy always
	// reports true (it has no convergence notion to violate).
	Converged bool
}
