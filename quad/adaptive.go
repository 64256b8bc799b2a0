// SPDX-License-Identifier: MIT

// Package quad: adaptive strategy. Nested one-dimensional adaptive Simpson
// with Richardson extrapolation, applied innermost-to-outermost over
// (φ, r, z). Hand-rolled because the ecosystem's fixed-order rules
// (Gauss-Legendre and friends) provide no error estimate, and the contract
// here requires one.

package quad

import "math"

// status accumulates convergence diagnostics across every panel of every
// nesting level of one Integrate call. errEst collects accepted-panel
// Richardson estimates at the outermost level only — inner-level estimates
// are in raw integrand units, unweighted by the outer quadrature, and summing
// them would dwarf the true error. A depth-exhausted panel at any level adds
// its raw defect, so degraded results always carry an inflated estimate.
type status struct {
	errEst    float64
	converged bool // false once any panel at any level exhausts MaxDepth
}

// integrateAdaptive runs the nested adaptive Simpson over the region.
//
// Tolerance budgeting: the innermost (φ) and middle (r) integrals are
// evaluated with the absolute tolerance scaled by the measure of the
// remaining outer axes, so their error enters the outermost accumulation
// within opts.AbsTol. The relative tolerance applies unchanged at every
// level.
//
// Complexity: O(panels) integrand evaluations; panels grow with integrand
// roughness up to 2^MaxDepth per axis.
func integrateAdaptive(f Integrand, region Region, opts Options) (Result, error) {
	zLo, zHi, err := region.Z.span()
	if err != nil {
		return Result{}, err
	}

	st := &status{converged: true}

	// Bounds of the inner axes are resolved per outer sample, so resolution
	// failures surface inside closures; they are recorded here and reported
	// after the sweep (the integrand contract has no error channel).
	var boundsErr error

	zSpan := zHi - zLo
	if zSpan == 0 {
		return Result{Value: 0, AbsError: 0, Converged: true}, nil
	}

	outer := func(z float64) float64 {
		rLo, rHi, rErr := region.R.span(z)
		if rErr != nil {
			boundsErr = rErr

			return 0
		}
		rSpan := rHi - rLo
		if rSpan == 0 {
			return 0
		}

		middle := func(r float64) float64 {
			phiLo, phiHi, phiErr := region.Phi.span(z, r)
			if phiErr != nil {
				boundsErr = phiErr

				return 0
			}
			if phiHi == phiLo {
				return 0
			}

			inner := func(phi float64) float64 { return f(phi, r, z) }

			return adaptiveSimpson(inner, phiLo, phiHi, opts.AbsTol/(zSpan*rSpan), opts.RelTol, opts.MaxDepth, st, false)
		}

		return adaptiveSimpson(middle, rLo, rHi, opts.AbsTol/zSpan, opts.RelTol, opts.MaxDepth, st, false)
	}

	value := adaptiveSimpson(outer, zLo, zHi, opts.AbsTol, opts.RelTol, opts.MaxDepth, st, true)
	if boundsErr != nil {
		return Result{}, boundsErr
	}

	return Result{Value: value, AbsError: st.errEst, Converged: st.converged}, nil
}

// simpsonRule evaluates Simpson's rule on [a,b] given f(a), f((a+b)/2), f(b).
func simpsonRule(a, b, fa, fm, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

// adaptiveSimpson integrates f over [a,b] by recursive bisection, accepting
// a panel when its Richardson estimate |S_left+S_right−S_whole|/15 meets
// max(absTol, relTol·|panel|). record selects whether accepted-panel
// estimates feed st.errEst (outermost level only). Exhausting maxDepth marks
// st degraded and keeps the best available extrapolation.
func adaptiveSimpson(f func(float64) float64, a, b, absTol, relTol float64, maxDepth int, st *status, record bool) float64 {
	m := (a + b) / 2
	fa, fm, fb := f(a), f(m), f(b)
	whole := simpsonRule(a, b, fa, fm, fb)

	return simpsonPanel(f, a, b, fa, fm, fb, whole, absTol, relTol, maxDepth, st, record)
}

// simpsonPanel is the recursive worker of adaptiveSimpson. fa/fm/fb and
// whole are carried down to avoid re-evaluating f at panel endpoints. absTol
// is a per-panel floor held fixed through the recursion: bisection shrinks a
// smooth panel's defect ~32× per level, so shrinking the target alongside
// would chase the roundoff noise floor and spuriously exhaust the depth cap.
func simpsonPanel(f func(float64) float64, a, b, fa, fm, fb, whole, absTol, relTol float64, depth int, st *status, record bool) float64 {
	var (
		m        = (a + b) / 2
		lm       = (a + m) / 2
		rm       = (m + b) / 2
		flm, frm = f(lm), f(rm)
	)
	left := simpsonRule(a, m, fa, flm, fm)
	right := simpsonRule(m, b, fm, frm, fb)
	delta := left + right - whole

	richardson := math.Abs(delta) / 15
	tol := math.Max(absTol, relTol*math.Abs(left+right))
	if richardson <= tol {
		if record {
			st.errEst += richardson
		}

		return left + right + delta/15
	}
	if depth <= 1 {
		// Recursion cap hit: keep the extrapolated value but flag the loss
		// of confidence and inflate the reported error by the raw defect.
		st.converged = false
		st.errEst += math.Abs(delta)

		return left + right + delta/15
	}

	return simpsonPanel(f, a, m, fa, flm, fm, left, absTol, relTol, depth-1, st, record) +
		simpsonPanel(f, m, b, fm, frm, fb, right, absTol, relTol, depth-1, st, record)
}
