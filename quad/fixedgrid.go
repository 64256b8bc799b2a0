// SPDX-License-Identifier: MIT

// Package quad: fixed-grid strategy. Dense n×n×n tensor sampling with
// repeated trapezoidal reduction (gonum integrate) along each axis in turn,
// innermost (φ) to outermost (z).

package quad

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// integrateFixedGrid samples f on a regular SamplesPerAxis³ grid and
// collapses one axis at a time with the trapezoidal rule.
//
// The per-(r,z) φ panels reuse one sample buffer: the grid is reduced as it
// is produced, so memory stays O(n) rather than O(n³).
//
// Complexity: O(n³) integrand evaluations, O(n) extra space.
func integrateFixedGrid(f Integrand, region Region, opts Options) (Result, error) {
	zLo, zHi, err := region.Z.span()
	if err != nil {
		return Result{}, err
	}

	// No error bound is available from a fixed grid; NaN marks its absence.
	noBound := math.NaN()

	n := opts.SamplesPerAxis
	if zHi == zLo {
		return Result{Value: 0, AbsError: noBound, Converged: true}, nil
	}

	var (
		zs      = floats.Span(make([]float64, n), zLo, zHi)
		rs      = make([]float64, n) // reused per z-plane
		phis    = make([]float64, n) // reused per (r, z) line
		samples = make([]float64, n)
		overR   = make([]float64, n)
		overZ   = make([]float64, n)
	)

	for k, z := range zs {
		rLo, rHi, rErr := region.R.span(z)
		if rErr != nil {
			return Result{}, rErr
		}
		if rHi == rLo {
			overZ[k] = 0

			continue
		}
		floats.Span(rs, rLo, rHi)

		for j, r := range rs {
			phiLo, phiHi, phiErr := region.Phi.span(z, r)
			if phiErr != nil {
				return Result{}, phiErr
			}
			if phiHi == phiLo {
				overR[j] = 0

				continue
			}
			floats.Span(phis, phiLo, phiHi)

			for i, phi := range phis {
				samples[i] = f(phi, r, z)
			}
			overR[j] = integrate.Trapezoidal(phis, samples)
		}
		overZ[k] = integrate.Trapezoidal(rs, overR)
	}

	return Result{Value: integrate.Trapezoidal(zs, overZ), AbsError: noBound, Converged: true}, nil
}
