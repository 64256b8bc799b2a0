// SPDX-License-Identifier: MIT

package quad

// Integrate evaluates ∭ f(φ, r, z) dφ dr dz over the region, using the
// strategy selected by opts.Mode.
//
// Contract:
//   - f must be non-nil; bounds must resolve to finite, ordered values.
//   - Adaptive mode returns Result{Value, AbsError, Converged}; a result
//     with Converged=false is degraded but still usable — the caller decides.
//   - FixedGrid mode returns Result{Value, AbsError: NaN, Converged: true}.
//
// Errors: ErrNilIntegrand, ErrBadBounds, or an Options validation sentinel.
func Integrate(f Integrand, region Region, opts Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilIntegrand
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	switch opts.Mode {
	case Adaptive:
		return integrateAdaptive(f, region, opts)
	case FixedGrid:
		return integrateFixedGrid(f, region, opts)
	default:
		// Unreachable after Validate.
		return Result{}, ErrUnknownMode
	}
}
