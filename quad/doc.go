// SPDX-License-Identifier: MIT

// Package quad integrates scalar integrands over a 3-D region in
// (φ, r, z) source coordinates, behind one contract with two interchangeable
// strategies:
//
//   - Adaptive — nested adaptive Simpson refinement per axis until an
//     absolute/relative tolerance is met. Scalar-at-a-time, not vectorizable;
//     the right choice when one observation point needs a tight error bound.
//     Returns an estimate plus an error estimate and a convergence flag.
//
//   - FixedGrid — dense regular sampling on an n×n×n tensor grid, reduced by
//     repeated trapezoidal summation innermost-to-outermost. O(n³) per call
//     but embarrassingly parallel across observation points; trades accuracy
//     for throughput. Returns an estimate with no error bound.
//
// The two variants agree to within a few percent on non-degenerate magnet
// geometries (covered by tests in the disc package).
//
// # Bounds
//
// Integration limits are reified as Bound values rather than ad hoc
// closures: a Bound is either constant or a function of the outer axes'
// current values. The order of integration, innermost to outermost, is
// fixed as φ, then r, then z; hence r bounds may depend on z, and φ bounds
// on (z, r). For a plain box all six bounds are constants (see Box), but the
// contract stays uniform for future non-constant-bound geometries.
//
// # Failure semantics
//
// If the adaptive variant exhausts its recursion cap before meeting the
// tolerance, it does NOT fail silently: it returns the best estimate with
// Converged=false and an inflated AbsError so callers can see the degraded
// confidence. Structural problems (nil integrand, inverted or non-finite
// bounds, nonsensical options) are reported via sentinel errors.
package quad
