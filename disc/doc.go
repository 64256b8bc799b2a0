// Package disc computes the magnetic field of a solid disc magnet whose
// magnetization is modulated by cos(φ′) over its cross-section (a
// diametrically varying model, not a simple axial magnet), by triple
// integration over the disc volume in cylindrical source coordinates.
//
// For an observation point (r, φ, z) and source point (r′, φ′, z′) with
// g = 1/d³ (the cubed inverse-distance kernel), the three raw integrals are
//
//	B_r ∝ ∭ cos(φ′)·(r − r′·cos(φ−φ′))·g·r′  dφ′ dr′ dz′
//	B_φ ∝ ∭ cos(φ′)·sin(φ−φ′)·g·r′²         dφ′ dr′ dz′
//	B_z ∝ ∭ cos(φ′)·(z − z′)·g·r′           dφ′ dr′ dz′
//
// each scaled by μ₀·M_s/(4π) to yield Tesla. Note the squared r′ factor in
// the azimuthal integrand where the other two carry a single r′ (the volume
// element): that asymmetry is part of the documented magnetization model and
// is reproduced exactly — see the package tests, which pin it down.
//
// Bounds are φ′∈[0,2π], r′∈[0,R], z′∈[ZMin,ZMax], integrated innermost to
// outermost in exactly that order via the quad package.
//
// The Uniform model drops the cos(φ′) modulation; with it the field is
// rotationally symmetric (B_r, B_z independent of φ, B_φ ≡ 0), which the
// tests use to verify that symmetry is broken only by the explicit cos(φ′).
//
// Degraded quadrature results (Result.Converged=false) are propagated in the
// returned Report, never substituted with defaults.
package disc
