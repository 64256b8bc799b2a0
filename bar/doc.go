// Package bar computes the magnetic field of a uniformly magnetized
// rectangular prism ("bar" magnet) from closed-form face-summation formulas
// derived from the magnetic scalar potential — no numerical integration.
//
// With the six face planes x_{1,2} = ∓x_half, y_{1,2} = ∓y_half,
// z_{1,2} = ∓z_half (each shifted by the translation offset), the components
// at observation point (x, y, z) are alternating-sign sums over face pairs:
//
//	B_x = C·Σ_k Σ_m (−1)^(k+m) · ln F(x_m, y₁, y₂, z_k)
//	B_y = C·Σ_k Σ_m (−1)^(k+m) · ln H(x₁, x₂, y_m, z_k)
//	B_z = C·Σ_k Σ_n Σ_m (−1)^(k+n+m) · atan[(x−x_n)(y−y_m)/(z−z_k) · G(x_n, y_m, z_k)]
//
// where C = μ₀·M_s·μ_r/(4π), F and H are ratios of corner-distance sums and
// G is the inverse corner distance (see the function comments in bar.go).
//
// The alternating signs use one-based face indices k, n, m ∈ {1, 2}. The
// loops here are zero-based, so the signs are written out as explicit lookup
// tables (signTwo, signThree) whose entries reproduce the one-based parity;
// the tables are pinned by the worked on-axis example in the tests rather
// than re-derived.
//
// Degenerate denominators (a vanishing F/H denominator, the (z−z_k) term, or
// a corner-coincident observation point) are substituted with DenomEpsilon
// instead of raising a division error. This is an explicit bounded
// approximation near face planes, corners and edges — not exact singularity
// handling — and it keeps every returned field finite.
package bar
