// Package kernel implements the pairwise Green's function of magnetostatics:
// the inverse Euclidean distance between a source point and an observation
// point, expressed in cylindrical coordinates.
//
// The squared distance between (r, φ, z) and (r′, φ′, z′) is
//
//	d² = r² + r′² − 2·r·r′·cos(φ−φ′) + (z−z′)²
//
// and the kernel value is 1/d (or 1/d³ for the field integrands, which
// differentiate the scalar potential).
//
// # Singularity guard
//
// When the observation point approaches the source region, d² → 0 and the
// kernel diverges. Instead of raising an error, the kernel returns 0 whenever
// d² falls below a caller-supplied guard threshold. This is a deliberate,
// documented approximation: it silently suppresses the near-singular
// self-contribution, changing the value of any integral whose domain touches
// the observation point. It is NOT general-purpose singularity removal. The
// threshold is a per-call parameter precisely so call sites with different
// accuracy needs can tune it; DefaultGuard is a middle-of-the-road choice.
//
// No errors are returned for degenerate inputs: only the guard applies.
package kernel
