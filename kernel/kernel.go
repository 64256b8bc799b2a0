package kernel

import (
	"math"

	"github.com/katalvlaran/bfield/core"
)

// DefaultGuard is the default squared-distance threshold below which the
// kernel suppresses the near-singular contribution and returns 0.
// Callers integrating very close to the source volume may want a smaller
// guard (down to ~1e-20); callers batching on coarse grids a larger one.
const DefaultGuard = 1e-12

// DistanceSquared returns the squared Euclidean distance between an
// observation point and a source point, both in cylindrical coordinates.
//
// Complexity: O(1).
func DistanceSquared(obs, src core.CylPoint) float64 {
	dz := obs.Z - src.Z

	return obs.R*obs.R + src.R*src.R - 2*obs.R*src.R*math.Cos(obs.Phi-src.Phi) + dz*dz
}

// Inverse returns 1/d between obs and src, or 0 when d² < guard.
// A guard ≤ 0 disables the suppression entirely (the caller then owns the
// divergence).
//
// Complexity: O(1).
func Inverse(obs, src core.CylPoint, guard float64) float64 {
	d2 := DistanceSquared(obs, src)
	if d2 < guard {
		return 0
	}

	return 1 / math.Sqrt(d2)
}

// InverseCubed returns 1/d³ between obs and src, or 0 when d² < guard.
// This is the kernel form consumed by the disc-solver integrands, which
// differentiate the magnetostatic potential once.
//
// Complexity: O(1).
func InverseCubed(obs, src core.CylPoint, guard float64) float64 {
	d2 := DistanceSquared(obs, src)
	if d2 < guard {
		return 0
	}

	return 1 / (d2 * math.Sqrt(d2))
}
