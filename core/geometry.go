package core

import "math"

// DiscGeometry describes an axially symmetric solid disc magnet:
// outer radius, axial span [ZMin, ZMax] and scalar magnetization.
//
// Invariants (enforced by Validate, checked by every solver before any
// numerics run):
//   - Radius > 0,
//   - ZMax > ZMin,
//   - all fields finite.
//
// The magnetization magnitude Magnetization is in A/m; its spatial model
// (diametric cos φ′ modulation vs. uniform axial) is a solver option, not a
// geometry property.
type DiscGeometry struct {
	Radius        float64 // outer radius in metres
	ZMin          float64 // lower axial bound in metres
	ZMax          float64 // upper axial bound in metres
	Magnetization float64 // magnetization magnitude M_s in A/m
}

// Validate reports whether the disc geometry is solvable.
// Returns ErrNonFinite, ErrNonPositiveRadius or ErrInvertedAxialSpan.
//
// Complexity: O(1).
func (g DiscGeometry) Validate() error {
	if !finiteAll(g.Radius, g.ZMin, g.ZMax, g.Magnetization) {
		return ErrNonFinite
	}
	if g.Radius <= 0 {
		return ErrNonPositiveRadius
	}
	if g.ZMax <= g.ZMin {
		return ErrInvertedAxialSpan
	}

	return nil
}

// BarGeometry describes a uniformly magnetized rectangular prism by its
// half-extents along each Cartesian axis, its magnetization and its relative
// permeability. The prism is centered at the origin; repositioning is done
// by the translation offset passed into bar.Evaluate, never by mutating the
// geometry.
//
// Invariants (enforced by Validate): all half-extents > 0 so the six face
// planes derived as ±half-extent are pairwise distinct, RelPermeability ≥ 1,
// all fields finite.
type BarGeometry struct {
	XHalf           float64 // half-extent along x in metres
	YHalf           float64 // half-extent along y in metres
	ZHalf           float64 // half-extent along z in metres
	Magnetization   float64 // magnetization magnitude M_s in A/m
	RelPermeability float64 // relative permeability μ_r, ≥ 1
}

// Validate reports whether the bar geometry is solvable.
// Returns ErrNonFinite, ErrDegenerateBox or ErrPermeabilityBelowUnity.
//
// Complexity: O(1).
func (g BarGeometry) Validate() error {
	if !finiteAll(g.XHalf, g.YHalf, g.ZHalf, g.Magnetization, g.RelPermeability) {
		return ErrNonFinite
	}
	if g.XHalf <= 0 || g.YHalf <= 0 || g.ZHalf <= 0 {
		return ErrDegenerateBox
	}
	if g.RelPermeability < 1 {
		return ErrPermeabilityBelowUnity
	}

	return nil
}

// finiteAll reports whether every value is neither NaN nor ±Inf.
func finiteAll(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
