package core

import "math"

// Mu0 is the vacuum magnetic permeability μ₀ in T·m/A.
// The classical defined value is used; the 2019 SI redefinition shifts it
// far below the accuracy of any quadrature in this library.
const Mu0 = 4 * math.Pi * 1e-7

// CylPoint is an observation (or source) point in cylindrical coordinates:
// radial distance R in metres, azimuth Phi in radians, height Z in metres.
// The zero value is the origin. CylPoint is a value type: copy freely.
type CylPoint struct {
	R   float64
	Phi float64
	Z   float64
}

// CartPoint is an observation point in Cartesian coordinates (metres).
type CartPoint struct {
	X float64
	Y float64
	Z float64
}

// Cart converts p to Cartesian coordinates.
//
// Complexity: O(1).
func (p CylPoint) Cart() CartPoint {
	return CartPoint{
		X: p.R * math.Cos(p.Phi),
		Y: p.R * math.Sin(p.Phi),
		Z: p.Z,
	}
}

// Cyl converts p to cylindrical coordinates. The azimuth is reported in
// (−π, π] via math.Atan2; the origin maps to Phi == 0.
//
// Complexity: O(1).
func (p CartPoint) Cyl() CylPoint {
	return CylPoint{
		R:   math.Hypot(p.X, p.Y),
		Phi: math.Atan2(p.Y, p.X),
		Z:   p.Z,
	}
}

// FieldVector is an ordered triple of magnetic-field components in Tesla.
// The component basis is solver-defined: the disc solver fills
// (B_r, B_φ, B_z), the bar solver (B_x, B_y, B_z). A fresh FieldVector is
// produced per evaluation; there is no shared mutable state.
type FieldVector [3]float64

// Magnitude returns the Euclidean norm of the field vector.
//
// Complexity: O(1).
func (v FieldVector) Magnitude() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}
