package bar

import (
	"math"

	"github.com/katalvlaran/bfield/core"
)

// DenomEpsilon replaces numerically vanishing denominators in the face
// formulas. The substitution bounds the result instead of dividing by zero;
// values near a face plane are approximate within this floor.
const DenomEpsilon = 1e-12

// signTwo[k][m] reproduces (−1)^(k+m) for one-based face indices k, m ∈ {1,2}
// addressed with zero-based loop indices.
var signTwo = [2][2]float64{
	{+1, -1},
	{-1, +1},
}

// signThree[k][n][m] reproduces (−1)^(k+n+m) for one-based face indices
// addressed with zero-based loop indices.
var signThree = [2][2][2]float64{
	{{-1, +1}, {+1, -1}},
	{{+1, -1}, {-1, +1}},
}

// Evaluate computes the field vector (B_x, B_y, B_z) in Tesla at observation
// point p for bar geometry g translated by offset (the magnet's center sits
// at offset; faces are offset ± half-extent).
//
// Contract:
//   - g is validated first; invalid geometry returns a core sentinel.
//   - The result is always finite: degenerate denominators are floored at
//     DenomEpsilon (see package doc).
//   - p, g and offset are read-only; a fresh FieldVector is returned.
//
// Errors: core geometry sentinels only.
//
// Complexity: O(1) — a fixed number of logs, arctangents and square roots.
func Evaluate(p core.CartPoint, g core.BarGeometry, offset core.CartPoint) (core.FieldVector, error) {
	if err := g.Validate(); err != nil {
		return core.FieldVector{}, err
	}

	// Face coordinates, index 0 ⇒ the "1" (negative) face, 1 ⇒ the "2" face.
	xf := [2]float64{offset.X - g.XHalf, offset.X + g.XHalf}
	yf := [2]float64{offset.Y - g.YHalf, offset.Y + g.YHalf}
	zf := [2]float64{offset.Z - g.ZHalf, offset.Z + g.ZHalf}

	c := core.Mu0 * g.Magnetization * g.RelPermeability / (4 * math.Pi)

	var bx, by, bz float64
	for k := 0; k < 2; k++ {
		for m := 0; m < 2; m++ {
			bx += signTwo[k][m] * math.Log(ratioF(p, xf[m], yf, zf[k]))
			by += signTwo[k][m] * math.Log(ratioH(p, xf, yf[m], zf[k]))
			for n := 0; n < 2; n++ {
				bz += signThree[k][n][m] * math.Atan((p.X-xf[n])*(p.Y-yf[m])/denom(p.Z-zf[k])*inverseG(p, xf[n], yf[m], zf[k]))
			}
		}
	}

	return core.FieldVector{c * bx, c * by, c * bz}, nil
}

// ratioF is F(x,y,z; x_m,y₁,y₂,z_k) = [(y−y₁)+R₁] / [(y−y₂)+R₂] with
// R_i the distance from p to the corner (x_m, y_i, z_k). Both terms are
// non-negative by the triangle inequality; the denominator (and a vanishing
// numerator, which would drive ln to −∞) are floored at DenomEpsilon.
func ratioF(p core.CartPoint, xm float64, yf [2]float64, zk float64) float64 {
	num := denom((p.Y - yf[0]) + corner(p, xm, yf[0], zk))
	den := denom((p.Y - yf[1]) + corner(p, xm, yf[1], zk))

	return num / den
}

// ratioH is H(x,y,z; x₁,x₂,y_m,z_k) = [(x−x₁)+R₁] / [(x−x₂)+R₂] with
// R_i the distance from p to the corner (x_i, y_m, z_k).
func ratioH(p core.CartPoint, xf [2]float64, ym, zk float64) float64 {
	num := denom((p.X - xf[0]) + corner(p, xf[0], ym, zk))
	den := denom((p.X - xf[1]) + corner(p, xf[1], ym, zk))

	return num / den
}

// inverseG is G(x,y,z; x_n,y_m,z_k) = 1 / distance to the corner, floored at
// DenomEpsilon for corner-coincident observation points.
func inverseG(p core.CartPoint, xn, ym, zk float64) float64 {
	return 1 / denom(corner(p, xn, ym, zk))
}

// corner returns the Euclidean distance from p to the corner (x, y, z).
func corner(p core.CartPoint, x, y, z float64) float64 {
	dx, dy, dz := p.X-x, p.Y-y, p.Z-z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// denom floors a denominator term at DenomEpsilon in magnitude. The sign of
// small negative values is preserved; an exact zero becomes +DenomEpsilon.
func denom(v float64) float64 {
	if math.Abs(v) < DenomEpsilon {
		if v < 0 {
			return -DenomEpsilon
		}

		return DenomEpsilon
	}

	return v
}
