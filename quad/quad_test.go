package quad_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bfield/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// one is the constant unit integrand.
func one(_, _, _ float64) float64 { return 1 }

// TestIntegrate_ConstantOverBox verifies ∭ 1 over [0,2π]×[0,1]×[0,1] = 2π
// for both strategies.
func TestIntegrate_ConstantOverBox(t *testing.T) {
	region := quad.Box(0, 2*math.Pi, 0, 1, 0, 1)

	opts := quad.DefaultOptions()
	res, err := quad.Integrate(one, region, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged, "constant integrand must converge")
	assert.InDelta(t, 2*math.Pi, res.Value, 1e-10)

	opts.Mode = quad.FixedGrid
	res, err = quad.Integrate(one, region, opts)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.True(t, math.IsNaN(res.AbsError), "fixed grid carries no error bound")
	assert.InDelta(t, 2*math.Pi, res.Value, 1e-10)
}

// TestIntegrate_SeparableProduct verifies ∭ φ·r·z over the unit cube = 1/8.
// The integrand is linear per axis, so even the trapezoidal grid is exact.
func TestIntegrate_SeparableProduct(t *testing.T) {
	f := func(phi, r, z float64) float64 { return phi * r * z }
	region := quad.Box(0, 1, 0, 1, 0, 1)

	opts := quad.DefaultOptions()
	res, err := quad.Integrate(f, region, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, res.Value, 1e-10)

	opts.Mode = quad.FixedGrid
	res, err = quad.Integrate(f, region, opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, res.Value, 1e-12)
}

// TestIntegrate_Trigonometric verifies ∭ cos(φ) over [0,π/2]×[0,1]² = 1 and
// that the two strategies agree within the documented few-percent band.
func TestIntegrate_Trigonometric(t *testing.T) {
	f := func(phi, _, _ float64) float64 { return math.Cos(phi) }
	region := quad.Box(0, math.Pi/2, 0, 1, 0, 1)

	opts := quad.DefaultOptions()
	adaptive, err := quad.Integrate(f, region, opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, adaptive.Value, 1e-8)
	assert.True(t, adaptive.Converged)
	assert.Less(t, adaptive.AbsError, 1e-6, "error estimate should reflect the met tolerance")

	opts.Mode = quad.FixedGrid
	grid, err := quad.Integrate(f, region, opts)
	require.NoError(t, err)
	assert.InEpsilon(t, adaptive.Value, grid.Value, 1e-3, "strategies must agree on smooth integrands")
}

// TestIntegrate_DependentBounds integrates 1 over the wedge r∈[0,z],
// φ∈[0,1], z∈[0,1]: ∫₀¹ z dz = 1/2. Exercises the DependentBound contract
// where an inner limit is a function of the outer variable.
func TestIntegrate_DependentBounds(t *testing.T) {
	region := quad.Region{
		Phi: quad.AxisBounds{Lo: quad.Constant(0), Hi: quad.Constant(1)},
		R: quad.AxisBounds{
			Lo: quad.Constant(0),
			Hi: quad.Dependent(func(outer ...float64) float64 { return outer[0] }), // r ≤ z
		},
		Z: quad.AxisBounds{Lo: quad.Constant(0), Hi: quad.Constant(1)},
	}

	for _, mode := range []quad.Mode{quad.Adaptive, quad.FixedGrid} {
		opts := quad.DefaultOptions()
		opts.Mode = mode
		res, err := quad.Integrate(one, region, opts)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, res.Value, 1e-4, "mode %v", mode)
	}
}

// TestIntegrate_InnermostDependsOnBoth integrates 1 over φ∈[0,r], r∈[0,z],
// z∈[0,1]: ∫₀¹∫₀ᶻ r dr dz = 1/6. Exercises φ bounds receiving (z, r).
func TestIntegrate_InnermostDependsOnBoth(t *testing.T) {
	region := quad.Region{
		Phi: quad.AxisBounds{
			Lo: quad.Constant(0),
			Hi: quad.Dependent(func(outer ...float64) float64 { return outer[1] }), // φ ≤ r
		},
		R: quad.AxisBounds{
			Lo: quad.Constant(0),
			Hi: quad.Dependent(func(outer ...float64) float64 { return outer[0] }), // r ≤ z
		},
		Z: quad.AxisBounds{Lo: quad.Constant(0), Hi: quad.Constant(1)},
	}

	res, err := quad.Integrate(one, region, quad.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, res.Value, 1e-4)
}

// TestIntegrate_ErrorEstimateScale verifies the adaptive diagnostics on an
// integrand with heavy innermost-axis structure: ∭ 1+cos(8φ) over
// [0,2π]×[0,1]² = 2π. The many accepted φ-panels must not leak into the
// reported AbsError (which tracks the outermost accumulation), and default
// tolerances must converge — an estimate rivaling the value, or a degraded
// flag on a smooth integrand, means the accounting regressed.
func TestIntegrate_ErrorEstimateScale(t *testing.T) {
	f := func(phi, _, _ float64) float64 { return 1 + math.Cos(8*phi) }

	res, err := quad.Integrate(f, quad.Box(0, 2*math.Pi, 0, 1, 0, 1), quad.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Converged, "default tolerances must be attainable on a smooth integrand")
	assert.InDelta(t, 2*math.Pi, res.Value, 1e-8)
	assert.Less(t, res.AbsError, 1e-6*res.Value, "error estimate must stay far below the value")
}

// TestIntegrate_EmptySpans verifies that zero-measure axes yield exactly 0
// without error.
func TestIntegrate_EmptySpans(t *testing.T) {
	res, err := quad.Integrate(one, quad.Box(0, 1, 0, 1, 2, 2), quad.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, res.Value, "empty z span integrates to zero")
	assert.True(t, res.Converged)
}

// TestIntegrate_DegradedConvergence forces the recursion cap with a depth of
// 1 and an unreachable tolerance: the result must be flagged, not silently
// wrong nor an error.
func TestIntegrate_DegradedConvergence(t *testing.T) {
	f := func(phi, _, _ float64) float64 { return math.Cos(7 * phi) }
	opts := quad.DefaultOptions()
	opts.AbsTol = 1e-300
	opts.RelTol = 0
	opts.MaxDepth = 1

	res, err := quad.Integrate(f, quad.Box(0, math.Pi, 0, 1, 0, 1), opts)
	require.NoError(t, err, "non-convergence is not an error")
	assert.False(t, res.Converged, "cap exhaustion must be flagged")
	assert.Greater(t, res.AbsError, 0.0, "degraded results carry an inflated error estimate")
}

// TestIntegrate_Sentinels covers the structural error taxonomy.
func TestIntegrate_Sentinels(t *testing.T) {
	box := quad.Box(0, 1, 0, 1, 0, 1)

	_, err := quad.Integrate(nil, box, quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrNilIntegrand)

	opts := quad.DefaultOptions()
	opts.AbsTol, opts.RelTol = 0, 0
	_, err = quad.Integrate(one, box, opts)
	assert.ErrorIs(t, err, quad.ErrBadTolerance)

	opts = quad.DefaultOptions()
	opts.AbsTol = -1
	_, err = quad.Integrate(one, box, opts)
	assert.ErrorIs(t, err, quad.ErrBadTolerance)

	opts = quad.DefaultOptions()
	opts.MaxDepth = 0
	_, err = quad.Integrate(one, box, opts)
	assert.ErrorIs(t, err, quad.ErrBadDepth)

	opts = quad.DefaultOptions()
	opts.Mode = quad.FixedGrid
	opts.SamplesPerAxis = 1
	_, err = quad.Integrate(one, box, opts)
	assert.ErrorIs(t, err, quad.ErrBadSamples)

	opts = quad.DefaultOptions()
	opts.Mode = quad.Mode(42)
	_, err = quad.Integrate(one, box, opts)
	assert.ErrorIs(t, err, quad.ErrUnknownMode)

	// Inverted constant bounds.
	_, err = quad.Integrate(one, quad.Box(0, 1, 0, 1, 1, 0), quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrBadBounds)

	// Dependent bound with a nil function.
	bad := box
	bad.R.Hi = quad.Bound{Kind: quad.DependentBound}
	_, err = quad.Integrate(one, bad, quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrBadBounds)

	// Non-finite bound.
	bad = box
	bad.Phi.Hi = quad.Constant(math.Inf(1))
	_, err = quad.Integrate(one, bad, quad.DefaultOptions())
	assert.ErrorIs(t, err, quad.ErrBadBounds)
}
