package disc

import (
	"math"

	"github.com/katalvlaran/bfield/core"
	"github.com/katalvlaran/bfield/kernel"
	"github.com/katalvlaran/bfield/quad"
)

// Model selects the azimuthal magnetization profile of the disc.
type Model int

const (
	// Diametric — magnetization modulated by cos(φ′) across the
	// cross-section. This is the physical model the solver exists for.
	Diametric Model = iota

	// Uniform — no azimuthal modulation. Yields a rotationally symmetric
	// field; used by symmetry tests and plain axial-magnet evaluations.
	Uniform
)

// Options configures one disc evaluation.
//
// Fields:
//   - Quadrature — strategy and tolerances for the triple integrals.
//   - Model      — Diametric (default) or Uniform.
//   - Guard      — squared-distance kernel guard. 0 is a sentinel selecting
//     kernel.DefaultGuard (a zero-valued Options is never silently
//     guardless); pass a negative value to disable suppression entirely, as
//     kernel.Inverse documents for guard ≤ 0 — the caller then owns the
//     singularity. Observation points inside or touching the disc volume sit
//     in the known-imprecise region the guard creates (see package kernel).
type Options struct {
	Quadrature quad.Options
	Model      Model
	Guard      float64
}

// DefaultOptions returns adaptive quadrature defaults with the Diametric
// model and the default kernel guard.
func DefaultOptions() Options {
	return Options{
		Quadrature: quad.DefaultOptions(),
		Model:      Diametric,
		Guard:      kernel.DefaultGuard,
	}
}

// Report carries the per-component quadrature outcomes of one evaluation,
// with Value already scaled to Tesla. Callers receiving Converged()==false
// must treat the corresponding components as degraded-confidence values.
type Report struct {
	Radial    quad.Result
	Azimuthal quad.Result
	Axial     quad.Result
}

// Converged reports whether all three component integrations met tolerance.
func (r Report) Converged() bool {
	return r.Radial.Converged && r.Azimuthal.Converged && r.Axial.Converged
}

// Evaluate computes the field vector (B_r, B_φ, B_z) in Tesla at one
// observation point p (cylindrical) for disc geometry g.
//
// Contract:
//   - g is validated first; invalid geometry returns a core sentinel and a
//     zero field, before any numerics run.
//   - p is read-only; a fresh FieldVector is returned per call.
//   - Degraded quadrature is reported via Report, not via error.
//
// Errors: core geometry sentinels, quad option/bounds sentinels.
//
// Complexity: three triple integrations (see quad package for cost).
func Evaluate(p core.CylPoint, g core.DiscGeometry, opts Options) (core.FieldVector, Report, error) {
	if err := g.Validate(); err != nil {
		return core.FieldVector{}, Report{}, err
	}

	guard := opts.Guard
	if guard == 0 {
		guard = kernel.DefaultGuard
	}

	// Azimuthal modulation of the magnetization model.
	modulate := math.Cos
	if opts.Model == Uniform {
		modulate = func(float64) float64 { return 1 }
	}

	// g³ kernel shared by all three integrands.
	cubed := func(phi, r, z float64) float64 {
		return kernel.InverseCubed(p, core.CylPoint{R: r, Phi: phi, Z: z}, guard)
	}

	radial := func(phi, r, z float64) float64 {
		return modulate(phi) * (p.R - r*math.Cos(p.Phi-phi)) * cubed(phi, r, z) * r
	}
	// The r² factor (vs. the single r volume element elsewhere) is part of
	// the magnetization model's φ-dependence, not a typo.
	azimuthal := func(phi, r, z float64) float64 {
		return modulate(phi) * math.Sin(p.Phi-phi) * cubed(phi, r, z) * r * r
	}
	axial := func(phi, r, z float64) float64 {
		return modulate(phi) * (p.Z - z) * cubed(phi, r, z) * r
	}

	region := quad.Box(0, 2*math.Pi, 0, g.Radius, g.ZMin, g.ZMax)
	prefactor := core.Mu0 * g.Magnetization / (4 * math.Pi)

	var (
		report Report
		field  core.FieldVector
		err    error
	)
	if report.Radial, err = integrateScaled(radial, region, opts.Quadrature, prefactor); err != nil {
		return core.FieldVector{}, Report{}, err
	}
	if report.Azimuthal, err = integrateScaled(azimuthal, region, opts.Quadrature, prefactor); err != nil {
		return core.FieldVector{}, Report{}, err
	}
	if report.Axial, err = integrateScaled(axial, region, opts.Quadrature, prefactor); err != nil {
		return core.FieldVector{}, Report{}, err
	}

	field = core.FieldVector{report.Radial.Value, report.Azimuthal.Value, report.Axial.Value}

	return field, report, nil
}

// integrateScaled runs one component integration and scales both the value
// and its error estimate into Tesla.
func integrateScaled(f quad.Integrand, region quad.Region, opts quad.Options, prefactor float64) (quad.Result, error) {
	res, err := quad.Integrate(f, region, opts)
	if err != nil {
		return quad.Result{}, err
	}
	res.Value *= prefactor
	res.AbsError *= math.Abs(prefactor) // NaN stays NaN for fixed-grid results

	return res, nil
}
