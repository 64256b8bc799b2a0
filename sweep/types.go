package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bfield/core"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnknownAxis is returned when Spec.Axis is not a recognized sweep
	// parameter.
	ErrUnknownAxis = errors.New("sweep: unknown sweep axis")

	// ErrBadSampleCount is returned when Spec.Samples < 2 (a sweep is an
	// ordered sequence, and two samples is the minimum that spans a range).
	ErrBadSampleCount = errors.New("sweep: samples must be ≥ 2")

	// ErrNonFiniteRange is returned when Start, Stop or a Base coordinate is
	// NaN or ±Inf.
	ErrNonFiniteRange = errors.New("sweep: range and base must be finite")

	// ErrNilEvaluator is returned when Run receives a nil Evaluator.
	ErrNilEvaluator = errors.New("sweep: evaluator must be non-nil")

	// ErrBadComponent is returned when Result.Component receives an index
	// outside 0..2.
	ErrBadComponent = errors.New("sweep: component index out of range")
)

// Axis identifies the swept parameter.
type Axis int

const (
	// AxisR sweeps the observation radius.
	AxisR Axis = iota

	// AxisPhi sweeps the observation azimuth (the typical periodic sweep).
	AxisPhi

	// AxisZ sweeps the observation height.
	AxisZ

	// AxisTranslation sweeps a magnet translation offset: the observation
	// point stays at Base and the swept value is delivered to the Evaluator
	// for it to reposition the magnet.
	AxisTranslation
)

// Spec describes one sweep: Samples evenly spaced values of Axis from Start
// to Stop (inclusive), all other coordinates held at Base. Spec is a value
// type owned by the caller; Run reads it, never mutates it.
type Spec struct {
	Axis    Axis
	Start   float64
	Stop    float64
	Samples int
	Base    core.CylPoint
}

// Validate reports whether the spec is runnable.
// Returns ErrUnknownAxis, ErrBadSampleCount or ErrNonFiniteRange.
//
// Complexity: O(1).
func (s Spec) Validate() error {
	switch s.Axis {
	case AxisR, AxisPhi, AxisZ, AxisTranslation:
	default:
		return ErrUnknownAxis
	}
	if s.Samples < 2 {
		return ErrBadSampleCount
	}
	for _, v := range []float64{s.Start, s.Stop, s.Base.R, s.Base.Phi, s.Base.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFiniteRange
		}
	}

	return nil
}

// Values returns the swept parameter grid: Samples evenly spaced values
// spanning [Start, Stop] inclusive.
//
// Complexity: O(Samples).
func (s Spec) Values() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return floats.Span(make([]float64, s.Samples), s.Start, s.Stop), nil
}

// Points returns the observation point at every sample: Base with the swept
// coordinate substituted, or Base repeated for AxisTranslation (the point is
// fixed; the magnet moves).
//
// Complexity: O(Samples).
func (s Spec) Points() ([]core.CylPoint, error) {
	values, err := s.Values()
	if err != nil {
		return nil, err
	}

	points := make([]core.CylPoint, len(values))
	for i, v := range values {
		p := s.Base
		switch s.Axis {
		case AxisR:
			p.R = v
		case AxisPhi:
			p.Phi = v
		case AxisZ:
			p.Z = v
		case AxisTranslation:
			// Point untouched; the Evaluator applies v to the magnet.
		}
		points[i] = p
	}

	return points, nil
}

// PointError records one skipped sweep sample.
type PointError struct {
	Index int
	Err   error
}

// Error implements the error interface with the sample index for context.
func (e PointError) Error() string {
	return fmt.Sprintf("sweep: sample %d skipped: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e PointError) Unwrap() error { return e.Err }

// Result holds the collected sweep outputs. Fields[i] corresponds to
// Values[i]; skipped samples hold NaN components and appear in Skipped in
// ascending index order.
type Result struct {
	Values  []float64
	Fields  []core.FieldVector
	Skipped []PointError
}

// Component extracts field component c (0, 1 or 2) across the sweep as a
// fresh []float64 — the Signal shape consumed by the signal package.
// Skipped samples surface as NaN.
//
// Complexity: O(Samples) time and space.
func (r Result) Component(c int) ([]float64, error) {
	if c < 0 || c > 2 {
		return nil, ErrBadComponent
	}

	out := make([]float64, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f[c]
	}

	return out, nil
}
