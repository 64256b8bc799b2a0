// Package sweep drives a field solver over a parameter grid and collects
// the result vectors that feed the signal diagnostics.
//
// A Spec varies exactly one parameter — the observation radius, azimuth or
// height, or the magnet translation — between Start and Stop over Samples
// evenly spaced values, holding the Base coordinates fixed. Run evaluates a
// caller-supplied Evaluator at every sample, data-parallel across a bounded
// worker pool: every evaluation is a pure function of its inputs, so points
// are independent and order of execution is irrelevant.
//
// Failure policy (one bad point must not kill a sweep): an Evaluator error
// at one sample is recorded in Result.Skipped with its index, the sample's
// field is set to NaN, and the sweep continues. Only context cancellation
// aborts the whole run.
//
// Result.Component extracts one field component across the sweep as a plain
// []float64 — the Signal consumed by package signal. No framework types
// cross the boundary, so plotting or file-comparison layers can be swapped
// freely.
package sweep
