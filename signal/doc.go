// SPDX-License-Identifier: MIT

// Package signal computes spectral diagnostics for a sweep-sampled field
// signal: peak-to-peak amplitude, total harmonic distortion (THD) and
// signal-to-noise ratio (SNR) under explicitly injected Gaussian noise.
//
// A Signal here is a plain []float64 — one field component sampled along a
// sweep believed periodic over the swept coordinate (typically the azimuth).
// Diagnostics never mutate their input.
//
// # Undefined results
//
// Degenerate inputs (too-short signal, zero fundamental power, missing
// noise model) yield the NaN "undefined" sentinel — never a panic, never a
// silently wrong number. Test with IsUndefined, not ==.
//
// # Fundamental identification
//
// THD takes the dominant non-DC spectral bin as the fundamental. This is an
// approximation: if a harmonic happens to carry more power than the true
// fundamental, THD is computed against the wrong reference. For magnet
// sweeps whose first harmonic dominates (the intended use) the shortcut is
// exact.
//
// # Determinism
//
// SNR draws its noise from a caller-supplied rand source; nil selects a
// fixed default seed, so results are reproducible by default and there is
// no package-level random state.
package signal
