// Package bfield is your in-memory toolbench for evaluating the static
// magnetic field of permanent magnets — from the Green's-function kernel
// to closed-form bar-magnet formulas and spectral sweep diagnostics.
//
// 🚀 What is bfield?
//
//	A deterministic, side-effect-free library that brings together:
//		• Core primitives: observation points, field vectors, magnet geometries
//		• Kernel: the inverse-distance Green's function with a singularity guard
//		• Quadrature: adaptive Simpson (error-controlled) & fixed-grid trapezoid
//		• Disc solver: triple-integral field of a diametrically magnetized disc
//		• Bar solver: exact face-summation field of a rectangular prism
//		• Sweeps: data-parallel evaluation over radius, angle, height, translation
//		• Diagnostics: peak-to-peak amplitude, THD and SNR of sweep signals
//
// ✨ Why choose bfield?
//
//   - Deterministic – explicit seeds, no global state, same inputs ⇒ same field
//   - Honest numerics – degraded quadrature results are flagged, never hidden
//   - Pure Go – no cgo; numerics ride on gonum, tests on testify
//   - Composable – plain float64 slices in and out, no framework types
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/   — observation points, field vectors, geometries & sentinel errors
//	kernel/ — inverse-distance Green's function (cylindrical form)
//	quad/   — triple-integral quadrature strategies over reified bounds
//	disc/   — disc-magnet volume solver (B_r, B_φ, B_z)
//	bar/    — bar-magnet closed-form solver (B_x, B_y, B_z)
//	sweep/  — parameter-sweep driver with bounded parallelism
//	signal/ — amplitude, harmonic distortion and signal-to-noise diagnostics
//
// Quick ASCII example:
//
//	       z ↑      ● observation point (r, φ, z)
//	         │     ╱
//	    ┌────┴────┐
//	    │  disc   │  → B = (B_r, B_φ, B_z) in Tesla
//	    └────┬────┘
//	         │
//
// Dive into the per-package docs for formulas, tolerances and edge-case
// policies; every solver documents its approximations instead of hiding them.
//
//	go get github.com/katalvlaran/bfield
package bfield
