// SPDX-License-Identifier: MIT

package signal

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultRNGSeed is the fixed seed used when callers pass a nil source.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed uint64 = 1

// IsUndefined reports whether a diagnostic value is the "undefined"
// sentinel returned for degenerate inputs.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Amplitude returns the peak-to-peak amplitude max(s) − min(s).
// An empty signal is undefined.
//
// Complexity: O(n).
func Amplitude(s []float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}

	return floats.Max(s) - floats.Min(s)
}

// THD returns the total harmonic distortion of s:
// sqrt(harmonic power / fundamental power) over the one-sided magnitude
// spectrum with the DC term discarded and magnitudes normalized by 2/N.
// The fundamental is the largest non-DC bin (see the package doc for the
// limits of that shortcut).
//
// Undefined for fewer than 2 samples or zero fundamental power.
//
// Complexity: O(n log n).
func THD(s []float64) float64 {
	n := len(s)
	if n < 2 {
		return math.NaN()
	}

	coeffs := fourier.NewFFT(n).Coefficients(nil, s)

	var (
		total       float64 // Σ magnitude² across non-DC bins
		fundamental float64 // largest single-bin magnitude²
		norm        = 2 / float64(n)
	)
	for _, c := range coeffs[1:] { // coeffs[0] is DC
		mag := norm * math.Hypot(real(c), imag(c))
		power := mag * mag
		total += power
		if power > fundamental {
			fundamental = power
		}
	}
	if fundamental == 0 {
		return math.NaN()
	}

	return math.Sqrt((total - fundamental) / fundamental)
}

// SNR injects zero-mean Gaussian noise of standard deviation noiseStd into
// a copy of s and returns the ratio of mean-square signal power to
// mean-square sampled-noise power, in decibels, along with the noisy copy
// (for clean-vs-noisy visualization). The input is never mutated.
//
// src selects the noise stream; nil uses the fixed default seed. Undefined
// (NaN ratio, nil slice) when the signal is empty, noiseStd ≤ 0 (no noise
// model ⇒ no principled signal/noise separation) or the sampled noise power
// is exactly zero.
//
// Complexity: O(n).
func SNR(s []float64, noiseStd float64, src rand.Source) (float64, []float64) {
	if len(s) == 0 || noiseStd <= 0 {
		return math.NaN(), nil
	}
	if src == nil {
		src = rand.NewPCG(defaultRNGSeed, defaultRNGSeed)
	}

	normal := distuv.Normal{Mu: 0, Sigma: noiseStd, Src: src}

	var (
		noisy      = make([]float64, len(s))
		noisePower float64
	)
	for i, v := range s {
		draw := normal.Rand()
		noisy[i] = v + draw
		noisePower += draw * draw
	}
	noisePower /= float64(len(s))
	if noisePower == 0 {
		return math.NaN(), noisy
	}

	signalPower := floats.Dot(s, s) / float64(len(s))

	return 10 * math.Log10(signalPower/noisePower), noisy
}
