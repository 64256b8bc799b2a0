package signal_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/bfield/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sine samples amplitude·sin(2π·cycles·i/n) + offset over n points.
func sine(n, cycles int, amplitude, offset float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = amplitude*math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(n)) + offset
	}

	return s
}

// TestAmplitude_PeakToPeak verifies max−min on a biased sine and the
// undefined sentinel on an empty signal.
func TestAmplitude_PeakToPeak(t *testing.T) {
	s := sine(200, 2, 1.5, 10)
	assert.InDelta(t, 3.0, signal.Amplitude(s), 1e-3, "peak-to-peak of a ±1.5 sine")

	assert.True(t, signal.IsUndefined(signal.Amplitude(nil)), "empty signal is undefined")
}

// TestTHD_PureSine is the round-trip property: a pure sine sampled well
// above 20 points per period must measure THD within 1e-3 of zero, and the
// DC offset must not leak into the spectrum.
func TestTHD_PureSine(t *testing.T) {
	assert.InDelta(t, 0.0, signal.THD(sine(200, 2, 1, 0)), 1e-3)

	// A large DC offset is discarded before normalization.
	assert.InDelta(t, 0.0, signal.THD(sine(200, 2, 1, 50)), 1e-3)
}

// TestTHD_KnownDistortion verifies the ratio on a sine plus a single
// harmonic of known relative amplitude: THD = a₂/a₁.
func TestTHD_KnownDistortion(t *testing.T) {
	const n, ratio = 400, 0.1
	s := make([]float64, n)
	for i := range s {
		x := 2 * math.Pi * float64(i) / float64(n)
		s[i] = math.Sin(3*x) + ratio*math.Sin(9*x)
	}

	assert.InDelta(t, ratio, signal.THD(s), 1e-6, "one -20 dB harmonic ⇒ THD 0.1")
}

// TestTHD_UndefinedInputs covers every THD sentinel case.
func TestTHD_UndefinedInputs(t *testing.T) {
	assert.True(t, signal.IsUndefined(signal.THD(nil)), "empty signal")
	assert.True(t, signal.IsUndefined(signal.THD([]float64{1})), "single sample")
	assert.True(t, signal.IsUndefined(signal.THD(make([]float64, 64))), "all-zero signal has no fundamental")
	assert.True(t, signal.IsUndefined(signal.THD([]float64{3, 3, 3, 3})), "pure DC has no fundamental")
}

// TestSNR_Deterministic verifies the nil-source policy: two calls without a
// source draw the identical noise stream.
func TestSNR_Deterministic(t *testing.T) {
	s := sine(128, 1, 1, 0)

	snrA, noisyA := signal.SNR(s, 0.1, nil)
	snrB, noisyB := signal.SNR(s, 0.1, nil)
	require.False(t, signal.IsUndefined(snrA))
	assert.Equal(t, snrA, snrB, "nil source must be reproducible")
	assert.Equal(t, noisyA, noisyB)
}

// TestSNR_Monotonicity verifies that increasing the injected noise standard
// deviation strictly decreases the reported SNR. The same seed is used for
// every level, so the underlying standard-normal draws are identical and
// only the scale differs.
func TestSNR_Monotonicity(t *testing.T) {
	s := sine(256, 4, 1, 0)

	prev := math.Inf(1)
	for _, std := range []float64{0.01, 0.05, 0.1, 0.5, 1, 5} {
		snr, noisy := signal.SNR(s, std, rand.NewPCG(7, 7))
		require.False(t, signal.IsUndefined(snr), "std=%v", std)
		require.Len(t, noisy, len(s))
		assert.Less(t, snr, prev, "larger noise must lower SNR (std=%v)", std)
		prev = snr
	}
}

// TestSNR_InputUntouched verifies the no-mutation contract and that the
// noisy copy actually differs from the input.
func TestSNR_InputUntouched(t *testing.T) {
	s := sine(64, 1, 1, 0)
	orig := append([]float64(nil), s...)

	_, noisy := signal.SNR(s, 0.2, rand.NewPCG(1, 2))
	assert.Equal(t, orig, s, "input signal must not be mutated")
	assert.NotEqual(t, orig, noisy, "noise must actually be injected")
}

// TestSNR_UndefinedInputs covers the SNR sentinel cases: no noise model,
// negative noise, empty signal.
func TestSNR_UndefinedInputs(t *testing.T) {
	s := sine(64, 1, 1, 0)

	snr, noisy := signal.SNR(s, 0, nil)
	assert.True(t, signal.IsUndefined(snr), "noiseStd=0 carries no noise model")
	assert.Nil(t, noisy)

	snr, _ = signal.SNR(s, -1, nil)
	assert.True(t, signal.IsUndefined(snr))

	snr, _ = signal.SNR(nil, 0.1, nil)
	assert.True(t, signal.IsUndefined(snr))
}

// TestSNR_Ballpark sanity-checks the decibel scale: unit-power sine with
// σ=1 noise sits near 0 dB, σ=0.1 near +20 dB.
func TestSNR_Ballpark(t *testing.T) {
	s := sine(4096, 8, math.Sqrt2, 0) // mean-square power 1

	snr, _ := signal.SNR(s, 1, rand.NewPCG(3, 3))
	assert.InDelta(t, 0, snr, 1.0, "unit signal vs unit noise ≈ 0 dB")

	snr, _ = signal.SNR(s, 0.1, rand.NewPCG(3, 3))
	assert.InDelta(t, 20, snr, 1.0, "10× smaller noise ≈ +20 dB")
}
