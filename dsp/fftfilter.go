package dsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterKind selects the pass band of the FFT filter.
type FilterKind string

// Defines the possible filter kinds.
const (
	Lowpass  FilterKind = "lowpass"
	Highpass FilterKind = "highpass"
)

// FFTFilter filters a signal by zeroing frequency bins. For a lowpass filter,
// all bins with |freq| above the cutoff are cleared; for a highpass filter,
// all bins with |freq| below the cutoff. fs is the sample rate and cutoff the
// cutoff frequency, both in Hz.
func FFTFilter(
	signal []float64,
	fs, cutoff float64,
	kind FilterKind,
) ([]float64, error) {
	if kind != Lowpass && kind != Highpass {
		return nil, fmt.Errorf("unknown filter kind %q", kind)
	}

	n := len(signal)
	if n == 0 {
		return nil, nil
	}

	in := make([]complex128, n)
	for i, s := range signal {
		in[i] = complex(s, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	spectrum := fft.Coefficients(nil, in)

	freqs := FFTFreq(n, 1/fs)
	for i := range spectrum {
		f := math.Abs(freqs[i])
		if kind == Lowpass && f > cutoff {
			spectrum[i] = 0
		}
		if kind == Highpass && f < cutoff {
			spectrum[i] = 0
		}
	}

	seq := fft.Sequence(nil, spectrum)

	filtered := make([]float64, n)
	for i, c := range seq {
		filtered[i] = real(c) / float64(n)
	}

	return filtered, nil
}

// FFTFreq returns the sample frequencies of an n-point FFT with sample
// spacing d, ordered the way FFT implementations lay out their bins:
// non-negative frequencies first, then the negative ones.
func FFTFreq(n int, d float64) []float64 {
	freqs := make([]float64, n)
	step := 1.0 / (float64(n) * d)

	half := (n + 1) / 2
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * step
	}
	for i := half; i < n; i++ {
		freqs[i] = float64(i-n) * step
	}

	return freqs
}
