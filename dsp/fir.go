// Package dsp holds the golden filter models that bench runs are checked
// against. The implementations follow the usual textbook definitions so that
// their output matches common scientific computing packages.
package dsp

import "math"

// Firwin designs a lowpass FIR filter with the windowed-sinc method using a
// Hamming window. The cutoff frequency is normalized to the Nyquist frequency
// (0 < cutoff < 1). The taps are scaled for unity gain at DC.
func Firwin(numtaps int, cutoff float64) []float64 {
	if numtaps < 1 {
		panic("numtaps must be positive")
	}
	if cutoff <= 0 || cutoff >= 1 {
		panic("cutoff must be in (0, 1)")
	}

	taps := make([]float64, numtaps)
	center := float64(numtaps-1) / 2.0

	sum := 0.0
	for n := 0; n < numtaps; n++ {
		x := float64(n) - center
		taps[n] = cutoff * sinc(cutoff*x) * hamming(n, numtaps)
		sum += taps[n]
	}

	// Unity DC gain.
	for n := range taps {
		taps[n] /= sum
	}

	return taps
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

func hamming(n, numtaps int) float64 {
	if numtaps == 1 {
		return 1
	}
	return 0.54 - 0.46*math.Cos(2*math.Pi*float64(n)/float64(numtaps-1))
}

// LFilter applies an FIR filter in direct form. Samples before the start of
// the signal are treated as zero, so the output carries the same group delay
// as the filter.
func LFilter(taps, signal []float64) []float64 {
	filtered := make([]float64, len(signal))

	for n := range signal {
		acc := 0.0
		for k, tap := range taps {
			if n-k < 0 {
				break
			}
			acc += tap * signal[n-k]
		}
		filtered[n] = acc
	}

	return filtered
}

// FIRLowpass filters a signal with a Hamming-windowed-sinc lowpass filter.
// fs is the sample rate and cutoff the cutoff frequency, both in Hz. It
// returns the filtered signal and the filter taps.
func FIRLowpass(
	signal []float64,
	fs, cutoff float64,
	numtaps int,
) ([]float64, []float64) {
	nyq := fs / 2.0
	taps := Firwin(numtaps, cutoff/nyq)
	filtered := LFilter(taps, signal)

	return filtered, taps
}
