package dsp

import "math"

// Q15 scale factor. Q15 stores a value in [-1, 1) as a 16-bit signed integer.
const q15One = 32768

// QuantizeQ15 converts a value in [-1, 1) to Q15 fixed point, saturating at
// the representable range.
func QuantizeQ15(x float64) int16 {
	v := math.Round(x * q15One)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// DequantizeQ15 converts a Q15 fixed-point value back to a float.
func DequantizeQ15(v int16) float64 {
	return float64(v) / q15One
}

// QuantizeTapsQ15 converts filter taps to Q15 fixed point.
func QuantizeTapsQ15(taps []float64) []int16 {
	fixed := make([]int16, len(taps))
	for i, t := range taps {
		fixed[i] = QuantizeQ15(t)
	}
	return fixed
}
