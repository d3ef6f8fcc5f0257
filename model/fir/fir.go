// Package fir provides a compiled FIR lowpass filter model. It behaves the
// way synthesized filter RTL would: Q15 fixed-point taps, a sample shift
// register, and one multiply-accumulate pass per accepted sample.
package fir

import (
	"math"

	"github.com/sarchlab/vbench/model"
)

// Comp is the FIR filter model.
//
// On each rising clock edge with in_valid high, the filter shifts in_sample
// into its delay line and produces the dot product of the line with the Q15
// taps on out_sample one cycle later. out_valid mirrors in_valid with the
// same one-cycle delay.
type Comp struct {
	*model.ModelBase

	clk       *model.Port
	rst       *model.Port
	inValid   *model.Port
	inSample  *model.Port
	outValid  *model.Port
	outSample *model.Port

	clkEdge model.EdgeDetector

	taps    []int16
	samples []int32

	outValidV  uint64
	outSampleV int64
}

// Taps returns the quantized taps of the filter.
func (c *Comp) Taps() []int16 {
	return c.taps
}

// Eval settles the model. State updates on the rising edge of clk.
func (c *Comp) Eval() {
	if c.clkEdge.Rising(c.clk.Peek()) {
		c.updateState()
	}

	c.outValid.Poke(c.outValidV)
	c.outSample.PokeInt(c.outSampleV)
}

func (c *Comp) updateState() {
	if c.rst.Peek() != 0 {
		c.clearDelayLine()
		c.outValidV = 0
		c.outSampleV = 0
		return
	}

	if c.inValid.Peek() == 0 {
		c.outValidV = 0
		return
	}

	copy(c.samples[1:], c.samples)
	c.samples[0] = int32(c.inSample.PeekInt())

	c.outSampleV = c.mac()
	c.outValidV = 1
}

// mac computes the Q15 dot product of the delay line and the taps, rounded
// to nearest and saturated to 16 bits.
func (c *Comp) mac() int64 {
	acc := int64(0)
	for k, tap := range c.taps {
		acc += int64(tap) * int64(c.samples[k])
	}

	acc += 1 << 14
	acc >>= 15

	if acc > math.MaxInt16 {
		acc = math.MaxInt16
	}
	if acc < math.MinInt16 {
		acc = math.MinInt16
	}

	return acc
}

func (c *Comp) clearDelayLine() {
	for i := range c.samples {
		c.samples[i] = 0
	}
}

// Reset puts the filter back to its power-on state.
func (c *Comp) Reset() {
	c.clearDelayLine()
	c.clkEdge = model.EdgeDetector{}
	c.outValidV = 0
	c.outSampleV = 0
	c.outValid.Poke(0)
	c.outSample.Poke(0)
}
