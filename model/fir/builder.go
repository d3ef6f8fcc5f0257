package fir

import (
	"github.com/sarchlab/vbench/dsp"
	"github.com/sarchlab/vbench/model"
)

func init() {
	model.Register("fir", func(name string) model.Model {
		return MakeBuilder().Build(name)
	})
}

// Builder can build FIR filter models.
type Builder struct {
	numTaps    int
	sampleRate float64
	cutoff     float64
	taps       []float64
}

// MakeBuilder returns a builder with the default filter configuration: a
// 101-tap lowpass with an 80 Hz cutoff at a 500 Hz sample rate.
func MakeBuilder() Builder {
	return Builder{
		numTaps:    101,
		sampleRate: 500,
		cutoff:     80,
	}
}

// WithNumTaps sets the number of filter taps.
func (b Builder) WithNumTaps(numTaps int) Builder {
	b.numTaps = numTaps
	return b
}

// WithSampleRate sets the sample rate in Hz.
func (b Builder) WithSampleRate(sampleRate float64) Builder {
	b.sampleRate = sampleRate
	return b
}

// WithCutoff sets the cutoff frequency in Hz.
func (b Builder) WithCutoff(cutoff float64) Builder {
	b.cutoff = cutoff
	return b
}

// WithTaps sets the filter taps directly, bypassing the windowed-sinc design.
func (b Builder) WithTaps(taps []float64) Builder {
	b.taps = taps
	return b
}

// Build creates the FIR filter model.
func (b Builder) Build(name string) *Comp {
	taps := b.taps
	if taps == nil {
		taps = dsp.Firwin(b.numTaps, b.cutoff/(b.sampleRate/2))
	}

	c := &Comp{
		ModelBase: model.NewModelBase(name),
		taps:      dsp.QuantizeTapsQ15(taps),
		samples:   make([]int32, len(taps)),
	}

	c.clk = c.AddPort("clk", 1, model.In)
	c.rst = c.AddPort("rst", 1, model.In)
	c.inValid = c.AddPort("in_valid", 1, model.In)
	c.inSample = c.AddPort("in_sample", 16, model.In)
	c.outValid = c.AddPort("out_valid", 1, model.Out)
	c.outSample = c.AddPort("out_sample", 16, model.Out)

	return c
}
