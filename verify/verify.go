// Package verify checks compiled filter models against their golden DSP
// references.
package verify

import (
	"fmt"
	"math"

	"github.com/sarchlab/vbench/bench"
	"github.com/sarchlab/vbench/datarecording"
	"github.com/sarchlab/vbench/dsp"
	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/model/fir"
	"github.com/sarchlab/vbench/sim"
	"github.com/sarchlab/vbench/stimulus"
)

// Params configures a verification run.
type Params struct {
	Cycles     uint64
	SampleRate float64
	Cutoff     float64
	NumTaps    int
	Scale      float64

	// Tolerance is the allowed RMS error in raw sample counts. The default
	// accounts for Q15 tap quantization and output rounding.
	Tolerance float64
}

// DefaultParams returns the parameters of the standard verification run: the
// demo two-tone signal through the default FIR configuration for 500 cycles.
func DefaultParams() Params {
	return Params{
		Cycles:     500,
		SampleRate: 500,
		Cutoff:     80,
		NumTaps:    101,
		Scale:      16384,
		Tolerance:  32,
	}
}

// A Report summarizes a verification run.
type Report struct {
	Model     string
	Cycles    uint64
	Samples   int
	RMSError  float64
	MaxError  float64
	Tolerance float64
	Passed    bool
}

// String formats the report for the terminal.
func (r *Report) String() string {
	status := "FAIL"
	if r.Passed {
		status = "PASS"
	}

	return fmt.Sprintf(
		"%s: %s, %d cycles, %d samples, rms error %.3f, max error %.3f, "+
			"tolerance %.3f",
		status, r.Model, r.Cycles, r.Samples,
		r.RMSError, r.MaxError, r.Tolerance)
}

// WriteTo stores the report in a data recorder.
func (r *Report) WriteTo(recorder datarecording.DataRecorder) {
	recorder.CreateTable("verification", Report{})
	recorder.InsertData("verification", *r)
	recorder.Flush()
}

// outputCollector gathers valid output samples after each rising edge.
type outputCollector struct {
	valid   *model.Port
	data    *model.Port
	samples []int64
}

// Func collects the output sample of the cycle if it is valid.
func (c *outputCollector) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEdge {
		return
	}

	info, ok := ctx.Item.(sim.EdgeInfo)
	if !ok || !info.Rising {
		return
	}

	if c.valid.Peek() != 0 {
		c.samples = append(c.samples, c.data.PeekInt())
	}
}

// FIR drives the FIR filter model with the demo two-tone signal and compares
// its output with the floating-point golden filter.
func FIR(p Params) (*Report, error) {
	m := fir.MakeBuilder().
		WithNumTaps(p.NumTaps).
		WithSampleRate(p.SampleRate).
		WithCutoff(p.Cutoff).
		Build("FIR")

	source := stimulus.NewSine(p.SampleRate,
		stimulus.Tone{Amplitude: 1.0, Freq: 50},
		stimulus.Tone{Amplitude: 0.5, Freq: 120},
	)

	b := bench.MakeBuilder().
		WithModel(m).
		WithCycles(p.Cycles).
		WithFreq(sim.Freq(p.SampleRate) * sim.Hz).
		WithoutDataRecording().
		WithStimulus(source, "in_sample", "in_valid", p.Scale).
		Build()

	collector := &outputCollector{
		valid: m.Port("out_valid"),
		data:  m.Port("out_sample"),
	}
	b.GetDriver().AcceptHook(collector)

	err := b.Run()
	if err != nil {
		return nil, err
	}

	golden := goldenFIR(source, p)

	report := compare(collector.samples, golden, p)
	report.Model = m.Name()
	report.Cycles = p.Cycles

	return report, nil
}

// goldenFIR filters the quantized stimulus with the floating-point taps, so
// that the only differences left are tap quantization and output rounding.
func goldenFIR(source stimulus.Source, p Params) []float64 {
	signal := make([]float64, p.Cycles)
	for i := range signal {
		signal[i] = math.Round(source.Sample(uint64(i)) * p.Scale)
	}

	taps := dsp.Firwin(p.NumTaps, p.Cutoff/(p.SampleRate/2))

	return dsp.LFilter(taps, signal)
}

func compare(got []int64, want []float64, p Params) *Report {
	n := len(got)
	if len(want) < n {
		n = len(want)
	}

	sumSq := 0.0
	maxErr := 0.0
	for i := 0; i < n; i++ {
		err := math.Abs(float64(got[i]) - want[i])
		sumSq += err * err
		if err > maxErr {
			maxErr = err
		}
	}

	rms := 0.0
	if n > 0 {
		rms = math.Sqrt(sumSq / float64(n))
	}

	return &Report{
		Samples:   n,
		RMSError:  rms,
		MaxError:  maxErr,
		Tolerance: p.Tolerance,
		Passed:    rms <= p.Tolerance && n > 0,
	}
}
