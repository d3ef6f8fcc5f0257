// Package stimulus generates the input waveforms that a bench drives into a
// model, one sample per clock cycle.
package stimulus

import "math"

// A Source produces one sample per bench cycle.
type Source interface {
	Sample(cycle uint64) float64
}

// A Tone is one sinusoidal component of a composite signal.
type Tone struct {
	Amplitude float64
	Freq      float64
}

// Sine is a sum of weighted sinusoids sampled at a fixed rate.
type Sine struct {
	sampleRate float64
	tones      []Tone
}

// NewSine creates a composite sine source.
func NewSine(sampleRate float64, tones ...Tone) *Sine {
	if sampleRate <= 0 {
		panic("sample rate must be positive")
	}

	return &Sine{
		sampleRate: sampleRate,
		tones:      tones,
	}
}

// NewDemoSignal creates the default two-tone stimulus: sin(2*pi*50*t) +
// 0.5*sin(2*pi*120*t) at a 500 Hz sample rate.
func NewDemoSignal() *Sine {
	return NewSine(500,
		Tone{Amplitude: 1.0, Freq: 50},
		Tone{Amplitude: 0.5, Freq: 120},
	)
}

// Sample returns the signal value for the given cycle.
func (s *Sine) Sample(cycle uint64) float64 {
	t := float64(cycle) / s.sampleRate

	v := 0.0
	for _, tone := range s.tones {
		v += tone.Amplitude * math.Sin(2*math.Pi*tone.Freq*t)
	}

	return v
}

// Step is a source that jumps from 0 to a level at a given cycle.
type Step struct {
	At    uint64
	Level float64
}

// Sample returns the signal value for the given cycle.
func (s Step) Sample(cycle uint64) float64 {
	if cycle < s.At {
		return 0
	}
	return s.Level
}

// Impulse is a source that is non-zero for exactly one cycle.
type Impulse struct {
	At    uint64
	Level float64
}

// Sample returns the signal value for the given cycle.
func (s Impulse) Sample(cycle uint64) float64 {
	if cycle == s.At {
		return s.Level
	}
	return 0
}
