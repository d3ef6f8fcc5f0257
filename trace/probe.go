// Package trace records per-cycle waveforms of selected model signals.
// Probes attach to the clock driver through the hook system and emit one row
// per signal per cycle after each rising edge.
package trace

import (
	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/sim"
)

// A Row is one recorded signal sample.
type Row struct {
	Cycle  uint64
	Time   float64
	Signal string
	Value  int64
}

// A RowWriter stores waveform rows.
type RowWriter interface {
	WriteRow(row Row)

	// Flush writes all the buffered rows to the backend.
	Flush()
}

// A Probe samples a set of ports after each rising clock edge.
type Probe struct {
	ports   []*model.Port
	writers []RowWriter
}

// NewProbe creates a probe over the given ports.
func NewProbe(ports ...*model.Port) *Probe {
	if len(ports) == 0 {
		panic("probe requires at least one port")
	}

	return &Probe{ports: ports}
}

// AddWriter attaches a writer that receives the sampled rows.
func (p *Probe) AddWriter(w RowWriter) {
	p.writers = append(p.writers, w)
}

// Func samples the probed ports. It fires on the after-edge hook position of
// rising edges and ignores everything else.
func (p *Probe) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEdge {
		return
	}

	info, ok := ctx.Item.(sim.EdgeInfo)
	if !ok || !info.Rising {
		return
	}

	for _, port := range p.ports {
		row := Row{
			Cycle:  info.Cycle,
			Time:   float64(info.Time),
			Signal: port.Name(),
			Value:  port.PeekInt(),
		}

		for _, w := range p.writers {
			w.WriteRow(row)
		}
	}
}

// Flush flushes all attached writers.
func (p *Probe) Flush() {
	for _, w := range p.writers {
		w.Flush()
	}
}
