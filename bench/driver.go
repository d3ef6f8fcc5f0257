// Package bench assembles compiled hardware models, stimulus, and probes
// into a runnable clock-driven testbench.
package bench

import (
	"log"

	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/sim"
	"github.com/sarchlab/vbench/stimulus"
)

// An EdgeEvent drives one clock edge into the model.
type EdgeEvent struct {
	sim.EventBase

	Rising bool
}

// MakeEdgeEvent creates a new EdgeEvent.
func MakeEdgeEvent(
	handler sim.Handler,
	time sim.VTimeInSec,
	rising bool,
) EdgeEvent {
	evt := EdgeEvent{}
	evt.EventBase = *sim.NewEventBase(time, handler)
	evt.Rising = rising

	return evt
}

// A ClockDriver toggles the clock of one model. Starting from a low clock, it
// alternates rising and falling edge events on the engine and evaluates the
// model after driving each edge, for a fixed number of cycles.
type ClockDriver struct {
	sim.HookableBase

	name   string
	engine sim.Engine
	freq   sim.Freq

	model    model.Model
	clk      *model.Port
	bindings []*stimulus.Binding

	totalCycles uint64
	cycle       uint64
	evalCount   uint64
	started     bool
}

// NewClockDriver creates a clock driver for the given model. The model must
// have a 1-bit input port named "clk".
func NewClockDriver(
	name string,
	engine sim.Engine,
	freq sim.Freq,
	m model.Model,
	cycles uint64,
) *ClockDriver {
	if cycles == 0 {
		log.Panic("cycle count cannot be 0")
	}

	clk := m.Port("clk")
	if clk == nil {
		log.Panicf("model %s has no clk port", m.Name())
	}

	d := &ClockDriver{
		name:        name,
		engine:      engine,
		freq:        freq,
		model:       m,
		clk:         clk,
		totalCycles: cycles,
	}

	return d
}

// Name returns the name of the driver.
func (d *ClockDriver) Name() string {
	return d.name
}

// AddBinding attaches a stimulus binding. Bindings are applied before each
// rising edge, in registration order.
func (d *ClockDriver) AddBinding(b *stimulus.Binding) {
	d.bindings = append(d.bindings, b)
}

// CycleCount returns the number of completed cycles.
func (d *ClockDriver) CycleCount() uint64 {
	return d.cycle
}

// TotalCycles returns the number of cycles the driver will run.
func (d *ClockDriver) TotalCycles() uint64 {
	return d.totalCycles
}

// EvalCount returns the number of times the model has been evaluated.
func (d *ClockDriver) EvalCount() uint64 {
	return d.evalCount
}

// Start begins the clock. The clock starts low and the first rising edge is
// scheduled at the current engine time.
func (d *ClockDriver) Start() {
	if d.started {
		log.Panic("clock driver already started")
	}
	d.started = true

	d.clk.Poke(0)
	d.model.Reset()

	now := d.engine.CurrentTime()
	d.engine.Schedule(MakeEdgeEvent(d, d.freq.ThisTick(now), true))
}

// Handle drives one edge into the model.
func (d *ClockDriver) Handle(e sim.Event) error {
	evt := e.(EdgeEvent)

	if evt.Rising {
		d.handleRisingEdge(evt)
	} else {
		d.handleFallingEdge(evt)
	}

	return nil
}

func (d *ClockDriver) handleRisingEdge(evt EdgeEvent) {
	info := sim.EdgeInfo{Cycle: d.cycle, Rising: true, Time: evt.Time()}
	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    sim.HookPosBeforeEdge,
		Item:   info,
	})

	for _, b := range d.bindings {
		b.Apply(d.cycle)
	}

	d.clk.Poke(1)
	d.model.Eval()
	d.evalCount++

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    sim.HookPosAfterEdge,
		Item:   info,
	})

	d.engine.Schedule(MakeEdgeEvent(d, d.freq.HalfTick(evt.Time()), false))
}

func (d *ClockDriver) handleFallingEdge(evt EdgeEvent) {
	info := sim.EdgeInfo{Cycle: d.cycle, Rising: false, Time: evt.Time()}
	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    sim.HookPosBeforeEdge,
		Item:   info,
	})

	d.clk.Poke(0)
	d.model.Eval()
	d.evalCount++

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    sim.HookPosAfterEdge,
		Item:   info,
	})

	d.cycle++
	if d.cycle < d.totalCycles {
		d.engine.Schedule(
			MakeEdgeEvent(d, d.freq.NextTick(evt.Time()), true))
	}
}
