package bench

import (
	"fmt"

	"github.com/sarchlab/vbench/datarecording"
	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/monitoring"
	"github.com/sarchlab/vbench/sim"
	"github.com/sarchlab/vbench/trace"
)

// A Bench owns everything needed to drive one model for a fixed number of
// cycles: the engine, the clock driver, probes, the data recorder, and the
// optional monitor.
type Bench struct {
	engine sim.Engine
	driver *ClockDriver
	model  model.Model

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	probes       []*trace.Probe
}

// Run drives the model to completion.
func (b *Bench) Run() error {
	b.driver.Start()

	err := b.engine.Run()
	if err != nil {
		return err
	}

	b.engine.Finished()

	for _, p := range b.probes {
		p.Flush()
	}

	fmt.Println("Sim done")

	return nil
}

// GetEngine returns the engine used in the bench.
func (b *Bench) GetEngine() sim.Engine {
	return b.engine
}

// GetDriver returns the clock driver of the bench.
func (b *Bench) GetDriver() *ClockDriver {
	return b.driver
}

// GetModel returns the model under test.
func (b *Bench) GetModel() model.Model {
	return b.model
}

// GetDataRecorder returns the data recorder used in the bench.
func (b *Bench) GetDataRecorder() datarecording.DataRecorder {
	return b.dataRecorder
}

// GetMonitor returns the monitor used in the bench. It is nil when
// monitoring is disabled.
func (b *Bench) GetMonitor() *monitoring.Monitor {
	return b.monitor
}

// Terminate releases the model and closes the recorder.
func (b *Bench) Terminate() {
	if b.dataRecorder != nil {
		b.dataRecorder.Close()
	}
}

// progressHook moves a monitor progress bar forward as cycles complete.
type progressHook struct {
	bar *monitoring.ProgressBar
}

// Func advances the bar after each falling edge.
func (h progressHook) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEdge {
		return
	}

	info, ok := ctx.Item.(sim.EdgeInfo)
	if !ok || info.Rising {
		return
	}

	h.bar.IncrementFinished(1)
}
