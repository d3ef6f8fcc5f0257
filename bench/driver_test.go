package bench

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vbench/model"
	"github.com/sarchlab/vbench/model/counter"
	"github.com/sarchlab/vbench/sim"
)

// edgeRecorder collects the edges a driver reports on the after-edge hook.
type edgeRecorder struct {
	edges []sim.EdgeInfo
}

func (r *edgeRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterEdge {
		return
	}

	r.edges = append(r.edges, ctx.Item.(sim.EdgeInfo))
}

type clocklessModel struct {
	*model.ModelBase
}

func (m *clocklessModel) Eval()  {}
func (m *clocklessModel) Reset() {}

var _ = Describe("ClockDriver", func() {
	var (
		engine   *sim.SerialEngine
		m        *counter.Comp
		driver   *ClockDriver
		recorder *edgeRecorder
	)

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		m = counter.New("Counter")
		m.Port("en").Poke(1)

		driver = NewClockDriver("Driver", engine, 500*sim.Hz, m, 10)

		recorder = &edgeRecorder{}
		driver.AcceptHook(recorder)
	})

	It("should run the configured number of cycles", func() {
		driver.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(driver.CycleCount()).To(Equal(uint64(10)))
		Expect(driver.EvalCount()).To(Equal(uint64(20)))
		Expect(m.Port("count").Peek()).To(Equal(uint64(10)))
	})

	It("should alternate rising and falling edges, rising first", func() {
		driver.Start()
		Expect(engine.Run()).To(Succeed())

		Expect(recorder.edges).To(HaveLen(20))
		for i, edge := range recorder.edges {
			Expect(edge.Rising).To(Equal(i%2 == 0))
			Expect(edge.Cycle).To(Equal(uint64(i / 2)))
		}
	})

	It("should place falling edges half a period after rising edges", func() {
		driver.Start()
		Expect(engine.Run()).To(Succeed())

		period := (500 * sim.Hz).Period()
		for i := 0; i < 20; i += 2 {
			rising := recorder.edges[i].Time
			falling := recorder.edges[i+1].Time
			Expect(falling - rising).To(
				BeNumerically("~", period/2, 1e-12))
		}
	})

	It("should refuse to start twice", func() {
		driver.Start()
		Expect(func() { driver.Start() }).To(Panic())
	})

	It("should refuse models without a clk port", func() {
		Expect(func() {
			NewClockDriver("Driver", engine, 500*sim.Hz,
				&clocklessModel{ModelBase: model.NewModelBase("Top")}, 10)
		}).To(Panic())
	})

	It("should refuse zero cycles", func() {
		Expect(func() {
			NewClockDriver("Driver", engine, 500*sim.Hz, m, 0)
		}).To(Panic())
	})
})
