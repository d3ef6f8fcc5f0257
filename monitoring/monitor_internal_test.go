package monitoring

import (
	"net/http/httptest"
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vbench/model"
)

type sampleStruct struct {
	field1 int
	field2 string
	field3 *sampleStruct
	field4 []sampleStruct
}

type sampleModel struct {
	*model.ModelBase
}

func (m *sampleModel) Eval()  {}
func (m *sampleModel) Reset() {}

func newSampleModel() *sampleModel {
	m := &sampleModel{
		ModelBase: model.NewModelBase("Top"),
	}

	m.AddPort("clk", 1, model.In)
	m.AddPort("count", 8, model.Out)

	return m
}

type fakeClock struct {
	cycle, total uint64
}

func (c fakeClock) CycleCount() uint64 {
	return c.cycle
}

func (c fakeClock) TotalCycles() uint64 {
	return c.total
}

var _ = Describe("Monitor", func() {
	var (
		m *Monitor
	)

	BeforeEach(func() {
		m = &Monitor{}
	})

	It("should register models", func() {
		md := newSampleModel()
		m.RegisterModel(md)

		Expect(m.models).To(HaveLen(1))
	})

	It("should walk int fields", func() {
		s := &sampleStruct{
			field1: 1,
		}

		elem, err := m.walkFields(s, "field1")

		Expect(err).To(BeNil())
		Expect(elem.Kind()).To(Equal(reflect.Int))
		Expect(elem.Type().Name()).To(Equal("int"))
		Expect(elem.Int()).To(Equal(int64(1)))
	})

	It("should report cycle progress", func() {
		m.RegisterClock(fakeClock{cycle: 4, total: 10})

		rec := httptest.NewRecorder()
		m.cycle(rec, nil)

		Expect(rec.Body.String()).To(Equal(`{"cycle":4,"total":10}`))
	})

	It("should report 404 when no clock registered", func() {
		rec := httptest.NewRecorder()
		m.cycle(rec, nil)

		Expect(rec.Code).To(Equal(404))
	})

	It("should list signals", func() {
		md := newSampleModel()
		md.Port("count").Poke(42)
		m.RegisterModel(md)

		rec := httptest.NewRecorder()
		m.listSignals(rec, nil)

		Expect(rec.Body.String()).To(ContainSubstring(`"signal":"count"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"value":42`))
	})

	It("should track progress bars", func() {
		bar := m.CreateProgressBar("cycles", 10)
		bar.IncrementFinished(3)

		Expect(m.progressBars).To(HaveLen(1))
		Expect(bar.Finished).To(Equal(uint64(3)))

		m.CompleteProgressBar(bar)
		Expect(m.progressBars).To(BeEmpty())
	})
})
