package sim

import (
	"bytes"
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"
)

var _ = Describe("EventLogger", func() {
	var (
		mockCtrl *gomock.Controller
		buf      *bytes.Buffer
		logger   *EventLogger
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		buf = &bytes.Buffer{}
		logger = NewEventLogger(log.New(buf, "", 0))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should log events before they are handled", func() {
		handler := NewMockHandler(mockCtrl)
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(0.5)).AnyTimes()
		evt.EXPECT().Handler().Return(handler).AnyTimes()

		logger.Func(HookCtx{Pos: HookPosBeforeEvent, Item: evt})

		Expect(buf.String()).To(ContainSubstring("0.5000000000"))
	})

	It("should ignore other hook positions", func() {
		evt := NewMockEvent(mockCtrl)

		logger.Func(HookCtx{Pos: HookPosAfterEvent, Item: evt})

		Expect(buf.Len()).To(Equal(0))
	})

	It("should name the handler when it is named", func() {
		evt := NewMockEvent(mockCtrl)
		evt.EXPECT().Time().Return(VTimeInSec(1.0)).AnyTimes()
		evt.EXPECT().Handler().Return(namedHandler{}).AnyTimes()

		logger.Func(HookCtx{Pos: HookPosBeforeEvent, Item: evt})

		Expect(strings.Contains(buf.String(), "DUT.ClockDriver")).
			To(BeTrue())
	})
})

type namedHandler struct{}

func (h namedHandler) Name() string { return "DUT.ClockDriver" }

func (h namedHandler) Handle(e Event) error { return nil }
