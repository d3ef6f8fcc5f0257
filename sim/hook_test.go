package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	ctxs []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

var _ = Describe("HookableBase", func() {
	It("should invoke all registered hooks", func() {
		hookable := NewHookableBase()
		hook1 := &recordingHook{}
		hook2 := &recordingHook{}
		hookable.AcceptHook(hook1)
		hookable.AcceptHook(hook2)

		ctx := HookCtx{Pos: HookPosBeforeEvent}
		hookable.InvokeHook(ctx)

		Expect(hook1.ctxs).To(HaveLen(1))
		Expect(hook2.ctxs).To(HaveLen(1))
		Expect(hook1.ctxs[0].Pos).To(BeIdenticalTo(HookPosBeforeEvent))
	})
})
