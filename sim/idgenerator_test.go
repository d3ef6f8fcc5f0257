package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should generate sequential IDs in order", func() {
		g := &sequentialIDGenerator{}

		Expect(g.Generate()).To(Equal("1"))
		Expect(g.Generate()).To(Equal("2"))
		Expect(g.Generate()).To(Equal("3"))
	})

	It("should generate unique parallel IDs", func() {
		g := parallelIDGenerator{}

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := g.Generate()
			Expect(id).NotTo(BeEmpty())
			Expect(seen[id]).To(BeFalse())
			seen[id] = true
		}
	})

	It("should default to the sequential generator", func() {
		Expect(GetIDGenerator()).
			To(BeAssignableToTypeOf(&sequentialIDGenerator{}))
	})
})
