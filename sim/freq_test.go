package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(BeNumerically("==", 1e-9))
	})

	It("should get this tick", func() {
		var f = 1 * Hz
		Expect(f.ThisTick(1)).To(BeNumerically("~", 1, 1e-12))
	})

	It("should get the next tick", func() {
		var f = 1 * GHz
		Expect(f.NextTick(102.000000001)).To(
			BeNumerically("~", 102.000000002, 1e-12))
	})

	It("should get the next tick, if currTime is not on a tick", func() {
		var f = 1 * GHz
		Expect(f.NextTick(102.0000000011)).To(
			BeNumerically("~", 102.000000002, 1e-12))
	})

	It("should get the n cycles later", func() {
		var f = 1 * GHz
		Expect(f.NCyclesLater(12, 102.000000001)).To(
			BeNumerically("~", 102.000000013, 1e-12))
	})

	It("should get the half tick", func() {
		var f = 1 * Hz
		Expect(f.HalfTick(1)).To(BeNumerically("~", 1.5, 1e-12))
	})

	It("should place falling edges between rising edges", func() {
		var f = 500 * Hz
		rising := f.ThisTick(0.002)
		falling := f.HalfTick(0.002)
		Expect(falling - rising).To(BeNumerically("~", 0.001, 1e-12))
	})

	It("should count cycles", func() {
		var f = 500 * Hz
		Expect(f.Cycle(0.02)).To(Equal(uint64(10)))
	})
})
