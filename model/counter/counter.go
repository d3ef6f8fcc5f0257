// Package counter bundles the smallest compiled model: an 8-bit counter with
// enable and synchronous reset. It mainly serves as a smoke-test target for
// the bench.
package counter

import "github.com/sarchlab/vbench/model"

func init() {
	model.Register("counter", func(name string) model.Model {
		return New(name)
	})
}

// Comp is an 8-bit counter. The count advances on each rising clock edge
// while en is high. rst clears the count synchronously.
type Comp struct {
	*model.ModelBase

	clk   *model.Port
	rst   *model.Port
	en    *model.Port
	count *model.Port

	clkEdge model.EdgeDetector
	countV  uint64
}

// New creates a counter model.
func New(name string) *Comp {
	c := &Comp{
		ModelBase: model.NewModelBase(name),
	}

	c.clk = c.AddPort("clk", 1, model.In)
	c.rst = c.AddPort("rst", 1, model.In)
	c.en = c.AddPort("en", 1, model.In)
	c.count = c.AddPort("count", 8, model.Out)

	return c
}

// Eval settles the model. State updates on the rising edge of clk.
func (c *Comp) Eval() {
	if c.clkEdge.Rising(c.clk.Peek()) {
		switch {
		case c.rst.Peek() != 0:
			c.countV = 0
		case c.en.Peek() != 0:
			c.countV = (c.countV + 1) & 0xFF
		}
	}

	c.count.Poke(c.countV)
}

// Reset puts the counter back to its power-on state.
func (c *Comp) Reset() {
	c.countV = 0
	c.clkEdge = model.EdgeDetector{}
	c.count.Poke(0)
}
