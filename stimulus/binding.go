package stimulus

import (
	"math"

	"github.com/sarchlab/vbench/model"
)

// A Binding connects a Source to an input port of a model. The sample value
// is scaled and rounded to an integer before it is driven, and an optional
// valid port is raised alongside.
type Binding struct {
	source Source
	data   *model.Port
	valid  *model.Port
	scale  float64
}

// NewBinding creates a binding. valid may be nil if the model has no valid
// input. scale converts source amplitude into raw sample counts.
func NewBinding(
	source Source,
	data *model.Port,
	valid *model.Port,
	scale float64,
) *Binding {
	if source == nil {
		panic("binding requires a source")
	}
	if data == nil {
		panic("binding requires a data port")
	}

	return &Binding{
		source: source,
		data:   data,
		valid:  valid,
		scale:  scale,
	}
}

// Apply drives the sample for the given cycle onto the bound ports.
func (b *Binding) Apply(cycle uint64) {
	v := b.source.Sample(cycle)
	b.data.PokeInt(int64(math.Round(v * b.scale)))

	if b.valid != nil {
		b.valid.Poke(1)
	}
}
