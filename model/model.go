// Package model defines the contract between the bench and compiled hardware
// models. A model behaves like the output of an RTL-to-model compiler: it
// exposes named ports and a single Eval function that settles the model state
// according to the current port values. Models detect their own clock edges by
// remembering the previous clock level.
package model

// A Model is a compiled hardware model that the bench can drive.
type Model interface {
	// Name returns the instance name of the model.
	Name() string

	// Eval settles the model according to the current input port values.
	// State elements update when Eval observes a rising clock edge.
	Eval()

	// Reset puts all state elements back to their power-on values.
	Reset()

	// Ports lists all the ports of the model.
	Ports() []*Port

	// Port returns the port with the given name, or nil if the model does
	// not have such a port.
	Port(name string) *Port
}

// ModelBase provides the port table that all models share.
type ModelBase struct {
	name      string
	ports     []*Port
	portIndex map[string]int
}

// NewModelBase creates a new ModelBase.
func NewModelBase(name string) *ModelBase {
	return &ModelBase{
		name:      name,
		portIndex: make(map[string]int),
	}
}

// Name returns the instance name of the model.
func (b *ModelBase) Name() string {
	return b.name
}

// AddPort creates a port and registers it with the model.
func (b *ModelBase) AddPort(name string, width int, dir Direction) *Port {
	if _, exists := b.portIndex[name]; exists {
		panic("port " + name + " already registered")
	}

	p := NewPort(name, width, dir)
	b.ports = append(b.ports, p)
	b.portIndex[name] = len(b.ports) - 1

	return p
}

// Ports lists all the ports of the model.
func (b *ModelBase) Ports() []*Port {
	return b.ports
}

// Port returns the port with the given name, or nil if absent.
func (b *ModelBase) Port(name string) *Port {
	i, exists := b.portIndex[name]
	if !exists {
		return nil
	}

	return b.ports[i]
}

// An EdgeDetector remembers the previous level of a signal so that a model
// can tell edges apart inside Eval.
type EdgeDetector struct {
	last uint64
}

// Rising returns true if the signal moved from low to high since the last
// call.
func (d *EdgeDetector) Rising(level uint64) bool {
	rising := d.last == 0 && level != 0
	d.last = level
	return rising
}
