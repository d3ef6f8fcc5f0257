package model

import "fmt"

// Direction tells whether a port is an input or an output of the model.
type Direction int

// Defines the possible port directions.
const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
}

// A Port is a named signal on the boundary of a model. Values are stored as
// unsigned bit vectors up to 64 bits wide.
type Port struct {
	name  string
	width int
	dir   Direction
	value uint64
}

// NewPort creates a port with the given name, bit width, and direction.
func NewPort(name string, width int, dir Direction) *Port {
	if width < 1 || width > 64 {
		panic(fmt.Sprintf("port %s: width %d out of range", name, width))
	}

	return &Port{
		name:  name,
		width: width,
		dir:   dir,
	}
}

// Name returns the name of the port.
func (p *Port) Name() string {
	return p.name
}

// Width returns the bit width of the port.
func (p *Port) Width() int {
	return p.width
}

// Dir returns the direction of the port.
func (p *Port) Dir() Direction {
	return p.dir
}

func (p *Port) mask() uint64 {
	if p.width == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(p.width)) - 1
}

// Poke drives a value onto the port. The value is masked to the port width.
func (p *Port) Poke(v uint64) {
	p.value = v & p.mask()
}

// Peek reads the current value of the port. An undriven port reads 0.
func (p *Port) Peek() uint64 {
	return p.value
}

// PokeInt drives a signed value onto the port using two's complement within
// the port width.
func (p *Port) PokeInt(v int64) {
	p.Poke(uint64(v))
}

// PeekInt reads the current value of the port, sign-extended from the port
// width.
func (p *Port) PeekInt() int64 {
	v := p.value
	signBit := uint64(1) << uint(p.width-1)
	if p.width < 64 && v&signBit != 0 {
		v |= ^p.mask()
	}
	return int64(v)
}
