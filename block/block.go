package block

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a channel index falls outside the dense
// 0..N-1 range declared for a direction.
var ErrInvalidIndex = errors.New("block: channel index out of range")

// ErrWidthMismatch is returned when the sample slice handed to WriteInput
// does not match the channel's declared width.
var ErrWidthMismatch = errors.New("block: sample width does not match channel")

// Named is implemented by anything with a stable, human readable name.
type Named interface {
	Name() string
}

// Block is the uniform abstraction covering every participant in the
// dataflow graph: a Device or a Thread. Port indices are dense per
// direction; port buffers are sized once at construction and never
// reallocated.
type Block interface {
	Named

	// ID returns the block's stable integer identity.
	ID() ID

	// Count returns the number of channels declared for dir.
	Count(dir Direction) int

	// ChannelName returns the name of channel i in direction dir.
	ChannelName(dir Direction, i int) string

	// ChannelDescription returns the description of channel i in direction dir.
	ChannelDescription(dir Direction, i int) string

	// WriteInput replaces the contents of input buffer i. len(samples) must
	// equal the channel's declared width.
	WriteInput(i int, samples []float64) error

	// ReadOutput returns a read-only view of output buffer i.
	ReadOutput(i int) []float64

	// ReadInput returns the current contents of input buffer i. Exported so
	// the Connector can tap an input port for probe connections; callers
	// outside the RT loop's own tick sequencing should otherwise leave it
	// alone, the same way they must leave WriteInput's buffer ordering
	// alone — there is no further access control than documentation here.
	ReadInput(i int) []float64

	// ReadPort reads either direction by index, used by the Connector to
	// support both OUTPUT-sourced connections and INPUT-sourced taps
	// without a type switch at every call site.
	ReadPort(dir Direction, i int) []float64
}

type port struct {
	channel Channel
	samples []float64
}

// Base implements the bookkeeping shared by every Block: the two dense
// port arrays and their preallocated sample buffers. Concrete Devices and
// Threads embed Base and add their Read/Write/Execute behavior on top.
type Base struct {
	id      ID
	name    string
	inputs  []port
	outputs []port
}

// NewBase partitions channels into the input and output arrays and
// allocates each port's sample buffer up front. The channel order within
// each direction becomes the port index for that direction.
func NewBase(name string, channels []Channel) *Base {
	b := &Base{id: NewID(), name: name}

	for _, ch := range channels {
		p := port{channel: ch, samples: make([]float64, ch.Width)}

		switch ch.Direction {
		case Input:
			b.inputs = append(b.inputs, p)
		case Output:
			b.outputs = append(b.outputs, p)
		default:
			panic(fmt.Sprintf("block %q: channel %q has unknown direction", name, ch.Name))
		}
	}

	return b
}

// Name returns the block's name.
func (b *Base) Name() string {
	return b.name
}

// ID returns the block's stable integer identity.
func (b *Base) ID() ID {
	return b.id
}

func (b *Base) ports(dir Direction) []port {
	if dir == Input {
		return b.inputs
	}

	return b.outputs
}

// Count returns the number of channels declared for dir.
func (b *Base) Count(dir Direction) int {
	return len(b.ports(dir))
}

// ChannelName returns the name of channel i in direction dir. Panics on an
// out-of-range index, mirroring the descriptor-lookup contract: the only
// failure mode is an invalid index.
func (b *Base) ChannelName(dir Direction, i int) string {
	return b.channelMustExist(dir, i).channel.Name
}

// ChannelDescription returns the description of channel i in direction dir.
func (b *Base) ChannelDescription(dir Direction, i int) string {
	return b.channelMustExist(dir, i).channel.Description
}

func (b *Base) channelMustExist(dir Direction, i int) *port {
	ports := b.ports(dir)
	if i < 0 || i >= len(ports) {
		panic(fmt.Sprintf(
			"block %q: %s channel index %d out of range [0,%d)",
			b.name, dir, i, len(ports)))
	}

	return &ports[i]
}

// WriteInput replaces input buffer i's contents in place; no reallocation
// ever occurs after construction.
func (b *Base) WriteInput(i int, samples []float64) error {
	if i < 0 || i >= len(b.inputs) {
		return fmt.Errorf("%w: input %d on block %q", ErrInvalidIndex, i, b.name)
	}

	p := &b.inputs[i]
	if len(samples) != len(p.samples) {
		return fmt.Errorf("%w: input %d on block %q wants width %d, got %d",
			ErrWidthMismatch, i, b.name, len(p.samples), len(samples))
	}

	copy(p.samples, samples)

	return nil
}

// ReadOutput returns a read-only view of output buffer i. The returned
// slice aliases the block's internal buffer; callers must not mutate it.
func (b *Base) ReadOutput(i int) []float64 {
	if i < 0 || i >= len(b.outputs) {
		panic(fmt.Sprintf("block %q: output index %d out of range", b.name, i))
	}

	return b.outputs[i].samples[:len(b.outputs[i].samples):len(b.outputs[i].samples)]
}

// ReadInput returns the current contents of input buffer i. Besides the
// block's own Read/Write/Execute, the Connector calls it to feed tap
// (probe) connections that read from an input port.
func (b *Base) ReadInput(i int) []float64 {
	if i < 0 || i >= len(b.inputs) {
		panic(fmt.Sprintf("block %q: input index %d out of range", b.name, i))
	}

	return b.inputs[i].samples[:len(b.inputs[i].samples):len(b.inputs[i].samples)]
}

// WriteOutput replaces output buffer i's contents in place. Like ReadInput,
// it is meant to be called only from within the block's own Read/Write/
// Execute implementation.
func (b *Base) WriteOutput(i int, samples []float64) error {
	if i < 0 || i >= len(b.outputs) {
		return fmt.Errorf("%w: output %d on block %q", ErrInvalidIndex, i, b.name)
	}

	p := &b.outputs[i]
	if len(samples) != len(p.samples) {
		return fmt.Errorf("%w: output %d on block %q wants width %d, got %d",
			ErrWidthMismatch, i, b.name, len(p.samples), len(samples))
	}

	copy(p.samples, samples)

	return nil
}

// ReadPort reads either an input or an output buffer, used by the
// Connector to support both OUTPUT-sourced connections and INPUT-sourced
// taps (probes).
func (b *Base) ReadPort(dir Direction, i int) []float64 {
	if dir == Output {
		return b.ReadOutput(i)
	}

	return b.ReadInput(i)
}
