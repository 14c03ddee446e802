// Package connector implements the registry of blocks, the connection
// graph between them, cycle detection over the compute-thread subgraph,
// and the topological order the RT loop drives threads in.
package connector

import "github.com/sergiohidalgo818/rtxi/block"

// Connection is a directed edge from one block's source port to another
// block's input port. SrcDir is usually Output (the normal case); it may
// also be Input, which taps a source block's own input buffer — used for
// instrumentation probes that observe what a block was fed rather than
// what it produced. The destination port is always an input.
type Connection struct {
	Src     block.Block
	SrcDir  block.Direction
	SrcPort int

	Dst     block.Block
	DstPort int
}

func (c Connection) key() connKey {
	return connKey{
		srcID:   c.Src.ID(),
		srcDir:  c.SrcDir,
		srcPort: c.SrcPort,
		dstID:   c.Dst.ID(),
		dstPort: c.DstPort,
	}
}

type connKey struct {
	srcID   block.ID
	srcDir  block.Direction
	srcPort int
	dstID   block.ID
	dstPort int
}
