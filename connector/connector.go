package connector

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sergiohidalgo818/rtxi/block"
)

// ErrCycle is returned by Connect when the requested edge would introduce a
// cycle among compute Threads. Device edges are never checked for cycles:
// hardware I/O has no notion of execution order relative to itself.
var ErrCycle = errors.New("connector: edge would create a cycle among threads")

// ErrUnknownBlock is returned when an endpoint of a Connection has not been
// registered with InsertBlock.
var ErrUnknownBlock = errors.New("connector: block is not registered")

// ErrUnsupportedBlock is returned by InsertBlock when a Block implements
// neither block.Device nor block.Thread.
var ErrUnsupportedBlock = errors.New("connector: block implements neither Device nor Thread")

// Connector owns the registry of every Device and Thread and the directed
// connection graph between their ports. It is the single point through
// which the RT loop discovers what to run and in what order, and through
// which samples are moved across block boundaries each tick.
type Connector struct {
	mu sync.RWMutex

	byID    map[block.ID]block.Block
	devices []block.Device
	threads []block.Thread

	// outgoing indexes every connection by its source block, regardless of
	// whether that source is a Device or a Thread. It backs both Outputs
	// and Propagate.
	outgoing map[block.ID][]Connection

	// threadAdj is the subgraph restricted to Thread->Thread edges. Only
	// this subgraph is subject to cycle detection and topological
	// ordering; Device edges may form any shape.
	threadAdj map[block.ID][]block.ID

	// order is the cached topological order of threads, rebuilt whenever
	// a thread-to-thread edge or a thread is added or removed. Threads()
	// hands out a copy of it under the read lock.
	order []block.Thread

	// removed stashes the connections severed by RemoveBlock, keyed by
	// the removed block's id, so that re-inserting the very same Block
	// instance (hot reload of a paused module) restores its wiring
	// automatically instead of leaving it silently disconnected.
	removed map[block.ID][]Connection
}

// New returns an empty Connector.
func New() *Connector {
	return &Connector{
		byID:      make(map[block.ID]block.Block),
		outgoing:  make(map[block.ID][]Connection),
		threadAdj: make(map[block.ID][]block.ID),
		removed:   make(map[block.ID][]Connection),
	}
}

// InsertBlock registers b as a Device or a Thread, whichever it implements.
// It is idempotent: re-inserting an already-registered block is a no-op. Any
// connections previously severed for this exact block id by RemoveBlock are
// restored and returned.
func (c *Connector) InsertBlock(b block.Block) ([]Connection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[b.ID()]; ok {
		return nil, nil
	}

	switch concrete := b.(type) {
	case block.Device:
		c.devices = append(c.devices, concrete)
	case block.Thread:
		c.threads = append(c.threads, concrete)
		c.rebuildOrderLocked()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBlock, b.Name())
	}

	c.byID[b.ID()] = b

	restored := c.removed[b.ID()]
	delete(c.removed, b.ID())

	for _, conn := range restored {
		c.addEdgeLocked(conn)
	}

	return restored, nil
}

// RemoveBlock unregisters b and severs every connection incident to it,
// whether b is the source or the destination. The severed connections are
// both returned to the caller and stashed for InsertBlock to restore should
// the same Block instance be re-inserted later.
func (c *Connector) RemoveBlock(b block.Block) []Connection {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[b.ID()]; !ok {
		return nil
	}

	var severed []Connection

	for srcID, edges := range c.outgoing {
		var kept []Connection

		for _, e := range edges {
			if e.Src.ID() == b.ID() || e.Dst.ID() == b.ID() {
				severed = append(severed, e)
				c.removeThreadEdgeLocked(e)

				continue
			}

			kept = append(kept, e)
		}

		if len(kept) == 0 {
			delete(c.outgoing, srcID)
		} else {
			c.outgoing[srcID] = kept
		}
	}

	delete(c.byID, b.ID())
	c.devices = removeDevice(c.devices, b.ID())
	c.threads = removeThread(c.threads, b.ID())
	delete(c.threadAdj, b.ID())

	c.removed[b.ID()] = severed
	c.rebuildOrderLocked()

	return severed
}

func removeDevice(devices []block.Device, id block.ID) []block.Device {
	out := devices[:0]

	for _, d := range devices {
		if d.ID() != id {
			out = append(out, d)
		}
	}

	return out
}

func removeThread(threads []block.Thread, id block.ID) []block.Thread {
	out := threads[:0]

	for _, t := range threads {
		if t.ID() != id {
			out = append(out, t)
		}
	}

	return out
}

// Connect adds a directed edge. It fails with ErrUnknownBlock if either
// endpoint is not registered, and with ErrCycle if both endpoints are
// Threads and the edge would close a cycle in the thread subgraph.
func (c *Connector) Connect(conn Connection) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[conn.Src.ID()]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBlock, conn.Src.Name())
	}

	if _, ok := c.byID[conn.Dst.ID()]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBlock, conn.Dst.Name())
	}

	_, srcIsThread := conn.Src.(block.Thread)
	_, dstIsThread := conn.Dst.(block.Thread)

	if srcIsThread && dstIsThread && c.reaches(conn.Dst.ID(), conn.Src.ID()) {
		return ErrCycle
	}

	c.addEdgeLocked(conn)

	return nil
}

func (c *Connector) addEdgeLocked(conn Connection) {
	c.outgoing[conn.Src.ID()] = append(c.outgoing[conn.Src.ID()], conn)

	_, srcIsThread := conn.Src.(block.Thread)
	_, dstIsThread := conn.Dst.(block.Thread)

	if srcIsThread && dstIsThread {
		c.threadAdj[conn.Src.ID()] = append(c.threadAdj[conn.Src.ID()], conn.Dst.ID())
		c.rebuildOrderLocked()
	}
}

// Disconnect removes a single edge if present. It is a no-op if the edge
// does not exist.
func (c *Connector) Disconnect(conn Connection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	edges := c.outgoing[conn.Src.ID()]

	var kept []Connection

	removed := false

	for _, e := range edges {
		if !removed && e.key() == conn.key() {
			removed = true

			continue
		}

		kept = append(kept, e)
	}

	if !removed {
		return
	}

	if len(kept) == 0 {
		delete(c.outgoing, conn.Src.ID())
	} else {
		c.outgoing[conn.Src.ID()] = kept
	}

	c.removeThreadEdgeLocked(conn)
	c.rebuildOrderLocked()
}

func (c *Connector) removeThreadEdgeLocked(conn Connection) {
	adj, ok := c.threadAdj[conn.Src.ID()]
	if !ok {
		return
	}

	var kept []block.ID

	dropped := false

	for _, id := range adj {
		if !dropped && id == conn.Dst.ID() {
			dropped = true

			continue
		}

		kept = append(kept, id)
	}

	if len(kept) == 0 {
		delete(c.threadAdj, conn.Src.ID())
	} else {
		c.threadAdj[conn.Src.ID()] = kept
	}
}

// Connected reports whether the exact edge conn is currently present.
func (c *Connector) Connected(conn Connection) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.outgoing[conn.Src.ID()] {
		if e.key() == conn.key() {
			return true
		}
	}

	return false
}

// Outputs returns a snapshot of every outgoing edge from b.
func (c *Connector) Outputs(b block.Block) []Connection {
	c.mu.RLock()
	defer c.mu.RUnlock()

	edges := c.outgoing[b.ID()]
	out := make([]Connection, len(edges))
	copy(out, edges)

	return out
}

// Devices returns every registered Device in insertion order.
func (c *Connector) Devices() []block.Device {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]block.Device, len(c.devices))
	copy(out, c.devices)

	return out
}

// Threads returns the current topological order of registered Threads. The
// RT loop calls this once per tick; the slice it receives is an immutable
// snapshot safe to range over even while another goroutine mutates the
// graph concurrently.
func (c *Connector) Threads() []block.Thread {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]block.Thread, len(c.order))
	copy(out, c.order)

	return out
}

// Propagate pushes src's freshly produced samples along every outgoing edge.
// When an edge taps src's input rather than its output, the tapped sample is
// whatever is currently in that input buffer — typically just written by an
// earlier Propagate call this same tick. Writing into a destination's input
// also immediately cascades into any tap edges reading that exact input
// port, so a tap observes the value in the same tick it arrives rather than
// a tick late.
func (c *Connector) Propagate(src block.Block) {
	c.mu.RLock()
	edges := append([]Connection(nil), c.outgoing[src.ID()]...)
	c.mu.RUnlock()

	for _, e := range edges {
		samples := src.ReadPort(e.SrcDir, e.SrcPort)
		_ = e.Dst.WriteInput(e.DstPort, samples)

		if e.SrcDir == block.Output {
			c.propagateTaps(e.Dst, e.DstPort)
		}
	}
}

func (c *Connector) propagateTaps(b block.Block, inputPort int) {
	c.mu.RLock()
	edges := c.outgoing[b.ID()]
	var taps []Connection

	for _, e := range edges {
		if e.SrcDir == block.Input && e.SrcPort == inputPort {
			taps = append(taps, e)
		}
	}
	c.mu.RUnlock()

	for _, e := range taps {
		samples := b.ReadInput(inputPort)
		_ = e.Dst.WriteInput(e.DstPort, samples)
	}
}

// reaches reports whether to is reachable from from in the thread subgraph.
// Caller must hold c.mu.
func (c *Connector) reaches(from, to block.ID) bool {
	if from == to {
		return true
	}

	visited := map[block.ID]bool{from: true}
	stack := []block.ID{from}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range c.threadAdj[n] {
			if next == to {
				return true
			}

			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}

	return false
}

// rebuildOrderLocked recomputes the topological order of c.threads via
// Kahn's algorithm. Ties (multiple threads ready at once) are broken by
// thread insertion order, giving a deterministic, stable ordering across
// rebuilds. Caller must hold c.mu.
func (c *Connector) rebuildOrderLocked() {
	indegree := make(map[block.ID]int, len(c.threads))
	pos := make(map[block.ID]int, len(c.threads))

	for i, t := range c.threads {
		indegree[t.ID()] = 0
		pos[t.ID()] = i
	}

	for _, dsts := range c.threadAdj {
		for _, dst := range dsts {
			if _, ok := indegree[dst]; ok {
				indegree[dst]++
			}
		}
	}

	ready := make([]block.Thread, 0, len(c.threads))

	for _, t := range c.threads {
		if indegree[t.ID()] == 0 {
			ready = append(ready, t)
		}
	}

	order := make([]block.Thread, 0, len(c.threads))

	for len(ready) > 0 {
		best := 0
		for i := range ready {
			if pos[ready[i].ID()] < pos[ready[best].ID()] {
				best = i
			}
		}

		t := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, t)

		for _, nextID := range c.threadAdj[t.ID()] {
			indegree[nextID]--
			if indegree[nextID] == 0 {
				ready = append(ready, c.byID[nextID].(block.Thread))
			}
		}
	}

	if len(order) != len(c.threads) {
		// A cycle exists despite Connect's guard (can only happen if the
		// caller mutated threadAdj some other way); fall back to
		// insertion order rather than silently dropping threads.
		c.order = append([]block.Thread(nil), c.threads...)

		return
	}

	c.order = order
}
