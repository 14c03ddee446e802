// Package event implements the non-real-time event bus: a FIFO queue of
// Objects dispatched to registered Handlers on a single worker goroutine,
// and the synchronous post/wait protocol callers use to know when an event
// has been fully handled.
package event

import "sync"

// Handler receives events from a Manager. ReceiveEvent must not block for
// long: the dispatch loop is single-threaded, so a slow handler delays
// every event behind it.
type Handler interface {
	ReceiveEvent(e *Object)
}

// Manager is a FIFO event bus. Unlike the detached-goroutine-per-event
// dispatch this design is ported from, Manager dispatches strictly one
// event at a time on its own worker goroutine: a batch posted together via
// PostEventBatch is guaranteed to reach every handler in the order it was
// posted, which a per-event goroutine fan-out cannot guarantee.
type Manager struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    []*Object

	handlersMu sync.RWMutex
	handlers   []Handler

	running bool
}

// NewManager creates a Manager and starts its dispatch loop.
func NewManager() *Manager {
	m := &Manager{running: true}
	m.cond = sync.NewCond(&m.mu)

	go m.dispatchLoop()

	return m
}

// PostEvent enqueues e and blocks until it has been handled.
func (m *Manager) PostEvent(e *Object) {
	m.PostEventBatch([]*Object{e})
}

// PostEventBatch enqueues every event in events under a single lock
// acquisition — so a concurrent poster can never interleave its own events
// between them — then blocks until all of them have been handled, in the
// order they were posted.
func (m *Manager) PostEventBatch(events []*Object) {
	m.mu.Lock()
	m.q = append(m.q, events...)
	m.cond.Signal()
	m.mu.Unlock()

	for _, e := range events {
		e.Wait()
	}
}

// RegisterHandler adds handler to the dispatch list if it is not already
// present.
func (m *Manager) RegisterHandler(handler Handler) {
	m.handlersMu.Lock()
	defer m.handlersMu.Unlock()

	for _, h := range m.handlers {
		if h == handler {
			return
		}
	}

	m.handlers = append(m.handlers, handler)
}

// UnregisterHandler removes handler from the dispatch list. It is a no-op
// if handler was never registered.
func (m *Manager) UnregisterHandler(handler Handler) {
	m.handlersMu.Lock()
	defer m.handlersMu.Unlock()

	for i, h := range m.handlers {
		if h == handler {
			m.handlers = append(m.handlers[:i], m.handlers[i+1:]...)

			return
		}
	}
}

// IsRegistered reports whether handler is currently registered.
func (m *Manager) IsRegistered(handler Handler) bool {
	m.handlersMu.RLock()
	defer m.handlersMu.RUnlock()

	for _, h := range m.handlers {
		if h == handler {
			return true
		}
	}

	return false
}

// Shutdown stops the dispatch loop after draining whatever is currently
// queued. It blocks until the worker goroutine has exited.
func (m *Manager) Shutdown() {
	done := make(chan struct{})

	m.mu.Lock()
	m.running = false
	m.q = append(m.q, &Object{done: done})
	m.cond.Signal()
	m.mu.Unlock()

	<-done
}

func (m *Manager) dispatchLoop() {
	for {
		m.mu.Lock()

		for len(m.q) == 0 && m.running {
			m.cond.Wait()
		}

		if len(m.q) == 0 && !m.running {
			m.mu.Unlock()

			return
		}

		e := m.q[0]
		m.q = m.q[1:]
		stopping := !m.running && len(m.q) == 0

		m.mu.Unlock()

		m.deliver(e)

		if stopping {
			return
		}
	}
}

func (m *Manager) deliver(e *Object) {
	// The marker Shutdown enqueues is the only Object built without New (its
	// params are nil); it is completed without being handed to any handler.
	if e.params != nil {
		m.handlersMu.RLock()
		handlers := append([]Handler(nil), m.handlers...)
		m.handlersMu.RUnlock()

		for _, h := range handlers {
			h.ReceiveEvent(e)
		}
	}

	e.Done()
}
