package event_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sergiohidalgo818/rtxi/event"
)

// recordingHandler appends the id of every event it receives, in the order
// received, guarded by a mutex since ReceiveEvent may be called from the
// manager's dispatch goroutine while a test goroutine reads the log.
type recordingHandler struct {
	mu  sync.Mutex
	log []string
}

func (r *recordingHandler) ReceiveEvent(e *event.Object) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log = append(r.log, e.ID())
}

func (r *recordingHandler) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.log...)
}

var _ = Describe("Object", func() {
	It("wakes a waiter only once Done is called", func() {
		e := event.New(event.NOOP, nil)
		woke := make(chan struct{})

		go func() {
			e.Wait()
			close(woke)
		}()

		Consistently(woke, 30*time.Millisecond).ShouldNot(BeClosed())
		Expect(e.IsDone()).To(BeFalse())

		e.Done()

		Eventually(woke).Should(BeClosed())
		Expect(e.IsDone()).To(BeTrue())
	})

	It("tolerates Done being called more than once", func() {
		e := event.New(event.NOOP, nil)
		Expect(func() {
			e.Done()
			e.Done()
		}).NotTo(Panic())
	})

	It("stores and retrieves named parameters", func() {
		e := event.New(event.RTPeriod, event.Params{"period_ns": int64(1000)})
		v, ok := e.Param("period_ns")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(int64(1000)))

		e.SetParam("period_ns", int64(2000))
		v, _ = e.Param("period_ns")
		Expect(v).To(Equal(int64(2000)))

		_, ok = e.Param("missing")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Manager", func() {
	It("delivers a single posted event to every registered handler", func() {
		m := event.NewManager()
		defer m.Shutdown()

		h1 := &recordingHandler{}
		h2 := &recordingHandler{}
		m.RegisterHandler(h1)
		m.RegisterHandler(h2)

		e := event.New(event.NOOP, nil)
		m.PostEvent(e)

		Expect(h1.snapshot()).To(Equal([]string{e.ID()}))
		Expect(h2.snapshot()).To(Equal([]string{e.ID()}))
	})

	It("delivers a batch to handlers in posted order", func() {
		m := event.NewManager()
		defer m.Shutdown()

		h := &recordingHandler{}
		m.RegisterHandler(h)

		e1 := event.New(event.NOOP, nil)
		e2 := event.New(event.NOOP, nil)
		e3 := event.New(event.NOOP, nil)

		m.PostEventBatch([]*event.Object{e1, e2, e3})

		Expect(h.snapshot()).To(Equal([]string{e1.ID(), e2.ID(), e3.ID()}))
	})

	It("preserves batch order even against a concurrent poster", func() {
		m := event.NewManager()
		defer m.Shutdown()

		h := &recordingHandler{}
		m.RegisterHandler(h)

		batch := make([]*event.Object, 3)
		for i := range batch {
			batch[i] = event.New(event.NOOP, nil)
		}

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			m.PostEventBatch(batch)
		}()

		go func() {
			defer wg.Done()
			m.PostEvent(event.New(event.NOOP, nil))
		}()

		wg.Wait()

		log := h.snapshot()
		idx := make(map[string]int, len(log))
		for i, id := range log {
			idx[id] = i
		}

		Expect(idx[batch[0].ID()]).To(BeNumerically("<", idx[batch[1].ID()]))
		Expect(idx[batch[1].ID()]).To(BeNumerically("<", idx[batch[2].ID()]))
	})

	It("registers, reports, and unregisters handlers", func() {
		m := event.NewManager()
		defer m.Shutdown()

		h := &recordingHandler{}
		Expect(m.IsRegistered(h)).To(BeFalse())

		m.RegisterHandler(h)
		Expect(m.IsRegistered(h)).To(BeTrue())

		m.UnregisterHandler(h)
		Expect(m.IsRegistered(h)).To(BeFalse())
	})

	It("finishes every queued event even with no handlers registered", func() {
		m := event.NewManager()
		defer m.Shutdown()

		e := event.New(event.NOOP, nil)
		done := make(chan struct{})

		go func() {
			m.PostEvent(e)
			close(done)
		}()

		Eventually(done).Should(BeClosed())
	})
})
