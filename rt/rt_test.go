package rt_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sergiohidalgo818/rtxi/block"
	"github.com/sergiohidalgo818/rtxi/connector"
	"github.com/sergiohidalgo818/rtxi/event"
	"github.com/sergiohidalgo818/rtxi/rt"
)

type doublingThread struct {
	*block.Base
	block.ActiveFlag
}

func newDoublingThread(name string) *doublingThread {
	t := &doublingThread{Base: block.NewBase(name, []block.Channel{
		{Name: "In", Direction: block.Input, Width: 1},
		{Name: "Out", Direction: block.Output, Width: 1},
	})}
	t.SetActive(true)

	return t
}

func (t *doublingThread) Execute() {
	in := t.ReadInput(0)
	_ = t.WriteOutput(0, []float64{in[0] * 2})
}

type constantDevice struct {
	*block.Base
	block.ActiveFlag
	value float64
}

func newConstantDevice(name string, value float64) *constantDevice {
	d := &constantDevice{value: value, Base: block.NewBase(name, []block.Channel{
		{Name: "Out", Direction: block.Output, Width: 1},
	})}
	d.SetActive(true)

	return d
}

func (d *constantDevice) Read()  { _ = d.WriteOutput(0, []float64{d.value}) }
func (d *constantDevice) Write() {}

func newSystem() (*event.Manager, *connector.Connector, *rt.System) {
	em := event.NewManager()
	conn := connector.New()
	sys := rt.NewSystem(em, conn, time.Millisecond)

	return em, conn, sys
}

var _ = Describe("System", func() {
	It("round-trips a period change", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		get := event.New(event.RTGetPeriod, nil)
		em.PostEvent(get)
		v, _ := get.Param("period_ns")
		Expect(v).To(Equal(int64(time.Millisecond)))

		set := event.New(event.RTPeriod, event.Params{"period_ns": int64(5 * time.Millisecond)})
		em.PostEvent(set)

		Eventually(sys.GetPeriod).Should(Equal(5 * time.Millisecond))

		var update rt.Telemetry
		Eventually(func() bool {
			for {
				t, ok := sys.Telemetry().Pop()
				if !ok {
					return false
				}

				if t.Kind == rt.TelemetryPeriodUpdate {
					update = t

					return true
				}
			}
		}).Should(BeTrue())

		Expect(update.Command).NotTo(BeNil())
		periodParam, _ := update.Command.Param("period_ns")
		Expect(periodParam).To(Equal(int64(5 * time.Millisecond)))
	})

	It("inserts a device and reflects it in the device list", func() {
		em, conn, sys := newSystem()
		defer sys.Stop()

		dev := newConstantDevice("Src", 1)
		e := event.New(event.RTDeviceInsert, event.Params{"device": block.Device(dev)})
		em.PostEvent(e)

		Eventually(func() int { return len(conn.Devices()) }).Should(Equal(1))
	})

	It("drives threads in topological order across ticks", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		src := newConstantDevice("Src", 1)
		a := newDoublingThread("A")
		b := newDoublingThread("B")

		em.PostEvent(event.New(event.RTDeviceInsert, event.Params{"device": block.Device(src)}))
		em.PostEvent(event.New(event.RTThreadInsert, event.Params{"thread": block.Thread(a)}))
		em.PostEvent(event.New(event.RTThreadInsert, event.Params{"thread": block.Thread(b)}))

		em.PostEvent(event.New(event.IOLinkInsert, event.Params{
			"connection": connector.Connection{Src: src, SrcDir: block.Output, SrcPort: 0, Dst: a, DstPort: 0},
		}))
		em.PostEvent(event.New(event.IOLinkInsert, event.Params{
			"connection": connector.Connection{Src: a, SrcDir: block.Output, SrcPort: 0, Dst: b, DstPort: 0},
		}))

		Eventually(func() []float64 { return b.ReadOutput(0) }, time.Second).Should(Equal([]float64{4.0}))
	})

	It("rejects a link that would close a cycle among threads", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		a := newDoublingThread("A")
		b := newDoublingThread("B")
		em.PostEvent(event.New(event.RTThreadInsert, event.Params{"thread": block.Thread(a)}))
		em.PostEvent(event.New(event.RTThreadInsert, event.Params{"thread": block.Thread(b)}))

		em.PostEvent(event.New(event.IOLinkInsert, event.Params{
			"connection": connector.Connection{Src: a, SrcDir: block.Output, SrcPort: 0, Dst: b, DstPort: 0},
		}))

		bad := event.New(event.IOLinkInsert, event.Params{
			"connection": connector.Connection{Src: b, SrcDir: block.Output, SrcPort: 0, Dst: a, DstPort: 0},
		})
		em.PostEvent(bad)

		errVal, ok := bad.Param("error")
		Expect(ok).To(BeTrue())
		Expect(errVal).To(MatchError(connector.ErrCycle))
	})

	It("pauses and unpauses a thread via the command queue, telemetered as a thread list update", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		src := newConstantDevice("Src", 1)
		a := newDoublingThread("A")

		em.PostEvent(event.New(event.RTDeviceInsert, event.Params{"device": block.Device(src)}))
		em.PostEvent(event.New(event.RTThreadInsert, event.Params{"thread": block.Thread(a)}))
		em.PostEvent(event.New(event.IOLinkInsert, event.Params{
			"connection": connector.Connection{Src: src, SrcDir: block.Output, SrcPort: 0, Dst: a, DstPort: 0},
		}))

		Eventually(func() []float64 { return a.ReadOutput(0) }, time.Second).Should(Equal([]float64{2.0}))

		em.PostEvent(event.New(event.RTThreadPause, event.Params{"thread": block.Thread(a)}))
		Eventually(a.Active).Should(BeFalse())

		var sawUpdate bool
		Eventually(func() bool {
			for {
				t, ok := sys.Telemetry().Pop()
				if !ok {
					return sawUpdate
				}

				if t.Kind == rt.TelemetryThreadListUpdate {
					sawUpdate = true
				}
			}
		}).Should(BeTrue())

		em.PostEvent(event.New(event.RTThreadUnpause, event.Params{"thread": block.Thread(a)}))
		Eventually(a.Active).Should(BeTrue())
	})

	It("pauses and unpauses a device via the command queue, telemetered as a device list update", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		src := newConstantDevice("Src", 1)
		em.PostEvent(event.New(event.RTDeviceInsert, event.Params{"device": block.Device(src)}))

		em.PostEvent(event.New(event.RTDevicePause, event.Params{"device": block.Device(src)}))
		Eventually(src.Active).Should(BeFalse())

		var sawUpdate bool
		Eventually(func() bool {
			for {
				t, ok := sys.Telemetry().Pop()
				if !ok {
					return sawUpdate
				}

				if t.Kind == rt.TelemetryDeviceListUpdate {
					sawUpdate = true
				}
			}
		}).Should(BeTrue())

		em.PostEvent(event.New(event.RTDeviceUnpause, event.Params{"device": block.Device(src)}))
		Eventually(src.Active).Should(BeTrue())
	})

	It("shuts down cleanly and reports it on the telemetry queue", func() {
		em, _, sys := newSystem()

		em.PostEvent(event.New(event.RTShutdown, nil))

		Eventually(func() bool {
			for {
				t, ok := sys.Telemetry().Pop()
				if !ok {
					return false
				}

				if t.Kind == rt.TelemetryShutdown {
					return true
				}
			}
		}).Should(BeTrue())
	})

	It("stamps an RT_ERROR after the telemetry queue overflows", func() {
		em, conn, sys := newSystem()
		defer sys.Stop()

		src := newConstantDevice("Src", 1)
		em.PostEvent(event.New(event.RTDeviceInsert, event.Params{"device": block.Device(src)}))
		Eventually(func() int { return len(conn.Devices()) }).Should(Equal(1))

		var mu sync.Mutex
		var seen []rt.Telemetry
		stopDrain := make(chan struct{})
		drainDone := make(chan struct{})

		// Drain on a ticker much slower than the flood below produces
		// telemetry, so the queue fills and most pushes are dropped, but a
		// slot still frees up from time to time — an overflow only stamps
		// its next record once the consumer has made room for it to land in.
		go func() {
			defer close(drainDone)

			ticker := time.NewTicker(5 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-stopDrain:
					return
				case <-ticker.C:
					if t, ok := sys.Telemetry().Pop(); ok {
						mu.Lock()
						seen = append(seen, t)
						mu.Unlock()
					}
				}
			}
		}()

		// Flood far more period-change commands than the telemetry queue
		// can hold, forcing most pushes to overflow.
		for i := 0; i < rt.DefaultQueueCapacity*10; i++ {
			e := event.New(event.RTPeriod, event.Params{"period_ns": int64(time.Millisecond) + int64(i)})
			em.PostEvent(e)
		}

		close(stopDrain)
		<-drainDone

		// Whatever is still queued once the flood ends belongs to the
		// result too — the ticker stopping is not the consumer vanishing.
		for {
			t, ok := sys.Telemetry().Pop()
			if !ok {
				break
			}

			seen = append(seen, t)
		}

		mu.Lock()
		defer mu.Unlock()

		var sawError bool
		for _, t := range seen {
			if t.Kind == rt.TelemetryError {
				sawError = true

				Expect(t.ErrorKind).To(Equal(rt.ErrKindTelemetryOverflow))
			}
		}

		Expect(sawError).To(BeTrue())
	})

	It("stays alive under 100 concurrent period queries", func() {
		em, _, sys := newSystem()
		defer sys.Stop()

		var wg sync.WaitGroup
		wg.Add(100)

		for i := 0; i < 100; i++ {
			go func() {
				defer wg.Done()

				e := event.New(event.RTGetPeriod, nil)
				em.PostEvent(e)
			}()
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		Eventually(done, time.Second).Should(BeClosed())
	})
})
