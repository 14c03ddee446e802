// Package rt implements the real-time loop: a fixed-period goroutine that
// drives Devices and Threads and propagates samples between them through
// the Connector, synchronized with the rest of the process only through
// the lock-free command and telemetry queues in fifo.
package rt

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sergiohidalgo818/rtxi/block"
	"github.com/sergiohidalgo818/rtxi/connector"
	"github.com/sergiohidalgo818/rtxi/event"
	"github.com/sergiohidalgo818/rtxi/fifo"
	"github.com/sergiohidalgo818/rtxi/osabs"
)

// DefaultQueueCapacity sizes both the command and telemetry queues when a
// caller does not have a more specific requirement.
const DefaultQueueCapacity = 64

// System is the real-time loop. It registers itself as an event.Handler
// so every RT-affecting event (period changes, block insert/remove, link
// changes, pause/unpause) flows through ReceiveEvent. Registry and graph
// changes are made on the Connector by the event manager's goroutine; the
// resulting device/thread lists, period changes and active-flag changes
// travel as commands and are applied by the loop goroutine at a tick
// boundary. Mid-tick the loop still calls Connector.Propagate for every
// active block, which takes the Connector's read lock and copies that
// block's edge list, so a tick does lock and allocate.
type System struct {
	em   *event.Manager
	conn *connector.Connector
	task *osabs.Task

	period atomic.Int64 // nanoseconds

	cmds      *fifo.Queue[*event.Object]
	telemetry *fifo.Queue[Telemetry]

	// overflowed latches when a telemetry push was dropped so the next
	// successful push can be stamped RT_ERROR, per the FIFO overflow
	// policy: never block the RT side, never silently lose the signal
	// that something was dropped.
	overflowed atomic.Bool

	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewSystem creates a System with the given initial period and the default
// queue capacities, registers it with em, and starts the loop goroutine.
func NewSystem(em *event.Manager, conn *connector.Connector, initialPeriod time.Duration) *System {
	return NewSystemWithCapacity(em, conn, initialPeriod, DefaultQueueCapacity, DefaultQueueCapacity)
}

// NewSystemWithCapacity is NewSystem with explicit command and telemetry
// queue capacities, for host processes sizing them from config.Config
// rather than accepting the default.
func NewSystemWithCapacity(
	em *event.Manager,
	conn *connector.Connector,
	initialPeriod time.Duration,
	cmdCapacity, telemetryCapacity int,
) *System {
	s := &System{
		em:        em,
		conn:      conn,
		task:      osabs.CreateTask(initialPeriod),
		cmds:      fifo.New[*event.Object](cmdCapacity),
		telemetry: fifo.New[Telemetry](telemetryCapacity),
		stop:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	s.period.Store(int64(initialPeriod))

	em.RegisterHandler(s)

	go s.run()

	return s
}

// GetPeriod returns the current tick period.
func (s *System) GetPeriod() time.Duration {
	return time.Duration(s.period.Load())
}

// Telemetry returns the queue the loop publishes notifications to. There
// must be exactly one consumer draining it, matching fifo.Queue's SPSC
// contract.
func (s *System) Telemetry() *fifo.Queue[Telemetry] {
	return s.telemetry
}

// Stop halts the loop goroutine and unregisters the System from its event
// manager. It blocks until the loop has exited and is safe to call more
// than once.
func (s *System) Stop() {
	s.once.Do(func() {
		close(s.stop)
		<-s.stopped
		s.em.UnregisterHandler(s)
	})
}

// ReceiveEvent implements event.Handler.
func (s *System) ReceiveEvent(e *event.Object) {
	switch e.Type() {
	case event.RTPeriod:
		s.setPeriod(e)
	case event.RTGetPeriod:
		e.SetParam("period_ns", s.period.Load())
		e.Done()
	case event.RTDeviceInsert:
		s.insertDevice(e)
	case event.RTDeviceRemove:
		s.removeDevice(e)
	case event.RTThreadInsert:
		s.insertThread(e)
	case event.RTThreadRemove:
		s.removeThread(e)
	case event.IOLinkInsert:
		s.linkInsert(e)
	case event.IOLinkRemove:
		s.linkRemove(e)
	case event.RTThreadPause, event.RTThreadUnpause, event.RTDevicePause, event.RTDeviceUnpause:
		s.setActive(e)
	case event.IOBlockQuery:
		e.SetParam("devices", s.conn.Devices())
		e.SetParam("threads", s.conn.Threads())
		e.Done()
	case event.IOAllConnectionsQuery:
		e.SetParam("connections", s.allConnections())
		e.Done()
	case event.RTShutdown:
		s.Stop()
		e.Done()
	default:
		e.Done()
	}
}

func (s *System) allConnections() []connector.Connection {
	var all []connector.Connection

	for _, d := range s.conn.Devices() {
		all = append(all, s.conn.Outputs(d)...)
	}

	for _, t := range s.conn.Threads() {
		all = append(all, s.conn.Outputs(t)...)
	}

	return all
}

func (s *System) setPeriod(e *event.Object) {
	period, _ := e.Param("period_ns")
	periodNS, _ := period.(int64)

	if periodNS == s.period.Load() {
		e.Done()

		return
	}

	cmd := event.New(event.RTPeriod, event.Params{"period_ns": periodNS})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) insertDevice(e *event.Object) {
	dev, ok := e.Param("device")
	device, isDevice := dev.(block.Device)

	if !ok || !isDevice {
		e.Done()

		return
	}

	if _, err := s.conn.InsertBlock(device); err != nil {
		e.SetParam("error", err)
		e.Done()

		return
	}

	cmd := event.New(event.RTDeviceInsert, event.Params{"devices": s.conn.Devices()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) removeDevice(e *event.Object) {
	dev, ok := e.Param("device")
	device, isDevice := dev.(block.Device)

	if !ok || !isDevice {
		e.Done()

		return
	}

	device.SetActive(false)
	s.conn.RemoveBlock(device)

	cmd := event.New(event.RTDeviceRemove, event.Params{"devices": s.conn.Devices()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) insertThread(e *event.Object) {
	th, ok := e.Param("thread")
	thread, isThread := th.(block.Thread)

	if !ok || !isThread {
		e.Done()

		return
	}

	if _, err := s.conn.InsertBlock(thread); err != nil {
		e.SetParam("error", err)
		e.Done()

		return
	}

	cmd := event.New(event.RTThreadInsert, event.Params{"threads": s.conn.Threads()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) removeThread(e *event.Object) {
	th, ok := e.Param("thread")
	thread, isThread := th.(block.Thread)

	if !ok || !isThread {
		e.Done()

		return
	}

	thread.SetActive(false)
	s.conn.RemoveBlock(thread)

	cmd := event.New(event.RTThreadRemove, event.Params{"threads": s.conn.Threads()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) linkInsert(e *event.Object) {
	c, ok := e.Param("connection")
	conn, isConn := c.(connector.Connection)

	if !ok || !isConn {
		e.Done()

		return
	}

	if err := s.conn.Connect(conn); err != nil {
		e.SetParam("error", err)
		e.Done()

		return
	}

	cmd := event.New(event.IOLinkInsert, event.Params{"threads": s.conn.Threads()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) linkRemove(e *event.Object) {
	c, ok := e.Param("connection")
	conn, isConn := c.(connector.Connection)

	if !ok || !isConn {
		e.Done()

		return
	}

	s.conn.Disconnect(conn)

	cmd := event.New(event.IOLinkRemove, event.Params{"threads": s.conn.Threads()})
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

func (s *System) setActive(e *event.Object) {
	var params event.Params

	switch e.Type() {
	case event.RTThreadPause, event.RTThreadUnpause:
		th, ok := e.Param("thread")
		if _, isThread := th.(block.Thread); !ok || !isThread {
			e.Done()

			return
		}

		params = event.Params{"thread": th}
	case event.RTDevicePause, event.RTDeviceUnpause:
		d, ok := e.Param("device")
		if _, isDevice := d.(block.Device); !ok || !isDevice {
			e.Done()

			return
		}

		params = event.Params{"device": d}
	}

	cmd := event.New(e.Type(), params)
	s.pushCmd(cmd)
	cmd.Wait()
	e.Done()
}

// pushCmd retries until the command queue has room. This runs on the
// event manager's dispatch goroutine, never on the RT loop, so blocking
// briefly here is harmless.
func (s *System) pushCmd(cmd *event.Object) {
	for s.cmds.Push(cmd) != nil {
		time.Sleep(time.Microsecond)
	}
}

func (s *System) run() {
	// Pinned to its OS thread for the loop's lifetime: the closest Go comes
	// to RTXI's own dedicated real-time task, and it keeps the Go scheduler
	// from ever migrating the tick loop mid-sleep onto a thread under load
	// from unrelated goroutines.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	devices := s.conn.Devices()
	threads := s.conn.Threads()

	defer close(s.stopped)

	for {
		select {
		case <-s.stop:
			s.pushTelemetry(Telemetry{Kind: TelemetryShutdown, At: osabs.GetTime()})

			return
		default:
		}

		s.task.SleepTimestep()

		for _, d := range devices {
			if d.Active() {
				d.Read()
				s.conn.Propagate(d)
			}
		}

		for _, t := range threads {
			if t.Active() {
				t.Execute()
				s.conn.Propagate(t)
			}
		}

		for _, d := range devices {
			if d.Active() {
				d.Write()
			}
		}

		for {
			cmd, ok := s.cmds.Pop()
			if !ok {
				break
			}

			s.applyCmd(cmd, &devices, &threads)
		}
	}
}

func (s *System) applyCmd(cmd *event.Object, devices *[]block.Device, threads *[]block.Thread) {
	switch cmd.Type() {
	case event.RTPeriod:
		period, _ := cmd.Param("period_ns")
		if periodNS, ok := period.(int64); ok {
			s.period.Store(periodNS)
			s.task.SetPeriod(time.Duration(periodNS))
		}

		s.pushTelemetry(Telemetry{Kind: TelemetryPeriodUpdate, Command: cmd, At: osabs.GetTime()})
	case event.RTDeviceInsert, event.RTDeviceRemove:
		if list, ok := cmd.Param("devices"); ok {
			if devList, ok := list.([]block.Device); ok {
				*devices = devList
			}
		}

		s.pushTelemetry(Telemetry{Kind: TelemetryDeviceListUpdate, Command: cmd, At: osabs.GetTime()})
	case event.RTThreadInsert, event.RTThreadRemove, event.IOLinkInsert, event.IOLinkRemove:
		if list, ok := cmd.Param("threads"); ok {
			if thList, ok := list.([]block.Thread); ok {
				*threads = thList
			}
		}

		s.pushTelemetry(Telemetry{Kind: TelemetryThreadListUpdate, Command: cmd, At: osabs.GetTime()})
	case event.RTThreadPause, event.RTThreadUnpause:
		if th, ok := cmd.Param("thread"); ok {
			if thread, ok := th.(block.Thread); ok {
				thread.SetActive(cmd.Type() == event.RTThreadUnpause)
			}
		}

		s.pushTelemetry(Telemetry{Kind: TelemetryThreadListUpdate, Command: cmd, At: osabs.GetTime()})
	case event.RTDevicePause, event.RTDeviceUnpause:
		if d, ok := cmd.Param("device"); ok {
			if device, ok := d.(block.Device); ok {
				device.SetActive(cmd.Type() == event.RTDeviceUnpause)
			}
		}

		s.pushTelemetry(Telemetry{Kind: TelemetryDeviceListUpdate, Command: cmd, At: osabs.GetTime()})
	default:
		s.pushTelemetry(Telemetry{Kind: TelemetryNOOP, Command: cmd, At: osabs.GetTime()})
	}

	cmd.Done()
}

// pushTelemetry never blocks the RT loop and never reaches into the queue's
// consumer side: Push either succeeds or it doesn't, exactly like the
// ring buffer this type is grounded on. A record dropped because the host
// isn't draining fast enough is gone for good — but the loss itself is not
// silent: pushTelemetry latches a flag so the next push that does find room
// is stamped RT_ERROR instead of its own kind, carrying the loss to the host
// a record late since the dropped record can no longer carry it itself.
func (s *System) pushTelemetry(t Telemetry) {
	if s.overflowed.Load() {
		s.overflowed.Store(false)
		t.Kind = TelemetryError
		t.ErrorKind = ErrKindTelemetryOverflow
	}

	if s.telemetry.Push(t) != nil {
		s.overflowed.Store(true)
	}
}
