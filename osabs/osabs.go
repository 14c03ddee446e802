// Package osabs wraps the handful of OS facilities the RT loop depends on:
// locking memory so the scheduler never pages it out, sleeping for exactly
// one period, and reporting whether the memory lock succeeded. Everything
// funnels through this package
// so rt.System never imports a platform-specific API directly.
package osabs

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
	"github.com/tebeka/atexit"
)

// ErrNoPrivilege is returned by Initiate when the process cannot lock
// memory. Callers may choose to proceed anyway: the RT loop still runs,
// just without the real-time guarantees.
var ErrNoPrivilege = errors.New("osabs: insufficient privilege for real-time scheduling")

// DefaultPeriod is used until the first RTPeriod event changes it.
const DefaultPeriod = time.Millisecond

var (
	initiated bool
	realtime  bool
)

// Initiate locks the process's current and future memory pages and
// registers a Shutdown call via atexit, so a later atexit.Exit still
// releases the lock. It does not change the scheduling policy or priority.
// Returns ErrNoPrivilege (not a fatal error) if the memory lock failed.
func Initiate() error {
	if initiated {
		return nil
	}

	err := lockMemory()
	initiated = true
	realtime = err == nil

	atexit.Register(func() { Shutdown() })

	if err != nil {
		return ErrNoPrivilege
	}

	return nil
}

// Shutdown releases whatever Initiate acquired. Safe to call more than
// once.
func Shutdown() {
	if !initiated {
		return
	}

	unlockMemory()
	initiated = false
	realtime = false
}

// IsRealtime reports whether Initiate succeeded in locking memory.
func IsRealtime() bool {
	return realtime
}

// Task represents the RT loop's notion of a periodic schedule: a fixed
// start time and a period, against which SleepTimestep measures absolute
// deadlines rather than relative ones. Measuring relative to "now" would
// drift by the wakeup latency of every previous tick; Task accumulates
// ticks against its own start time instead, so the loop tracks wall clock
// exactly regardless of how late any single wakeup was.
type Task struct {
	start  time.Time
	period atomic.Int64
	ticks  atomic.Uint64
}

// CreateTask returns a Task anchored to the current time with the given
// initial period. It never allocates beyond the Task value itself.
func CreateTask(period time.Duration) *Task {
	t := &Task{start: time.Now()}
	t.period.Store(int64(period))

	return t
}

// SetPeriod changes the task's period. Already-elapsed ticks are not
// renumbered: the next SleepTimestep call targets start + (ticks+1) *
// the newly stored period.
func (t *Task) SetPeriod(period time.Duration) {
	t.period.Store(int64(period))
}

// Period returns the task's current period.
func (t *Task) Period() time.Duration {
	return time.Duration(t.period.Load())
}

// SleepTimestep blocks until the next multiple of the task's period since
// its start time, then returns. If that deadline has already passed — the
// previous tick overran — it returns immediately rather than sleeping a
// full extra period, so the loop catches back up instead of compounding
// the delay.
func (t *Task) SleepTimestep() {
	n := t.ticks.Add(1)
	deadline := t.start.Add(time.Duration(n) * time.Duration(t.period.Load()))

	if d := time.Until(deadline); d > 0 {
		time.Sleep(d)
	}
}

// SleepTimestep blocks for approximately one period measured from now. It
// exists for callers (tests, ad hoc tools) that have no Task and do not
// need drift-free scheduling; rt.System always schedules through a Task.
func SleepTimestep(period time.Duration) {
	time.Sleep(period)
}

// GetTime returns the current monotonic time, the same clock SleepTimestep
// measures against.
func GetTime() time.Time {
	return time.Now()
}

// CPUPercent reports the calling process's CPU utilization since the last
// call, via gopsutil. Used by the monitoring endpoint, never by the RT
// loop itself.
func CPUPercent(pid int32) (float64, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return 0, err
	}

	return proc.Percent(0)
}
