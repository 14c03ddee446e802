package rt

import (
	"time"

	"github.com/sergiohidalgo818/rtxi/event"
)

// TelemetryKind identifies what changed inside the RT loop. The host side
// drains these off a Queue to drive monitoring without ever touching RT
// loop state directly.
type TelemetryKind int

// The telemetry kinds System ever emits.
const (
	TelemetryNOOP TelemetryKind = iota
	TelemetryPeriodUpdate
	TelemetryDeviceListUpdate
	TelemetryThreadListUpdate
	TelemetryShutdown
	TelemetryError
)

// String names the kind, mainly for logging and the monitoring endpoint.
func (k TelemetryKind) String() string {
	switch k {
	case TelemetryNOOP:
		return "noop"
	case TelemetryPeriodUpdate:
		return "period_update"
	case TelemetryDeviceListUpdate:
		return "device_list_update"
	case TelemetryThreadListUpdate:
		return "thread_list_update"
	case TelemetryShutdown:
		return "shutdown"
	case TelemetryError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrKindTelemetryOverflow stamps a TelemetryError record reporting that at
// least one earlier record was dropped because the RT->host queue was full
// when the RT loop tried to push it — the host wasn't draining fast enough.
// The dropped record itself cannot carry this news, so the next record that
// does find room carries it instead, one record late.
const ErrKindTelemetryOverflow = "telemetry_overflow"

// Telemetry is a single notification pushed from the RT loop onto the
// outbound Queue. It is a plain value, not a pointer: nothing on the host
// side ever needs to wait on it, so there is no done channel to allocate.
// Command, when non-nil, is the originating command this record reports
// the effect of; callers must treat it as read-only, matching the RT
// loop's own read-only access to a command once it has been applied.
type Telemetry struct {
	Kind      TelemetryKind
	Command   *event.Object
	ErrorKind string
	At        time.Time
}
