package event

// Type identifies what an Object represents and, indirectly, who is
// expected to handle it. RT-prefixed types affect the real-time loop
// itself; IO-prefixed types affect the connection graph.
type Type int

// The event types the RT loop and its handlers exchange. NOOP carries no
// payload and exists purely to unblock a manager that is waiting for
// work, e.g. during shutdown.
const (
	NOOP Type = iota
	RTPeriod
	RTGetPeriod
	RTThreadInsert
	RTThreadRemove
	RTThreadPause
	RTThreadUnpause
	RTDeviceInsert
	RTDeviceRemove
	RTDevicePause
	RTDeviceUnpause
	IOLinkInsert
	IOLinkRemove
	IOBlockQuery
	IOAllConnectionsQuery
	RTShutdown
)

// String names the type, mainly for logging.
func (t Type) String() string {
	switch t {
	case NOOP:
		return "NOOP"
	case RTPeriod:
		return "RT_PERIOD"
	case RTGetPeriod:
		return "RT_GET_PERIOD"
	case RTThreadInsert:
		return "RT_THREAD_INSERT"
	case RTThreadRemove:
		return "RT_THREAD_REMOVE"
	case RTThreadPause:
		return "RT_THREAD_PAUSE"
	case RTThreadUnpause:
		return "RT_THREAD_UNPAUSE"
	case RTDeviceInsert:
		return "RT_DEVICE_INSERT"
	case RTDeviceRemove:
		return "RT_DEVICE_REMOVE"
	case RTDevicePause:
		return "RT_DEVICE_PAUSE"
	case RTDeviceUnpause:
		return "RT_DEVICE_UNPAUSE"
	case IOLinkInsert:
		return "IO_LINK_INSERT"
	case IOLinkRemove:
		return "IO_LINK_REMOVE"
	case IOBlockQuery:
		return "IO_BLOCK_QUERY"
	case IOAllConnectionsQuery:
		return "IO_ALL_CONNECTIONS_QUERY"
	case RTShutdown:
		return "RT_SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}
