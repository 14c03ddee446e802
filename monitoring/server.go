// Package monitoring exposes an HTTP surface over a running RT system: the
// current period, the registered device and thread lists, the connection
// graph, process resource usage, and an on-demand CPU profile capture.
// The one handler that changes RT state, setting the period, does so
// through the Event Manager, the same synchronous post/wait path any other
// caller uses — this package adds a transport, not a second way into the
// RT loop. The device, thread and connection listings are also queried
// through the Event Manager; the period and block-detail handlers read the
// System and Connector directly.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sergiohidalgo818/rtxi/block"
	"github.com/sergiohidalgo818/rtxi/connector"
	"github.com/sergiohidalgo818/rtxi/event"
	"github.com/sergiohidalgo818/rtxi/osabs"
	"github.com/sergiohidalgo818/rtxi/rt"
)

// Server serves a view of a Connector and System over HTTP, plus one write
// path that changes the period.
type Server struct {
	conn *connector.Connector
	sys  *rt.System
	em   *event.Manager

	listener net.Listener
}

// NewServer returns a Server over the given Connector, System, and the
// Event Manager the System is registered with. The Event Manager carries
// the block/connection query events (IOBlockQuery, IOAllConnectionsQuery)
// and the RTPeriod event posted by setPeriod.
func NewServer(conn *connector.Connector, sys *rt.System, em *event.Manager) *Server {
	return &Server{conn: conn, sys: sys, em: em}
}

// Start binds a TCP listener on port (0 picks a free port) and serves until
// the process exits. It returns the address actually bound, which matters
// when port is 0.
func (s *Server) Start(port int) (string, error) {
	r := mux.NewRouter()
	r.HandleFunc("/api/period", s.period).Methods(http.MethodGet)
	r.HandleFunc("/api/period", s.setPeriod).Methods(http.MethodPost)
	r.HandleFunc("/api/devices", s.devices)
	r.HandleFunc("/api/threads", s.threads)
	r.HandleFunc("/api/connections", s.connections)
	r.HandleFunc("/api/block/{name}", s.blockDetail)
	r.HandleFunc("/api/resource", s.resource)
	r.HandleFunc("/api/profile", s.profile)

	addr := ":0"
	if port > 0 {
		addr = ":" + strconv.Itoa(port)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", err
	}

	s.listener = listener

	go func() {
		_ = http.Serve(listener, r)
	}()

	return listener.Addr().String(), nil
}

// Close stops accepting new connections. In-flight requests are not
// cancelled.
func (s *Server) Close() error {
	if s.listener == nil {
		return nil
	}

	return s.listener.Close()
}

func (s *Server) period(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]int64{"period_ns": int64(s.sys.GetPeriod())})
}

// setPeriod is the one write path this package exposes: it posts an
// RT_PERIOD_EVENT through the Event Manager exactly as any other caller
// would, so a period change requested over HTTP goes through the same
// FIFO/command/telemetry round trip as one requested in-process — there is
// no shortcut into the RT loop's state from here.
func (s *Server) setPeriod(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PeriodNS int64 `json:"period_ns"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PeriodNS <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, "body must be {\"period_ns\": <positive int64>}")

		return
	}

	e := event.New(event.RTPeriod, event.Params{"period_ns": body.PeriodNS})
	s.em.PostEvent(e)

	writeJSON(w, map[string]int64{"period_ns": int64(s.sys.GetPeriod())})
}

type blockInfo struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (s *Server) devices(w http.ResponseWriter, _ *http.Request) {
	e := event.New(event.IOBlockQuery, nil)
	s.em.PostEvent(e)

	devices, _ := e.Param("devices")
	devList, _ := devices.([]block.Device)

	out := make([]blockInfo, 0, len(devList))
	for _, d := range devList {
		out = append(out, blockInfo{Name: d.Name(), Active: d.Active()})
	}

	writeJSON(w, out)
}

func (s *Server) threads(w http.ResponseWriter, _ *http.Request) {
	e := event.New(event.IOBlockQuery, nil)
	s.em.PostEvent(e)

	threads, _ := e.Param("threads")
	thList, _ := threads.([]block.Thread)

	out := make([]blockInfo, 0, len(thList))
	for _, t := range thList {
		out = append(out, blockInfo{Name: t.Name(), Active: t.Active()})
	}

	writeJSON(w, out)
}

type connectionInfo struct {
	Src     string `json:"src"`
	SrcDir  string `json:"src_dir"`
	SrcPort int    `json:"src_port"`
	Dst     string `json:"dst"`
	DstPort int    `json:"dst_port"`
}

func (s *Server) connections(w http.ResponseWriter, _ *http.Request) {
	e := event.New(event.IOAllConnectionsQuery, nil)
	s.em.PostEvent(e)

	conns, _ := e.Param("connections")
	connList, _ := conns.([]connector.Connection)

	out := make([]connectionInfo, 0, len(connList))
	for _, c := range connList {
		out = append(out, connectionInfo{
			Src:     c.Src.Name(),
			SrcDir:  c.SrcDir.String(),
			SrcPort: c.SrcPort,
			Dst:     c.Dst.Name(),
			DstPort: c.DstPort,
		})
	}

	writeJSON(w, out)
}

// blockDetail reflects a single block's current port contents via goseth,
// the same reflective serializer the teacher's monitor uses for component
// inspection — here rooted at the block value itself since ports, not
// arbitrary nested component fields, are what an RT system operator needs
// to see.
func (s *Server) blockDetail(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	b := s.findBlock(name)
	if b == nil {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "block %q not found", name)

		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(b)
	serializer.SetMaxDepth(2)

	if err := serializer.Serialize(w); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())
	}
}

func (s *Server) findBlock(name string) block.Block {
	for _, d := range s.conn.Devices() {
		if d.Name() == name {
			return d
		}
	}

	for _, t := range s.conn.Threads() {
		if t.Name() == name {
			return t
		}
	}

	return nil
}

type resourceInfo struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemoryRSS  uint64  `json:"memory_rss"`
}

func (s *Server) resource(w http.ResponseWriter, _ *http.Request) {
	pid := int32(os.Getpid())

	cpuPercent, err := osabs.CPUPercent(pid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())

		return
	}

	proc, err := process.NewProcess(pid)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())

		return
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())

		return
	}

	writeJSON(w, resourceInfo{CPUPercent: cpuPercent, MemoryRSS: mem.RSS})
}

// profile captures one second of CPU profile and returns it as a parsed
// google/pprof profile.Profile, matching the teacher's on-demand capture
// endpoint. A full second blocks the requesting connection but never the
// RT loop, which this package never touches directly.
func (s *Server) profile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	if err := pprof.StartCPUProfile(buf); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())

		return
	}

	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, err.Error())

		return
	}

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
