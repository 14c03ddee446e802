package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sergiohidalgo818/rtxi/config"
	"github.com/sergiohidalgo818/rtxi/connector"
	"github.com/sergiohidalgo818/rtxi/event"
	"github.com/sergiohidalgo818/rtxi/monitoring"
	"github.com/sergiohidalgo818/rtxi/osabs"
	"github.com/sergiohidalgo818/rtxi/rt"
)

var (
	serveEnvFile string
	serveOpen    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a host process: event bus, RT loop, and monitoring dashboard.",
	Long: `Start a host process: an Event Manager, a Connector, and an RT` +
		` System running a periodic loop, with the monitoring dashboard` +
		` exposed over HTTP. Devices and Threads are wired in by whatever` +
		` plugin the embedding program links; rtxictl serve alone starts an` +
		` empty, idle loop useful for exercising the dashboard and period` +
		` controls.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", "", "optional .env file to load configuration from")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the monitoring dashboard in a browser once it is up")
}

func runServe(*cobra.Command, []string) error {
	cfg, err := config.Load(serveEnvFile)
	if err != nil {
		return fmt.Errorf("rtxictl: loading config: %w", err)
	}

	if err := osabs.Initiate(); err != nil {
		fmt.Fprintf(os.Stderr, "rtxictl: running in best-effort mode: %v\n", err)
	}
	defer osabs.Shutdown()

	em := event.NewManager()
	conn := connector.New()
	sys := rt.NewSystemWithCapacity(em, conn, cfg.Period, cfg.CmdQueueCapacity, cfg.TelemetryQueueCapacity)
	defer sys.Stop()

	srv := monitoring.NewServer(conn, sys, em)

	addr, err := srv.Start(cfg.MonitorPort)
	if err != nil {
		return fmt.Errorf("rtxictl: starting monitor: %w", err)
	}
	defer srv.Close()

	url := "http://" + addr
	fmt.Fprintf(os.Stdout, "rtxictl: monitoring dashboard at %s (period %s)\n", url, cfg.Period)

	if serveOpen || cfg.OpenMonitorOnStartup {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "rtxictl: could not open browser: %v\n", err)
		}
	}

	waitForSignal()

	return nil
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
