// Package config loads the handful of settings a host process needs before
// it can start an rt.System: the tick period, FIFO capacities, and where the
// monitoring server should listen. Values come from the process environment,
// optionally seeded from a .env file, never from a config file format of
// their own — matching how small the surface actually is.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/sergiohidalgo818/rtxi/osabs"
	"github.com/sergiohidalgo818/rtxi/rt"
)

// Environment variable names config.Load reads. Unset variables fall back to
// their defaults silently; a present-but-unparsable variable is an error,
// since that almost always means a typo the operator would want to know
// about immediately rather than silently ignored.
const (
	EnvPeriodNS        = "RTXI_PERIOD_NS"
	EnvMonitorPort     = "RTXI_MONITOR_PORT"
	EnvCmdQueueCap     = "RTXI_CMD_QUEUE_CAPACITY"
	EnvTelemetryQueue  = "RTXI_TELEMETRY_QUEUE_CAPACITY"
	EnvOpenMonitorOnUp = "RTXI_OPEN_MONITOR"
)

// Config holds every setting a host process needs before wiring up its
// Connector, EventManager, and System.
type Config struct {
	Period                 time.Duration
	MonitorPort            int
	CmdQueueCapacity       int
	TelemetryQueueCapacity int
	OpenMonitorOnStartup   bool
}

// Default returns the config a bare host process starts with absent any
// environment override.
func Default() Config {
	return Config{
		Period:                 osabs.DefaultPeriod,
		MonitorPort:            0, // 0 lets the OS assign a free port
		CmdQueueCapacity:       rt.DefaultQueueCapacity,
		TelemetryQueueCapacity: rt.DefaultQueueCapacity,
		OpenMonitorOnStartup:   false,
	}
}

// Load starts from Default, then loads a .env file at path (if it exists —
// a missing file is not an error, matching godotenv's typical optional-file
// usage) and overlays any of the Env* variables found in the process
// environment afterward.
func Load(envFilePath string) (Config, error) {
	cfg := Default()

	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				return cfg, err
			}
		}
	}

	if v, ok := os.LookupEnv(EnvPeriodNS); ok {
		ns, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, err
		}

		cfg.Period = time.Duration(ns)
	}

	if v, ok := os.LookupEnv(EnvMonitorPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, err
		}

		cfg.MonitorPort = port
	}

	if v, ok := os.LookupEnv(EnvCmdQueueCap); ok {
		cap, err := strconv.Atoi(v)
		if err != nil {
			return cfg, err
		}

		cfg.CmdQueueCapacity = cap
	}

	if v, ok := os.LookupEnv(EnvTelemetryQueue); ok {
		cap, err := strconv.Atoi(v)
		if err != nil {
			return cfg, err
		}

		cfg.TelemetryQueueCapacity = cap
	}

	if v, ok := os.LookupEnv(EnvOpenMonitorOnUp); ok {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, err
		}

		cfg.OpenMonitorOnStartup = open
	}

	return cfg, nil
}
