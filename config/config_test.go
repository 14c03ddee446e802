package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sergiohidalgo818/rtxi/config"
)

var _ = Describe("Load", func() {
	AfterEach(func() {
		for _, name := range []string{
			config.EnvPeriodNS,
			config.EnvMonitorPort,
			config.EnvCmdQueueCap,
			config.EnvTelemetryQueue,
			config.EnvOpenMonitorOnUp,
		} {
			os.Unsetenv(name)
		}
	})

	It("returns the defaults when nothing is set", func() {
		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
	})

	It("overlays environment variables onto the defaults", func() {
		os.Setenv(config.EnvPeriodNS, "500000")
		os.Setenv(config.EnvMonitorPort, "9090")

		cfg, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Period).To(Equal(500 * time.Microsecond))
		Expect(cfg.MonitorPort).To(Equal(9090))
	})

	It("reads a .env file when present", func() {
		dir := GinkgoT().TempDir()
		envPath := filepath.Join(dir, ".env")
		Expect(os.WriteFile(envPath, []byte("RTXI_PERIOD_NS=250000\n"), 0o644)).To(Succeed())

		cfg, err := config.Load(envPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Period).To(Equal(250 * time.Microsecond))
	})

	It("tolerates a missing .env file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "does-not-exist.env"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects an unparsable override", func() {
		os.Setenv(config.EnvMonitorPort, "not-a-number")

		_, err := config.Load("")
		Expect(err).To(HaveOccurred())
	})
})
