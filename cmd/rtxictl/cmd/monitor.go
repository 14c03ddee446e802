package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var monitorAddr string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open the monitoring dashboard of a running rtxictl serve instance in a browser.",
	RunE:  runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().StringVar(&monitorAddr, "addr", "http://localhost:8080",
		"base address of the running rtxictl serve instance")
}

func runMonitor(*cobra.Command, []string) error {
	if err := browser.OpenURL(monitorAddr); err != nil {
		return fmt.Errorf("rtxictl: opening browser: %w", err)
	}

	return nil
}
