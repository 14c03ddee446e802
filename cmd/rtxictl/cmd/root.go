// Package cmd provides the command-line interface for rtxictl.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rtxictl",
	Short: "rtxictl starts and administers an RTXI real-time host process.",
	Long: `rtxictl starts and administers an RTXI real-time host process.` +
		` It can run a bare RT loop with its monitoring dashboard, query or` +
		` change the tick period of a running instance, and open that` +
		` instance's dashboard in a browser.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
