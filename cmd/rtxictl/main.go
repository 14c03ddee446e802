// Command rtxictl is the operator-facing entry point for a host process: it
// starts a bare RT system (no devices or threads wired in — those come from
// plugins the host links in, outside this package's scope), serves the
// monitoring dashboard, and offers a couple of administrative subcommands
// that talk to a running instance over HTTP.
package main

import "github.com/sergiohidalgo818/rtxi/cmd/rtxictl/cmd"

func main() {
	cmd.Execute()
}
