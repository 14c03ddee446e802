package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var periodAddr string

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Query or change the tick period of a running rtxictl serve instance.",
}

var periodGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current tick period.",
	RunE:  runPeriodGet,
}

var periodSetCmd = &cobra.Command{
	Use:   "set <duration>",
	Short: "Set the tick period, e.g. \"500us\" or \"2ms\".",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodSet,
}

func init() {
	rootCmd.AddCommand(periodCmd)
	periodCmd.AddCommand(periodGetCmd)
	periodCmd.AddCommand(periodSetCmd)

	periodCmd.PersistentFlags().StringVar(&periodAddr, "addr", "http://localhost:8080",
		"base address of the running rtxictl serve instance")
}

type periodResponse struct {
	PeriodNS int64 `json:"period_ns"`
}

func runPeriodGet(*cobra.Command, []string) error {
	resp, err := http.Get(periodAddr + "/api/period")
	if err != nil {
		return fmt.Errorf("rtxictl: %w", err)
	}
	defer resp.Body.Close()

	var body periodResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("rtxictl: decoding response: %w", err)
	}

	fmt.Println(time.Duration(body.PeriodNS))

	return nil
}

func runPeriodSet(_ *cobra.Command, args []string) error {
	period, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("rtxictl: parsing duration %q: %w", args[0], err)
	}

	payload, err := json.Marshal(periodResponse{PeriodNS: int64(period)})
	if err != nil {
		return err
	}

	resp, err := http.Post(periodAddr+"/api/period", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("rtxictl: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rtxictl: server returned %s", resp.Status)
	}

	fmt.Printf("period set to %s\n", period)

	return nil
}
