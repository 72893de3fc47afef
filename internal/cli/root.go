package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	callerID  string
)

var rootCmd = &cobra.Command{
	Use:   "statsctl",
	Short: "Linguaverse statistics service CLI",
	Long: `statsctl is the command-line interface for the Linguaverse
statistics service.

Record activity events, inspect the event log, and pull student,
registration, lesson, and platform reports from your terminal.`,
	Version: "0.1.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "http://localhost:3005", "statistics service URL")
	rootCmd.PersistentFlags().StringVar(&callerID, "caller", "", "caller user ID sent as X-User-ID")
}

func newClient() *StatsClient {
	return NewStatsClient(serverURL, callerID)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func success(format string, args ...interface{}) {
	fmt.Printf("✓ "+format+"\n", args...)
}
