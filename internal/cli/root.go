package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag   string
	logFileFlag  string
	intervalFlag string
	timeoutFlag  string
)

// rootCmd runs the ribbon when no subcommand is given
var rootCmd = &cobra.Command{
	Use:   "panicribbon",
	Short: "A health ribbon for your services, pinned to the edge of the terminal",
	Long: `panicribbon polls each configured service's health endpoint and shows the
result as a colored ribbon along the right edge of the terminal: green for
healthy, red for anything else.

Hover a segment to see the service name and latency. Click a red segment to
run that service's restart command. Right-click for refresh and exit.

Services are read from services.json in the current directory; a default one
is created on first run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(false)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "services file (default services.json)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file (default panic.log)")
	rootCmd.PersistentFlags().StringVar(&intervalFlag, "interval", "", "time between checks, overrides the config (e.g., 10s)")
	rootCmd.PersistentFlags().StringVar(&timeoutFlag, "timeout", "", "per-check timeout, overrides the config (e.g., 5s)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" {
				fmt.Fprintf(os.Stderr, "Unknown command %q. Run 'panicribbon --help' for usage.\n", name)
				os.Exit(1)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's error.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
