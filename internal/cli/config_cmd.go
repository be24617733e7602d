package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/panicribbon/internal/config"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/spf13/cobra"
)

var configFormatFlag string

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Load the services file the same way the ribbon does, apply the flag
overrides and defaults, and print the result.

Skipped entries and fallbacks are reported on stderr.

Examples:
  panicribbon config
  panicribbon config --format json
  panicribbon config --config services.yaml --interval 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(configFormatFlag, os.Stdout)
	},
}

func init() {
	configCmd.Flags().StringVar(&configFormatFlag, "format", "yaml", "output format (yaml or json)")
	rootCmd.AddCommand(configCmd)
}

func configCommand(format string, out io.Writer) error {
	if format != "yaml" && format != "json" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown format: %s", format),
			"Supported formats: yaml, json")
	}

	s, err := globalSettings()
	if err != nil {
		return err
	}

	cfg := s.loadConfig(logger.NewConsole(os.Stderr))
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
