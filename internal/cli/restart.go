package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/health"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/rileyhilliard/panicribbon/internal/ui"
	"github.com/spf13/cobra"
)

// restartCmd runs one service's restart command
var restartCmd = &cobra.Command{
	Use:   "restart <service>",
	Short: "Run a service's restart command and wait for it",
	Long: `Run the restart command configured for one service, the same command a
click on its red segment would run, and wait for it to finish.

The invocation and exit code are appended to the log file.

Examples:
  panicribbon restart api
  panicribbon restart "Order Service"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return restartCommand(args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(restartCmd)
}

func restartCommand(name string, out io.Writer) error {
	s, err := globalSettings()
	if err != nil {
		return err
	}

	log := openLog(s.logPath(), nil)
	defer closeLog(log)

	cfg := s.loadConfig(logger.NewConsole(os.Stderr))
	return runRestart(health.RegistryFromConfig(cfg), name, health.NewRestarter(log, ""), out)
}

// runRestart launches the named service's restart command and waits for it.
func runRestart(reg *health.Registry, name string, launcher health.Launcher, out io.Writer) error {
	idx, ok := reg.IndexOf(name)
	if !ok {
		names := make([]string, 0, reg.Len())
		for _, spec := range reg.All() {
			names = append(names, spec.Name)
		}
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("No service named '%s'", name),
			"Configured services: "+strings.Join(names, ", "))
	}
	spec, _ := reg.At(idx)

	spinner := ui.NewSpinner("Restarting "+spec.Name, out)
	spinner.Start()

	task, err := launcher.Restart(spec)
	if err != nil {
		spinner.Fail()
		return err
	}

	<-task.Done()
	code := task.ExitCode()
	spinner.SetLabel(fmt.Sprintf("Restarted %s (exit code %d)", spec.Name, code))
	if code != 0 {
		spinner.Fail()
		return errors.New(errors.ErrRestart,
			fmt.Sprintf("Restart command for %s exited with code %d", spec.Name, code),
			"Run it by hand to see its output: "+spec.RestartCommand)
	}
	spinner.Success()
	return nil
}
