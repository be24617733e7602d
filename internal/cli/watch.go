package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/health"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/rileyhilliard/panicribbon/internal/ribbon"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var watchHeadless bool

// watchCmd shows the ribbon
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the health ribbon (default command)",
	Long: `Start polling every configured service and show the health ribbon along
the right edge of the terminal.

Mouse:
  hover        Show service name and latency
  left-click   Run the restart command of an unhealthy service
  right-click  Command menu (Refresh now / Exit)

Keyboard shortcuts:
  up/k, down/j  Select a service
  enter         Restart the selected service if unhealthy
  m             Command menu for the selected service
  r             Refresh the selected service now
  ?             Show help
  q / Ctrl+C    Exit

With --headless, or when stdout is not a terminal, no ribbon is drawn: checks
run on schedule and results go to the log and stdout until interrupted.

Examples:
  panicribbon
  panicribbon watch --interval 5s
  panicribbon watch --headless --config /etc/panicribbon/services.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchHeadless)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchHeadless, "headless", false, "check and log only, without the ribbon")
	rootCmd.AddCommand(watchCmd)
}

// watchCommand loads the services, starts the scheduler and runs the ribbon
// (or waits for a signal when headless).
func watchCommand(headless bool) error {
	s, err := globalSettings()
	if err != nil {
		return err
	}

	interactive := !headless && term.IsTerminal(int(os.Stdout.Fd()))

	// The ribbon owns the screen, so only mirror to stdout without it.
	var mirror logger.Logger
	if !interactive {
		mirror = logger.NewConsole(os.Stdout)
	}
	log := openLog(s.logPath(), mirror)
	defer closeLog(log)

	if !headless && !interactive {
		err := errors.New(errors.ErrRender, "stdout is not a terminal", "Running headless")
		log.Warn("%s", errors.Short(err))
	}

	cfg := s.loadConfig(log)
	engine := newEngine(cfg, log)
	engine.Start()
	defer engine.Shutdown()

	if !interactive {
		return runHeadless(engine)
	}

	model := ribbon.NewModel(engine, ribbon.Options{
		Width:  cfg.RibbonWidth,
		Logger: log,
	})
	p := tea.NewProgram(model, ribbon.ProgramOptions()...)
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"The ribbon display failed",
			"Try 'panicribbon watch --headless'")
	}
	return nil
}

// runHeadless blocks until SIGINT or SIGTERM.
func runHeadless(engine *health.Engine) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	engine.Shutdown()
	return nil
}
