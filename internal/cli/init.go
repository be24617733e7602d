package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/panicribbon/internal/config"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initForce          bool
	initNonInteractive bool
	initName           string
	initURL            string
	initRestart        string
)

// initCmd creates a services file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a services.json configuration",
	Long: `Create a services file describing the services to monitor.

Prompts for each service's name, health check URL and restart command.
With --non-interactive (or without a terminal) the flags are used instead,
falling back to the built-in Localhost placeholder.

Examples:
  panicribbon init
  panicribbon init --non-interactive --name api --url http://localhost:3000/health --restart "systemctl restart api"
  panicribbon init --config services.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFlag
		if path == "" {
			path = config.DefaultConfigFile
		}
		return Init(InitOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive || !term.IsTerminal(int(os.Stdin.Fd())),
			Service: config.Service{
				Name:              initName,
				HealthCheckURL:    initURL,
				RestartScriptPath: initRestart,
			},
			Out: os.Stdout,
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing file")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "don't prompt, use flags and defaults")
	initCmd.Flags().StringVar(&initName, "name", "", "service name")
	initCmd.Flags().StringVar(&initURL, "url", "", "health check URL")
	initCmd.Flags().StringVar(&initRestart, "restart", "", "restart command")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string
	Overwrite      bool           // Overwrite an existing file without asking
	NonInteractive bool           // Skip prompts
	Service        config.Service // Pre-filled first service
	Out            io.Writer
}

// Init writes a new services file.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	if _, err := os.Stat(opts.Path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", opts.Path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("'%s' already exists. Overwrite?", opts.Path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	var services []config.Service
	if opts.NonInteractive {
		svc, err := nonInteractiveService(opts.Service)
		if err != nil {
			return err
		}
		services = []config.Service{svc}
	} else {
		var err error
		services, err = promptServices(opts.Service)
		if err != nil {
			return err
		}
	}

	cfg := config.DefaultConfig()
	cfg.Services = services
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(opts.Path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "%s Created %s with %d service(s)\n\n", ui.SymbolSuccess, opts.Path, len(services))
	fmt.Fprintln(opts.Out, "Next steps:")
	fmt.Fprintln(opts.Out, "  panicribbon check  - Probe every service once")
	fmt.Fprintln(opts.Out, "  panicribbon        - Show the ribbon")
	return nil
}

// nonInteractiveService fills blanks in svc from the placeholder service.
func nonInteractiveService(svc config.Service) (config.Service, error) {
	placeholder := config.PlaceholderService()
	if strings.TrimSpace(svc.HealthCheckURL) == "" {
		svc.HealthCheckURL = placeholder.HealthCheckURL
		if svc.Name == "" {
			svc.Name = placeholder.Name
		}
	}
	if svc.Name == "" {
		svc.Name = svc.HealthCheckURL
	}
	if svc.RestartScriptPath == "" {
		svc.RestartScriptPath = placeholder.RestartScriptPath
	}
	if err := config.ValidateService(svc); err != nil {
		return svc, err
	}
	return svc, nil
}

// promptServices asks for services until the user stops adding them.
func promptServices(first config.Service) ([]config.Service, error) {
	var services []config.Service
	next := first

	for {
		svc := next
		more := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Service name").
					Description("Shown in the tooltip and the log").
					Placeholder(config.PlaceholderName).
					Value(&svc.Name).
					Validate(requireNonEmpty("service name")),
				huh.NewInput().
					Title("Health check URL").
					Description("Healthy means this URL answers a GET with 200").
					Placeholder(config.PlaceholderURL).
					Value(&svc.HealthCheckURL).
					Validate(requireNonEmpty("health check URL")),
				huh.NewInput().
					Title("Restart command").
					Description("Run through the shell when you click the red segment").
					Placeholder("systemctl restart my-service").
					Value(&svc.RestartScriptPath),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another service?").
					Value(&more),
			),
		)

		if err := form.Run(); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}

		if strings.TrimSpace(svc.RestartScriptPath) == "" {
			svc.RestartScriptPath = config.PlaceholderRestartCommand
		}
		services = append(services, svc)

		if !more {
			return services, nil
		}
		next = config.Service{}
	}
}

func requireNonEmpty(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
