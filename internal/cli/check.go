package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/panicribbon/internal/config"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/health"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/rileyhilliard/panicribbon/internal/ui"
	"github.com/rileyhilliard/panicribbon/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxParallelChecks bounds the one-shot fan-out.
const maxParallelChecks = 8

// checkCmd probes every service once
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every service once and print the results",
	Long: `Probe every configured service once, in parallel, and print a table of
the results. Exits with status 1 if any service is unhealthy, so it can be
used from scripts and CI.

Examples:
  panicribbon check
  panicribbon check --timeout 2s && echo all good`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkCommand(cmd.Context(), os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkCommand(ctx context.Context, out io.Writer) error {
	s, err := globalSettings()
	if err != nil {
		return err
	}

	cfg := s.loadConfig(logger.NewConsole(os.Stderr))
	return runChecks(ctx, cfg, health.NewChecker(health.WithTimeout(cfg.Timeout)), out)
}

// runChecks probes every service in cfg with prober and prints the table.
func runChecks(ctx context.Context, cfg *config.Config, prober health.Prober, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	reg := health.RegistryFromConfig(cfg)

	spinner := ui.NewSpinner(fmt.Sprintf("Checking %d %s", reg.Len(), util.Pluralize(reg.Len(), "service", "services")), out)
	spinner.Start()

	results := probeAll(ctx, reg, prober)

	rows := checkRows(reg, results)
	unhealthy := 0
	for _, r := range rows {
		if !r.Healthy {
			unhealthy++
		}
	}

	if unhealthy > 0 {
		spinner.Fail()
	} else {
		spinner.Success()
	}
	fmt.Fprintln(out, ui.RenderCheckTable(rows))

	if unhealthy > 0 {
		return errors.New(errors.ErrProbe,
			fmt.Sprintf("%d of %d %s unhealthy", unhealthy, reg.Len(), util.Pluralize(reg.Len(), "service", "services")),
			"Run 'panicribbon restart <name>' or check the service logs")
	}
	return nil
}

// probeAll probes every service concurrently; results are index-aligned with reg.
func probeAll(ctx context.Context, reg *health.Registry, prober health.Prober) []health.Observation {
	results := make([]health.Observation, reg.Len())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)
	for i, spec := range reg.All() {
		g.Go(func() error {
			results[i] = prober.Probe(gctx, spec)
			return nil
		})
	}
	// Probes report failures in their observation, never as an error.
	_ = g.Wait()

	return results
}

func checkRows(reg *health.Registry, results []health.Observation) []ui.CheckRow {
	rows := make([]ui.CheckRow, 0, reg.Len())
	for i, spec := range reg.All() {
		obs := results[i]
		row := ui.CheckRow{
			Service:    spec.Name,
			URL:        spec.HealthCheckURL,
			Healthy:    obs.Healthy,
			StatusCode: obs.StatusCode,
			Latency:    health.Status{LatencyMs: obs.LatencyMs}.LatencyText(),
		}
		if obs.Err != nil {
			row.Detail = errors.Short(obs.Err)
		}
		rows = append(rows, row)
	}
	return rows
}
