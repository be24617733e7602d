package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panicribbon/internal/errors"
)

// ValidateService checks a single service entry.
// The health check URL is not parsed here; a bad URL shows up as a failed probe.
func ValidateService(svc Service) error {
	if strings.TrimSpace(svc.HealthCheckURL) == "" {
		name := svc.Name
		if name == "" {
			name = "unnamed service"
		}
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s has no healthCheckUrl", name),
			"Add a healthCheckUrl like http://localhost:8080/health")
	}
	return nil
}

// Validate checks a whole document and reports the first problem found.
func Validate(cfg *Config) error {
	if len(cfg.Services) == 0 {
		return errors.New(errors.ErrConfig,
			"No services configured",
			"Add at least one entry under \"services\"")
	}

	seen := make(map[string]bool)
	for _, svc := range cfg.Services {
		if err := ValidateService(svc); err != nil {
			return err
		}
		if svc.Name != "" && seen[svc.Name] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Service name '%s' is used more than once", svc.Name),
				"Give each service a unique name so restarts target the right one")
		}
		seen[svc.Name] = true
	}

	if cfg.Interval != 0 && cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Interval %s is too short", cfg.Interval),
			fmt.Sprintf("Minimum interval is %s", MinInterval))
	}
	if cfg.Timeout < 0 {
		return errors.New(errors.ErrConfig,
			"Timeout can't be negative",
			"Use a duration like 5s")
	}
	if cfg.RibbonWidth < 0 {
		return errors.New(errors.ErrConfig,
			"ribbonWidth can't be negative",
			"Use a width like 2")
	}

	return nil
}
