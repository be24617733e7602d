package config

import "time"

// Defaults for the ribbon and its health checks.
const (
	DefaultConfigFile  = "services.json"
	DefaultLogFile     = "panic.log"
	DefaultInterval    = 10 * time.Second
	DefaultTimeout     = 5 * time.Second
	DefaultRibbonWidth = 2

	// MinInterval is the shortest accepted tick interval.
	MinInterval = 500 * time.Millisecond
)

// Placeholder values used when the configuration yields no services.
const (
	PlaceholderName           = "Localhost"
	PlaceholderURL            = "http://localhost:8080/health"
	PlaceholderRestartCommand = "echo 'No restart script configured'"
)

// Config is the complete services document.
type Config struct {
	Services []Service `json:"services" yaml:"services" mapstructure:"services"`

	// Interval between scheduler ticks.
	Interval time.Duration `json:"interval,omitempty" yaml:"interval,omitempty" mapstructure:"interval"`

	// Timeout for a single health check request.
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty" mapstructure:"timeout"`

	// RibbonWidth is the width of the ribbon in terminal cells.
	RibbonWidth int `json:"ribbonWidth,omitempty" yaml:"ribbonWidth,omitempty" mapstructure:"ribbonWidth"`

	// LogFile is where log lines are appended.
	LogFile string `json:"logFile,omitempty" yaml:"logFile,omitempty" mapstructure:"logFile"`
}

// Service is one monitored service entry.
type Service struct {
	// Name is shown in the tooltip and the logs.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// HealthCheckURL receives a GET on every tick; only a 200 counts as healthy.
	HealthCheckURL string `json:"healthCheckUrl" yaml:"healthCheckUrl" mapstructure:"healthCheckUrl"`

	// RestartScriptPath is a shell command run verbatim when the operator
	// clicks an unhealthy segment.
	RestartScriptPath string `json:"restartScriptPath" yaml:"restartScriptPath" mapstructure:"restartScriptPath"`
}

// PlaceholderService returns the single service used when nothing usable is configured.
func PlaceholderService() Service {
	return Service{
		Name:              PlaceholderName,
		HealthCheckURL:    PlaceholderURL,
		RestartScriptPath: PlaceholderRestartCommand,
	}
}

// DefaultConfig returns the document written when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Services:    []Service{PlaceholderService()},
		Interval:    DefaultInterval,
		Timeout:     DefaultTimeout,
		RibbonWidth: DefaultRibbonWidth,
		LogFile:     DefaultLogFile,
	}
}
