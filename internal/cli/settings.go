package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/panicribbon/internal/config"
	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/health"
	"github.com/rileyhilliard/panicribbon/internal/logger"
)

// settings are the global flags after parsing.
type settings struct {
	ConfigPath string
	LogPath    string // empty means "from the config file, else panic.log"
	Interval   time.Duration
	Timeout    time.Duration
}

// parseSettings validates the global flags.
func parseSettings(configPath, logPath, interval, timeout string) (settings, error) {
	s := settings{ConfigPath: configPath, LogPath: logPath}
	if s.ConfigPath == "" {
		s.ConfigPath = config.DefaultConfigFile
	}

	var err error
	if s.Interval, err = parseDurationFlag("interval", interval); err != nil {
		return s, err
	}
	if s.Interval != 0 && s.Interval < config.MinInterval {
		return s, errors.New(errors.ErrConfig,
			"Interval too short",
			fmt.Sprintf("Minimum interval is %s", config.MinInterval))
	}
	if s.Timeout, err = parseDurationFlag("timeout", timeout); err != nil {
		return s, err
	}
	return s, nil
}

func parseDurationFlag(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid %s: %s", name, value),
			"Use a positive duration like 500ms, 5s, or 1m")
	}
	return d, nil
}

// globalSettings parses the persistent root flags.
func globalSettings() (settings, error) {
	return parseSettings(configFlag, logFileFlag, intervalFlag, timeoutFlag)
}

// logPath picks the log file: the flag, then the config file's logFile, then
// the default. The config is peeked without logging since the log isn't open yet.
func (s settings) logPath() string {
	if s.LogPath != "" {
		return s.LogPath
	}
	if cfg, err := config.Load(s.ConfigPath); err == nil && cfg.LogFile != "" {
		return cfg.LogFile
	}
	return config.DefaultLogFile
}

// loadConfig loads the services file and applies flag overrides.
func (s settings) loadConfig(log logger.Logger) *config.Config {
	cfg := config.LoadOrDefault(s.ConfigPath, log)
	if s.Interval > 0 {
		cfg.Interval = s.Interval
	}
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	return cfg
}

// openLog opens the append-only log file. If it can't be opened, logging
// continues on the mirror alone.
func openLog(path string, mirror logger.Logger) logger.Logger {
	fl, err := logger.OpenFile(path, mirror)
	if err != nil {
		if mirror == nil {
			return logger.Noop()
		}
		mirror.Warn("Couldn't open log file %s: %v", path, err)
		return mirror
	}
	return fl
}

// closeLog closes log if it owns a file.
func closeLog(log logger.Logger) {
	if fl, ok := log.(*logger.FileLogger); ok {
		_ = fl.Close()
	}
}

// newEngine builds the health engine for cfg.
func newEngine(cfg *config.Config, log logger.Logger) *health.Engine {
	return health.NewEngine(health.RegistryFromConfig(cfg), health.Options{
		Interval: cfg.Interval,
		Prober:   health.NewChecker(health.WithTimeout(cfg.Timeout)),
		Launcher: health.NewRestarter(log, ""),
		Logger:   log,
	})
}
