package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/panicribbon/internal/errors"
	"github.com/rileyhilliard/panicribbon/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads the services document at path.
// Missing fields are filled from DefaultConfig; the service list is returned
// exactly as written (see Resolve for the cleaned-up form).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if configType(path) == "" {
		v.SetConfigType("json")
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found: "+path,
				"Run 'panicribbon init' to create one")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't parse "+filepath.Base(path),
			"Check the file is valid JSON or YAML")
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Each service needs name, healthCheckUrl and restartScriptPath strings")
	}

	return cfg, nil
}

// LoadOrDefault is the startup path: it never fails.
//
// A missing file is created with DefaultConfig and then loaded. A malformed
// file is logged and replaced (in memory only) by DefaultConfig. The result
// always has at least one service; invalid entries are logged and dropped.
func LoadOrDefault(path string, log logger.Logger) *Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("%s not found, creating default configuration", filepath.Base(path))
		if err := WriteDefault(path); err != nil {
			log.Error("Error creating default %s: %s", filepath.Base(path), errors.Short(err))
		} else {
			log.Info("Created default %s", filepath.Base(path))
		}
	}

	cfg, err := Load(path)
	if err != nil {
		log.Error("Error loading %s: %s", filepath.Base(path), errors.Short(err))
		cfg = &Config{}
	}

	return Resolve(cfg, log)
}

// Resolve fills defaults, drops unusable services, and guarantees at least one service.
func Resolve(cfg *Config, log logger.Logger) *Config {
	out := *cfg

	if out.Interval <= 0 {
		out.Interval = DefaultInterval
	} else if out.Interval < MinInterval {
		log.Warn("Interval %s is below the %s minimum, using %s", out.Interval, MinInterval, MinInterval)
		out.Interval = MinInterval
	}
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.RibbonWidth <= 0 {
		out.RibbonWidth = DefaultRibbonWidth
	}
	if out.LogFile == "" {
		out.LogFile = DefaultLogFile
	}

	out.Services = nil
	for i, svc := range cfg.Services {
		if err := ValidateService(svc); err != nil {
			log.Warn("Skipping service #%d: %s", i+1, errors.Short(err))
			continue
		}
		if strings.TrimSpace(svc.Name) == "" {
			svc.Name = svc.HealthCheckURL
		}
		out.Services = append(out.Services, svc)
	}

	if len(out.Services) == 0 {
		out.Services = []Service{PlaceholderService()}
	}

	log.Info("Loaded %d service(s)", len(out.Services))
	return &out
}

// WriteDefault writes DefaultConfig to path, as YAML for .yaml/.yml and JSON otherwise.
func WriteDefault(path string) error {
	return Write(path, DefaultConfig())
}

// Write serializes cfg to path, as YAML for .yaml/.yml and JSON otherwise.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg, configType(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Couldn't create config directory",
				"Check permissions on "+dir)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check the directory is writable")
	}
	return nil
}

// Marshal renders cfg as "yaml" or JSON (any other format).
// Durations are written as strings like "10s" so the output can be loaded back.
func Marshal(cfg *Config, format string) ([]byte, error) {
	doc := fileForm(cfg)

	if format == "yaml" {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig, "Couldn't encode config as YAML", "")
		}
		return data, nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig, "Couldn't encode config as JSON", "")
	}
	return append(data, '\n'), nil
}

// document is the on-disk shape; durations are strings.
type document struct {
	Services    []Service `json:"services" yaml:"services"`
	Interval    string    `json:"interval,omitempty" yaml:"interval,omitempty"`
	Timeout     string    `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	RibbonWidth int       `json:"ribbonWidth,omitempty" yaml:"ribbonWidth,omitempty"`
	LogFile     string    `json:"logFile,omitempty" yaml:"logFile,omitempty"`
}

func fileForm(cfg *Config) document {
	doc := document{
		Services:    cfg.Services,
		RibbonWidth: cfg.RibbonWidth,
		LogFile:     cfg.LogFile,
	}
	if doc.Services == nil {
		doc.Services = []Service{}
	}
	if cfg.Interval > 0 {
		doc.Interval = cfg.Interval.String()
	}
	if cfg.Timeout > 0 {
		doc.Timeout = cfg.Timeout.String()
	}
	return doc
}

// setDefaults registers the non-service defaults with viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", DefaultInterval.String())
	v.SetDefault("timeout", DefaultTimeout.String())
	v.SetDefault("ribbonWidth", DefaultRibbonWidth)
	v.SetDefault("logFile", DefaultLogFile)
}

// configType maps a file extension to a viper config type, "" if unknown.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
