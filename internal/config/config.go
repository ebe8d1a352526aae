package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/apsystem/apsview/internal/gantt"
)

// Config is the process configuration, read from APSVIEW_* variables.
type Config struct {
	DBPath       string `env:"APSVIEW_DB"`
	LogLevel     string `env:"APSVIEW_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"APSVIEW_LOG_FORMAT" envDefault:"console"`
	LogFile      string `env:"APSVIEW_LOG_FILE"`
	GanttMode    string `env:"APSVIEW_GANTT_MODE" envDefault:"day"`
	ChartColumns int    `env:"APSVIEW_CHART_COLUMNS" envDefault:"48"`
	User         string `env:"APSVIEW_USER"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return finish(&cfg, os.Getenv)
}

// LoadFrom reads the configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return finish(&cfg, func(k string) string { return environ[k] })
}

func finish(cfg *Config, getenv func(string) string) (*Config, error) {
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".apsview", "apsview.db")
	}
	if cfg.User == "" {
		cfg.User = getenv("USER")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if !gantt.Mode(c.GanttMode).Valid() {
		errs = append(errs, fmt.Errorf("APSVIEW_GANTT_MODE: unknown mode %q", c.GanttMode))
	}
	if c.ChartColumns <= 0 {
		errs = append(errs, fmt.Errorf("APSVIEW_CHART_COLUMNS must be > 0, got %d", c.ChartColumns))
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("APSVIEW_LOG_FORMAT: unknown format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
