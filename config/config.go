// Package config loads and validates the application configuration from a
// YAML or JSON file with SNOW_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/core/metrics"
	"github.com/Jamesx86-64/gvsu-snow-removal-scheduler/infra/notify"
)

type Config struct {
	App        AppConfig        `json:"app"`
	Sheets     SheetsConfig     `json:"sheets"`
	Schedule   ScheduleConfig   `json:"schedule"`
	Logging    LoggingConfig    `json:"logging"`
	History    HistoryConfig    `json:"history"`
	Metrics    metrics.Config   `json:"metrics"`
	Notify     notify.Config    `json:"notify"`
	Monitoring MonitoringConfig `json:"monitoring"`
}

// AppConfig carries process-wide settings.
type AppConfig struct {
	// Env selects the log output format; "dev" uses the console writer.
	Env string `json:"env"`
}

// MonitoringConfig defines settings for Sentry error monitoring.
type MonitoringConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
}

// Load reads the file at path, applies SNOW_ environment overrides
// (SNOW_SCHEDULE__TEAM_SIZE -> schedule.team_size), then defaults and
// validation per section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SNOW_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "snow_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Sheets.SetDefaults()
	cfg.Schedule.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.History.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Notify.SetDefaults()
	if err := cfg.Sheets.Validate(); err != nil {
		return nil, fmt.Errorf("sheets config: %w", err)
	}
	if err := cfg.Schedule.Validate(); err != nil {
		return nil, fmt.Errorf("schedule config: %w", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("logging config: %w", err)
	}
	if err := cfg.History.Validate(); err != nil {
		return nil, fmt.Errorf("history config: %w", err)
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, fmt.Errorf("metrics config: %w", err)
	}
	if err := cfg.Notify.Validate(); err != nil {
		return nil, fmt.Errorf("notify config: %w", err)
	}
	return &cfg, nil
}
