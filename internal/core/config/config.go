package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Dashboard DashboardConfig `koanf:"dashboard"`
}

type ServerConfig struct {
	Port int    `koanf:"port"`
	Host string `koanf:"host"`
	Mode string `koanf:"mode"` // debug | release
}

type DatasetConfig struct {
	// Records is the number of synthetic line items generated at startup.
	Records int `koanf:"records"`

	// SpanDays is the width of the generated time range.
	SpanDays int `koanf:"span_days"`

	// Seed makes the dataset reproducible across restarts.
	Seed int64 `koanf:"seed"`

	// CatalogPath points at a YAML product catalog. Empty uses the built-in one.
	CatalogPath string `koanf:"catalog_path"`
}

type DashboardConfig struct {
	// RecentOrders is how many records the recent-orders view returns.
	RecentOrders int `koanf:"recent_orders"`

	// ExportRecentOrders is how many records the recent-orders CSV export includes.
	ExportRecentOrders int `koanf:"export_recent_orders"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	if c.Dataset.Records <= 0 {
		return fmt.Errorf("dataset.records must be > 0")
	}
	if c.Dataset.SpanDays <= 0 {
		return fmt.Errorf("dataset.span_days must be > 0")
	}

	if c.Dashboard.RecentOrders <= 0 {
		return fmt.Errorf("dashboard.recent_orders must be > 0")
	}
	if c.Dashboard.ExportRecentOrders <= 0 {
		return fmt.Errorf("dashboard.export_recent_orders must be > 0")
	}
	return nil
}

// Load parses config from defaults, then an optional YAML file, then
// SELLERPULSE_-prefixed env vars (double underscore maps to a dot), and
// validates the result.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                    8080,
		"server.host":                    "0.0.0.0",
		"server.mode":                    "release",
		"dataset.records":                1000,
		"dataset.span_days":              90,
		"dataset.seed":                   42,
		"dataset.catalog_path":           "",
		"dashboard.recent_orders":        5,
		"dashboard.export_recent_orders": 20,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("SELLERPULSE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "SELLERPULSE_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
