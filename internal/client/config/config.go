// Package config assembles client settings from defaults, an optional JSON
// file, and command-line flags, in that order of precedence.
package config

import "time"

// Config holds runtime settings for the InventoryPro client.
//
// Fields:
//   - BaseURL: base URL of the backend HTTP API.
//   - PollInterval: how often the notification poller asks for updates.
//   - StateDBPath: path of the local sqlite state database.
//   - LogFile: path of the rotating client log.
type Config struct {
	BaseURL      string
	PollInterval time.Duration
	StateDBPath  string
	LogFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost/inventory-backend/api"
	c.PollInterval = 30 * time.Second
	c.StateDBPath = "inventorypro.db"
	c.LogFile = "inventorypro.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
