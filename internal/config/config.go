// Package config loads runtime settings for the catalog application.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: path of the local SQLite file backing the key-value store.
//   - FetchDelay: artificial latency applied when the catalog reloads, kept
//     from the reference behavior to exercise loading states. Zero disables it.
type Config struct {
	DatabasePath string
	FetchDelay   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "vitrine.db"
	c.FetchDelay = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
