// Package config loads runtime settings for the planner CLI. Values are
// layered: built-in defaults, then a JSON file (-c/-config), then flags,
// with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the planner client.
//
// CacheTTL bounds how long a fetched collection is served without a remote
// read; RetryAttempts/RetryBaseDelay tune the transport backoff. They are
// configuration on purpose: no repository hard-codes its own values.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	CacheTTL           time.Duration
	RetryAttempts      uint64
	RetryBaseDelay     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.CacheTTL = 30 * time.Second
	c.RetryAttempts = 3
	c.RetryBaseDelay = 100 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
