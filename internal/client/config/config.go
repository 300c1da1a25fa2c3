// Package config holds runtime settings for the client CLI.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerEndpointAddr: base URL of the authentication server.
//   - RequestTimeout: per-request timeout for all server calls.
//   - DatabasePath: path of the local SQLite session store.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	DatabasePath       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "session.db"
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
