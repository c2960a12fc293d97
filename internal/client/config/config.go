package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the Papacapim CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Papacapim REST API.
//   - DatabasePath: SQLite file holding the persisted session.
//   - RequestTimeout: upper bound for a single API call.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:3000"
	c.DatabasePath = "papacapim.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	args := os.Args[1:]
	parseJson(cfg, args)
	loadDotEnv(".env")
	parseEnv(cfg, os.LookupEnv)
	parseFlags(cfg, args)
	return cfg
}
