package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL   = "PAPACAPIM_API_URL"
	EnvDatabase = "PAPACAPIM_DB"
	EnvTimeout  = "PAPACAPIM_TIMEOUT"
	EnvLogLevel = "PAPACAPIM_LOG_LEVEL"
)

// loadDotEnv exports variables from path into the process environment.
// A missing file is not an error; a malformed one panics.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

func parseEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvDatabase); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
