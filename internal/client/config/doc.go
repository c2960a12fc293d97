// Package config loads runtime configuration for the Papacapim CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv); a .env file in the working
//     directory is loaded first and never overrides variables already set.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Papacapim API
//	-d string   path to the local session database
//	-t int      request timeout (seconds)
//	-l string   log level
//
// Environment
//
//	PAPACAPIM_API_URL, PAPACAPIM_DB, PAPACAPIM_TIMEOUT ("15s"), PAPACAPIM_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:3000",
//	  "database_path": "papacapim.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
