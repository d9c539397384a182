// Package config loads runtime configuration for both binaries: the
// interactive terminal client and the form server.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables prefixed FORMAUTH_, optionally read from a .env
//     file given with -e/-env (or ./.env when present).
//  3. Optional JSON file given with -c/-config.
//  4. Command-line flags, which override everything above.
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "2s" or integer
// nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "data_dir": "./data",
//	  "http_addr": ":8080",
//	  "redirect_delay": "2s",
//	  "log_driver": "zap"
//	}
//
// Storage backends: memory, sqlite, postgres, redis, s3.
package config
