package config

import (
	"flag"
	"io"

	"github.com/melusi-muna/login-register-forms/internal/flagx"
)

var knownFlags = []string{
	"-backend", "-data", "-sqlite", "-dsn", "-redis", "-bucket",
	"-http", "-grpc", "-delay", "-log-driver", "-log-level", "-log-file",
}

// parseFlags overlays cfg with command-line flags:
//
//	-backend string     storage backend (memory, sqlite, postgres, redis, s3)
//	-data string        data directory for local storage and logs
//	-sqlite string      SQLite file name or path
//	-dsn string         PostgreSQL DSN
//	-redis string       Redis address
//	-bucket string      S3 bucket
//	-http string        HTTP listen address
//	-grpc string        gRPC listen address
//	-delay duration     delay before a success message switches views
//	-log-driver string  slog or zap
//	-log-level string   debug, info, warn, error
//	-log-file string    rotated log file
//
// Flags owned by other loaders (-c, -e) are filtered out first.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("formauth", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageBackend, "backend", cfg.StorageBackend, "storage backend")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "SQLite file")
	fs.StringVar(&cfg.PostgresDSN, "dsn", cfg.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.S3Bucket, "bucket", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc", cfg.GRPCAddr, "gRPC listen address")
	fs.DurationVar(&cfg.RedirectDelay, "delay", cfg.RedirectDelay, "redirect delay")
	fs.StringVar(&cfg.LogDriver, "log-driver", cfg.LogDriver, "log driver")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file")

	return fs.Parse(filtered)
}
