package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/melusi-muna/login-register-forms/internal/flagx"
)

const envPrefix = "FORMAUTH_"

// parseEnv loads the .env file (if any) into the process environment and
// overlays FORMAUTH_* variables onto cfg. An explicitly named file that
// cannot be read is an error; a missing ./.env is not.
func parseEnv(cfg *Config, args []string) error {
	if path := flagx.EnvFileFlag(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	} else {
		_ = godotenv.Load()
	}

	setString(&cfg.StorageBackend, "STORAGE_BACKEND")
	setString(&cfg.DataDir, "DATA_DIR")
	setString(&cfg.SQLitePath, "SQLITE_PATH")
	setString(&cfg.PostgresDSN, "POSTGRES_DSN")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.RedisKeyPrefix, "REDIS_KEY_PREFIX")
	setString(&cfg.S3Bucket, "S3_BUCKET")
	setString(&cfg.S3Region, "S3_REGION")
	setString(&cfg.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	setString(&cfg.S3RootUser, "S3_ROOT_USER")
	setString(&cfg.S3RootPassword, "S3_ROOT_PASSWORD")
	setString(&cfg.S3KeyPrefix, "S3_KEY_PREFIX")
	setString(&cfg.HTTPAddr, "HTTP_ADDR")
	setString(&cfg.GRPCAddr, "GRPC_ADDR")
	setString(&cfg.LogDriver, "LOG_DRIVER")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFile, "LOG_FILE")

	if v := os.Getenv(envPrefix + "REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sREDIS_DB: %w", envPrefix, err)
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv(envPrefix + "REDIRECT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sREDIRECT_DELAY: %w", envPrefix, err)
		}
		cfg.RedirectDelay = d
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(envPrefix + key); v != "" {
		*dst = v
	}
}
