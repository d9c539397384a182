package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/melusi-muna/login-register-forms/internal/flagx"
	"github.com/melusi-muna/login-register-forms/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overwrite the runtime Config.
type JsonConfig struct {
	StorageBackend string          `json:"storage_backend"`
	DataDir        string          `json:"data_dir"`
	SQLitePath     string          `json:"sqlite_path"`
	PostgresDSN    string          `json:"postgres_dsn"`
	RedisAddr      string          `json:"redis_addr"`
	RedisPassword  string          `json:"redis_password"`
	RedisDB        *int            `json:"redis_db"`
	RedisKeyPrefix string          `json:"redis_key_prefix"`
	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
	S3RootUser     string          `json:"s3_root_user"`
	S3RootPassword string          `json:"s3_root_password"`
	S3KeyPrefix    string          `json:"s3_key_prefix"`
	HTTPAddr       string          `json:"http_addr"`
	GRPCAddr       string          `json:"grpc_addr"`
	RedirectDelay  *timex.Duration `json:"redirect_delay"`
	LogDriver      string          `json:"log_driver"`
	LogLevel       string          `json:"log_level"`
	LogFile        string          `json:"log_file"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.StorageBackend, jc.StorageBackend)
	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.SQLitePath, jc.SQLitePath)
	overlay(&cfg.PostgresDSN, jc.PostgresDSN)
	overlay(&cfg.RedisAddr, jc.RedisAddr)
	overlay(&cfg.RedisPassword, jc.RedisPassword)
	overlay(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3RootUser, jc.S3RootUser)
	overlay(&cfg.S3RootPassword, jc.S3RootPassword)
	overlay(&cfg.S3KeyPrefix, jc.S3KeyPrefix)
	overlay(&cfg.HTTPAddr, jc.HTTPAddr)
	overlay(&cfg.GRPCAddr, jc.GRPCAddr)
	overlay(&cfg.LogDriver, jc.LogDriver)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFile, jc.LogFile)

	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.RedirectDelay != nil {
		cfg.RedirectDelay = jc.RedirectDelay.Duration
	}
	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
