// Package backends builds the storage.Store selected by config.
package backends

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/melusi-muna/login-register-forms/internal/common"
	"github.com/melusi-muna/login-register-forms/internal/config"
	"github.com/melusi-muna/login-register-forms/internal/filex"
	"github.com/melusi-muna/login-register-forms/internal/logging"
	"github.com/melusi-muna/login-register-forms/internal/storage"
	"github.com/melusi-muna/login-register-forms/internal/storage/redisstore"
	"github.com/melusi-muna/login-register-forms/internal/storage/s3store"
	"github.com/melusi-muna/login-register-forms/internal/storage/sqlstore"
)

const redisPingTimeout = 2 * time.Second

func nopClose() error { return nil }

// Open returns the configured store and a function releasing its resources.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (storage.Store, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Info(ctx, "storage opened", "backend", cfg.StorageBackend)
		return storage.NewMemoryStore(), nopClose, nil

	case config.BackendSQLite:
		path := cfg.SQLitePath
		if !filepath.IsAbs(path) {
			dir, err := filex.EnsureDir(cfg.DataDir)
			if err != nil {
				return nil, nil, err
			}
			path = filepath.Join(dir, path)
		}
		db, err := sqlstore.OpenSQLite(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "storage opened", "backend", cfg.StorageBackend, "path", path)
		return sqlstore.New(db, sqlstore.DialectSQLite), db.Close, nil

	case config.BackendPostgres:
		db, err := sqlstore.OpenPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		log.Info(ctx, "storage opened", "backend", cfg.StorageBackend)
		return sqlstore.New(db, sqlstore.DialectPostgres), db.Close, nil

	case config.BackendRedis:
		client := redisstore.NewClient(redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			log.Warn(ctx, "redis not reachable yet", "addr", cfg.RedisAddr, "error", err)
		}
		log.Info(ctx, "storage opened", "backend", cfg.StorageBackend, "addr", cfg.RedisAddr)
		return redisstore.New(client, cfg.RedisKeyPrefix), client.Close, nil

	case config.BackendS3:
		client, err := s3store.NewClient(ctx, s3store.Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			RootUser:     cfg.S3RootUser,
			RootPassword: cfg.S3RootPassword,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("s3 client: %w", err)
		}
		log.Info(ctx, "storage opened", "backend", cfg.StorageBackend, "bucket", cfg.S3Bucket)
		return s3store.New(client, cfg.S3Bucket, cfg.S3KeyPrefix), nopClose, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", common.ErrUnknownBackend, cfg.StorageBackend)
}
