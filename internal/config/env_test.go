package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Variables(t *testing.T) {
	t.Setenv("FORMAUTH_REDIS_DB", "3")
	t.Setenv("FORMAUTH_REDIRECT_DELAY", "500ms")
	t.Setenv("FORMAUTH_S3_BUCKET", "users")

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg, nil))

	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 500*time.Millisecond, cfg.RedirectDelay)
	assert.Equal(t, "users", cfg.S3Bucket)
}

func TestParseEnv_BadNumber(t *testing.T) {
	t.Setenv("FORMAUTH_REDIS_DB", "three")

	var cfg Config
	require.Error(t, parseEnv(&cfg, nil))
}

func TestParseEnv_BadDelay(t *testing.T) {
	t.Setenv("FORMAUTH_REDIRECT_DELAY", "soon")

	var cfg Config
	require.Error(t, parseEnv(&cfg, nil))
}

func TestParseEnv_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FORMAUTH_GRPC_ADDR=:6000\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("FORMAUTH_GRPC_ADDR") })

	var cfg Config
	cfg.LoadDefaults()
	require.NoError(t, parseEnv(&cfg, []string{"-e", path}))

	assert.Equal(t, ":6000", cfg.GRPCAddr)
}

func TestParseEnv_MissingNamedFile(t *testing.T) {
	var cfg Config
	err := parseEnv(&cfg, []string{"-env", filepath.Join(t.TempDir(), "absent.env")})
	require.Error(t, err)
}
