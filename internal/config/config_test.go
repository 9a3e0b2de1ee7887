package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fittracker/fitness-app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.App.Address)
	assert.Equal(t, "https://backend-2gls.onrender.com/", cfg.App.RemoteURL)
	assert.Equal(t, 10*time.Second, cfg.App.RemoteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.App.VideoCacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
app:
  remote_url: http://localhost:9999/
  remote_timeout: 3s
  remote_rate_limit: 2.5
jwt:
  secret: from-file
  expiration: 90m
s3:
  bucket_name: videos
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/", cfg.App.RemoteURL)
	assert.Equal(t, 3*time.Second, cfg.App.RemoteTimeout)
	assert.Equal(t, 2.5, cfg.App.RemoteRateLimit)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 90*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("app: [unclosed"), 0o644))
	_, err := config.LoadConfig(dir)
	assert.Error(t, err)
}
