package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
env: dev
http_server:
  address: 0.0.0.0:8080
postgres:
  user: edu
  password: edu
  dbname: edu
jwt:
  secret_key: secret
minio:
  enabled: true
  bucket: images
seed_users:
  - name: Admin
    email: admin@admin.com
    password: Start!2345
    role: admin
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPServer.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.True(t, cfg.Postgres.Migrate)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.True(t, cfg.Minio.Enabled)
	assert.Equal(t, "images", cfg.Minio.Bucket)
	assert.False(t, cfg.ES.Enabled)
	assert.Equal(t, "courses", cfg.ES.Index)
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, "admin", cfg.Seed[0].Role)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("POSTGRES_HOST", "db")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, "db", cfg.Postgres.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
