package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "school-backend", cfg.Service.Name)
	assert.Equal(t, "8000", cfg.Service.Port)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.Equal(t, 72*time.Hour, cfg.GetDefaultTokenTTL())
	assert.Equal(t, 720*time.Hour, cfg.GetRememberTokenTTL())
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
service:
  port: "9000"
jwt:
  secret: from-file
  default_ttl: 24h
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("EDZIENNIK_JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Service.Port)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.GetDefaultTokenTTL())
}

func TestBareEnvCompatibility(t *testing.T) {
	t.Setenv("SECRET_KEY", "legacy-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/school")
	t.Setenv("PORT", "8080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "legacy-secret", cfg.JWT.Secret)
	assert.Equal(t, "postgres://localhost/school", cfg.Database.URL)
	assert.Equal(t, "8080", cfg.Service.Port)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		JWT:      JWTConfig{Secret: "s", DefaultTTL: "72h", RememberTTL: "720h"},
		Database: DatabaseConfig{URL: "postgres://localhost/school"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg.JWT.Secret = "s"
	cfg.JWT.DefaultTTL = "three days"
	assert.Error(t, cfg.Validate())
}
