package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "booking"
password = "from-file"
dbname = "bookings"

[auth]
jwt_secret = "file-secret"

[email]
enabled = false
owner_email = "owner@example.com"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Email.MaxAttempts)
	assert.Equal(t, "Europe/London", cfg.Business.Timezone)
	assert.Equal(t, "owner@example.com", cfg.Email.OwnerEmail)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SENDGRID_API_KEY", "SG.test")
	t.Setenv("REDIS_PASSWORD", "redis-pass")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "SG.test", cfg.Email.APIKey)
	assert.Equal(t, "redis-pass", cfg.Redis.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "missing jwt secret", mutate: func(c *Config) { c.Auth.JWTSecret = "" }},
		{name: "missing db host", mutate: func(c *Config) { c.Database.Host = "" }},
		{name: "email without key", mutate: func(c *Config) { c.Email.Enabled = true; c.Email.FromAddress = "a@b.c" }},
		{name: "zero attempts", mutate: func(c *Config) { c.Email.MaxAttempts = 0 }},
		{name: "bad timezone", mutate: func(c *Config) { c.Business.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Database.User = "booking"
			cfg.Database.DBName = "bookings"
			cfg.Auth.JWTSecret = "secret"
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 1, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}

	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", d.URL())
}
