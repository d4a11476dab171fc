package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"reset_token_ttl": "30m",
			"reset_url_base": "https://pinvent-app.vercel.app",
			"password_min_length": 10,
			"conceal_unknown_email": true,
			"support_email": "support@pinvent.dev",
			"version": "1.2.3"
		},
		"storage": {
			"db": { "driver": "sqlite3", "dsn": "file:pinvent.db" },
			"redis": { "url": "redis://localhost:6379/0" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"env": "development",
			"cors_origins": ["http://localhost:3000"],
			"max_upload_size": 1000000
		},
		"adapter": {
			"smtp": { "host": "smtp.example.com", "port": "587", "username": "u", "password": "p", "from": "noreply@example.com" },
			"upload": { "provider": "s3", "request_timeout": "10s", "s3_region": "eu-central-1", "s3_bucket": "images", "s3_public_url": "https://cdn.example.com" }
		},
		"workers": { "reset_token_cleanup_interval": "5m" },
		"rate_limit": { "login_attempts": 5, "login_window": "10m", "forgot_attempts": 2, "forgot_window": "2h" }
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 30*time.Minute, cfg.App.ResetTokenTTL)
	assert.Equal(t, "https://pinvent-app.vercel.app", cfg.App.ResetURLBase)
	assert.Equal(t, 10, cfg.App.PasswordMinLength)
	assert.True(t, cfg.App.ConcealUnknownEmail)
	assert.Equal(t, "support@pinvent.dev", cfg.App.SupportEmail)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:pinvent.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.Redis.URL)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, EnvDevelopment, cfg.Server.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, int64(1000000), cfg.Server.MaxUploadSize)

	assert.Equal(t, "smtp.example.com", cfg.Adapter.SMTP.Host)
	assert.Equal(t, "587", cfg.Adapter.SMTP.Port)
	assert.Equal(t, "noreply@example.com", cfg.Adapter.SMTP.From)
	assert.Equal(t, UploadProviderS3, cfg.Adapter.Upload.Provider)
	assert.Equal(t, 10*time.Second, cfg.Adapter.Upload.RequestTimeout)
	assert.Equal(t, "images", cfg.Adapter.Upload.S3Bucket)

	assert.Equal(t, 5*time.Minute, cfg.Workers.ResetTokenCleanupInterval)
	assert.Equal(t, 5, cfg.RateLimit.LoginAttempts)
	assert.Equal(t, 10*time.Minute, cfg.RateLimit.LoginWindow)
	assert.Equal(t, 2, cfg.RateLimit.ForgotAttempts)
	assert.Equal(t, 2*time.Hour, cfg.RateLimit.ForgotWindow)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeJSONFile(t, `{"app": {`)

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeJSONFile(t, `{"app": {"token_duration": "not-a-duration"}}`)

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := writeJSONFile(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := writeJSONFile(t, `{}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
