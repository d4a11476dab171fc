package config

import "time"

// Supported values of [Server.Env].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported values of [Upload.Provider].
const (
	UploadProviderNone      = ""
	UploadProviderFilestack = "filestack"
	UploadProviderS3        = "s3"
)

const (
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultTokenIssuer       = "pinvent"
	defaultTokenDuration     = 24 * time.Hour
	defaultResetTokenTTL     = 30 * time.Minute
	defaultPasswordMinLength = 8
	defaultMaxUploadSize     = 2 * 1000 * 1000
	defaultUploadTimeout     = 30 * time.Second
	defaultFilestackURL      = "https://www.filestackapi.com/api"
	defaultCleanupInterval   = 15 * time.Minute
	defaultLoginAttempts     = 10
	defaultLoginWindow       = 15 * time.Minute
	defaultForgotAttempts    = 3
	defaultForgotWindow      = time.Hour
)

var defaultCORSOrigins = []string{"http://localhost:5173", "https://pinvent-app.vercel.app"}

// applyDefaults fills zero fields that have a sensible built-in value. It
// runs after all sources are merged, so any explicitly configured value wins.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = EnvProduction
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = append([]string(nil), defaultCORSOrigins...)
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = defaultMaxUploadSize
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ResetTokenTTL == 0 {
		cfg.App.ResetTokenTTL = defaultResetTokenTTL
	}
	if cfg.App.PasswordMinLength == 0 {
		cfg.App.PasswordMinLength = defaultPasswordMinLength
	}

	if cfg.Adapter.Upload.RequestTimeout == 0 {
		cfg.Adapter.Upload.RequestTimeout = defaultUploadTimeout
	}
	if cfg.Adapter.Upload.FilestackURL == "" {
		cfg.Adapter.Upload.FilestackURL = defaultFilestackURL
	}

	if cfg.Workers.ResetTokenCleanupInterval == 0 {
		cfg.Workers.ResetTokenCleanupInterval = defaultCleanupInterval
	}

	if cfg.RateLimit.LoginAttempts == 0 {
		cfg.RateLimit.LoginAttempts = defaultLoginAttempts
	}
	if cfg.RateLimit.LoginWindow == 0 {
		cfg.RateLimit.LoginWindow = defaultLoginWindow
	}
	if cfg.RateLimit.ForgotAttempts == 0 {
		cfg.RateLimit.ForgotAttempts = defaultForgotAttempts
	}
	if cfg.RateLimit.ForgotWindow == 0 {
		cfg.RateLimit.ForgotWindow = defaultForgotWindow
	}
}
