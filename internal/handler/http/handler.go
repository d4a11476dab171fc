package http

import (
	"time"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/service"
)

// Settings are the transport options read from the server and app config.
type Settings struct {
	// Development enables the error stack in responses and drops the Secure
	// attribute of the session cookie so plain-http localhost works.
	Development bool

	// SessionDuration is the lifetime of the session cookie; it matches the
	// token lifetime.
	SessionDuration time.Duration

	RequestTimeout time.Duration
	CORSOrigins    []string

	// MaxUploadSize bounds a multipart body; the form overhead allowance
	// is added on top.
	MaxUploadSize int64
}

// NewSettings extracts transport settings from the merged configuration.
func NewSettings(cfg *config.StructuredConfig) Settings {
	return Settings{
		Development:     cfg.Server.IsDevelopment(),
		SessionDuration: cfg.App.TokenDuration,
		RequestTimeout:  cfg.Server.RequestTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		MaxUploadSize:   cfg.Server.MaxUploadSize,
	}
}

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		settings: settings,
		logger:   logger,
	}
}
