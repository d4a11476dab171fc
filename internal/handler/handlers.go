package handler

import (
	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/handler/http"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/metrics"
	"github.com/MKhiriev/pinvent/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, http.NewSettings(cfg), logger),
	}, nil
}
