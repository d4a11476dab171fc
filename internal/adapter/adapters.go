package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
)

// Adapters aggregates the outbound integrations used by the services.
type Adapters struct {
	Mailer        Mailer
	ImageUploader ImageUploader
}

// NewAdapters selects an implementation for every integration from cfg.
// Unconfigured integrations fall back to their no-op variants.
func NewAdapters(ctx context.Context, cfg config.Adapter, log *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{}

	if cfg.SMTP.Host != "" {
		adapters.Mailer = NewSMTPMailer(cfg.SMTP, log)
	} else {
		log.Warn().Str("func", "NewAdapters").Msg("smtp host is empty, outgoing email disabled")
		adapters.Mailer = NewNopMailer(log)
	}

	switch cfg.Upload.Provider {
	case config.UploadProviderFilestack:
		adapters.ImageUploader = NewFilestackUploader(cfg.Upload, log)
	case config.UploadProviderS3:
		uploader, err := NewS3Uploader(ctx, cfg.Upload, log)
		if err != nil {
			return nil, fmt.Errorf("error creating s3 uploader: %w", err)
		}
		adapters.ImageUploader = uploader
	case config.UploadProviderNone:
		log.Warn().Str("func", "NewAdapters").Msg("upload provider is empty, image upload disabled")
		adapters.ImageUploader = NewNopUploader()
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedUploadProvider, cfg.Upload.Provider)
	}

	return adapters, nil
}
