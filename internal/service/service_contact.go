package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

// contactService relays contact-form messages from signed-in users to the
// support mailbox.
type contactService struct {
	mailer    adapter.Mailer
	validator validators.Validator

	// supportEmail receives every message; falls back to the SMTP sender.
	supportEmail string
	from         string

	logger *logger.Logger
}

func NewContactService(mailer adapter.Mailer, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) ContactService {
	supportEmail := cfg.App.SupportEmail
	if supportEmail == "" {
		supportEmail = cfg.Adapter.SMTP.From
	}

	return &contactService{
		mailer:       mailer,
		validator:    validator,
		supportEmail: supportEmail,
		from:         cfg.Adapter.SMTP.From,
		logger:       logger,
	}
}

func (c *contactService) SendContactMessage(ctx context.Context, sender models.User, req models.ContactRequest) error {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	message := models.Email{
		From:    c.from,
		To:      c.supportEmail,
		ReplyTo: sender.Email,
		Subject: strings.TrimSpace(req.Subject),
		HTML:    "<p>" + html.EscapeString(req.Message) + "</p>",
	}
	if err := c.mailer.Send(ctx, message); err != nil {
		log.Err(err).Str("func", "*contactService.SendContactMessage").Str("user_id", sender.ID).Msg("error sending contact email")
		return fmt.Errorf("%w: %w", ErrContactEmailNotSent, err)
	}

	log.Info().Str("func", "*contactService.SendContactMessage").Str("user_id", sender.ID).Msg("contact email sent")
	return nil
}
