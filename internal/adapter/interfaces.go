// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integrations of the pinvent server:
// transactional mail and the external image host.
//
// Every integration has a no-op implementation selected when it is not
// configured, so the service layer never checks for nil.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/pinvent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers one transactional email. Implementations must respect ctx
// cancellation while talking to the mail server.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// ImageUploader stores an image at the external host and returns its public
// metadata. Size in the result is human readable (see utils.FormatFileSize).
type ImageUploader interface {
	Upload(ctx context.Context, file models.ImageFile) (models.Image, error)
}
