package adapter

import "errors"

// Transport errors mapped from image host status codes.
var (
	ErrBadRequest          = errors.New("image host rejected the request")
	ErrUnauthorized        = errors.New("image host rejected the credentials")
	ErrPayloadTooLarge     = errors.New("image is too large for the image host")
	ErrThrottled           = errors.New("image host is throttling requests")
	ErrUpstreamUnavailable = errors.New("image host is unavailable")
)

var (
	// ErrUploadDisabled is returned by the no-op uploader.
	ErrUploadDisabled = errors.New("image upload is not configured")

	// ErrEmptyUploadResponse is returned when the image host answers 2xx
	// without a file URL.
	ErrEmptyUploadResponse = errors.New("image host returned no url")

	// ErrNoRecipient is returned for an email without a To address.
	ErrNoRecipient = errors.New("email has no recipient")

	// ErrStartTLSNotSupported is returned when the SMTP server does not
	// advertise STARTTLS.
	ErrStartTLSNotSupported = errors.New("smtp server does not advertise STARTTLS: refusing plaintext session")
)
