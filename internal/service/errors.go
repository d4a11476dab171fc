package service

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to HTTP statuses; the more specific errors
// below wrap one of them.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrSamePassword          = errors.New("new password must be different from the old one")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrUnauthenticated       = errors.New("not authorized, please login")
	ErrUserNotFound          = errors.New("user does not exist")
	ErrProductNotFound       = errors.New("product not found")
	ErrConflict              = errors.New("conflict")
	ErrEmailNotSent          = errors.New("email not sent")
	ErrImageUploadFailed     = errors.New("image upload failed")
	ErrRateLimited           = errors.New("too many requests")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

var (
	ErrEmailAlreadyRegistered = fmt.Errorf("email has already been registered: %w", ErrConflict)
	ErrProductAlreadyExists   = fmt.Errorf("product with the same name or sku already exists: %w", ErrConflict)

	ErrWrongOldPassword = fmt.Errorf("old password is incorrect: %w", ErrInvalidCredentials)

	ErrResetEmailNotSent   = fmt.Errorf("reset email: %w", ErrEmailNotSent)
	ErrContactEmailNotSent = fmt.Errorf("contact email: %w", ErrEmailNotSent)
)
