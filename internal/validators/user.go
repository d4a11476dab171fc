// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/pinvent/models"
)

// MaxBioLength is the longest accepted profile bio, in characters.
const MaxBioLength = 250

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// UserValidator implements the Validator interface for the account and
// contact requests: RegisterRequest, LoginRequest, UpdateUserRequest,
// ChangePasswordRequest, ForgotPasswordRequest, ResetPasswordRequest and
// ContactRequest. Both value and pointer forms are accepted.
type UserValidator struct {
	registration PasswordPolicy
	strong       PasswordPolicy
	maxImageSize int64
}

// NewUserValidator constructs a UserValidator whose password policies use
// minPasswordLength as the minimum length and which accepts avatars of at
// most maxImageSize bytes.
func NewUserValidator(minPasswordLength int, maxImageSize int64) Validator {
	return &UserValidator{
		registration: RegistrationPolicy(minPasswordLength),
		strong:       StrongPolicy(minPasswordLength),
		maxImageSize: maxImageSize,
	}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model and
// ErrUnknownField if a requested field does not apply to obj.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.ForgotPasswordRequest:
		return v.validateForgotPassword(value, fields...)
	case *models.ForgotPasswordRequest:
		return v.validateForgotPassword(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	case models.ContactRequest:
		return v.validateContact(value, fields...)
	case *models.ContactRequest:
		return v.validateContact(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister checks, in order, that all fields are present, that the
// password satisfies the registration policy and that the email is well
// formed.
func (v *UserValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(request.Username) || isBlank(request.Email) || request.Password == "" {
				return newValidationError(f, MsgFillRequiredFields)
			}
		case FieldPassword:
			if err := v.registration.Validate(request.Password); err != nil {
				return err
			}
		case FieldEmail:
			if !IsValidEmail(request.Email) {
				return newValidationError(f, MsgInvalidEmail)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(request.Email) || request.Password == "" {
				return newValidationError(f, MsgAddEmailAndPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdateUser(request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBio}
	}

	for _, f := range fields {
		switch f {
		case FieldBio:
			if len([]rune(request.Bio)) > MaxBioLength {
				return newValidationError(f, MsgBioTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	if request.Image != nil {
		return validateImageFile(*request.Image, v.maxImageSize)
	}

	return nil
}

// validateChangePassword is usually called twice by the auth service:
// first with FieldRequired, then, once the old password is verified, with
// FieldStrongPassword.
func (v *UserValidator) validateChangePassword(request models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldStrongPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if request.OldPassword == "" || request.Password == "" {
				return newValidationError(f, MsgAddOldAndNewPassword)
			}
		case FieldStrongPassword:
			if err := v.strong.Validate(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateForgotPassword(request models.ForgotPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(request.Email) {
				return newValidationError(f, MsgAddEmail)
			}
		case FieldEmail:
			if !IsValidEmail(request.Email) {
				return newValidationError(f, MsgInvalidEmail)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateResetPassword(request models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if request.Password == "" {
				return newValidationError(f, MsgAddPassword)
			}
		case FieldPassword:
			if err := v.registration.Validate(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateContact(request models.ContactRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if isBlank(request.Subject) || isBlank(request.Message) {
				return newValidationError(f, MsgAddSubjectAndMessage)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsValidEmail reports whether email, after trimming, matches the accepted
// address pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// NormalizeEmail trims and lower-cases an address before it is stored or
// looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
