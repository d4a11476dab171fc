// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newTestUserValidator() Validator {
	return NewUserValidator(8, 2_000_000)
}

func assertValidationMessage(t *testing.T, err error, expected string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrValidation)
	msg, ok := Message(err)
	require.True(t, ok)
	assert.Equal(t, expected, msg)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		obj  any
	}{
		{"register value", models.RegisterRequest{Username: "u", Email: "a@b.co", Password: "Passw0rd1"}},
		{"register pointer", &models.RegisterRequest{Username: "u", Email: "a@b.co", Password: "Passw0rd1"}},
		{"login value", models.LoginRequest{Email: "a@b.co", Password: "x"}},
		{"login pointer", &models.LoginRequest{Email: "a@b.co", Password: "x"}},
		{"update user", models.UpdateUserRequest{Bio: "hello"}},
		{"change password", &models.ChangePasswordRequest{OldPassword: "old", Password: "NewPassw0rd1!"}},
		{"forgot password", models.ForgotPasswordRequest{Email: "a@b.co"}},
		{"reset password", models.ResetPasswordRequest{Password: "Passw0rd1"}},
		{"contact", &models.ContactRequest{Subject: "s", Message: "m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, v.Validate(ctx, tt.obj))
		})
	}
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := newTestUserValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserValidator_UnknownField(t *testing.T) {
	err := newTestUserValidator().Validate(context.Background(), models.LoginRequest{}, FieldBio)
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		wantMsg string
	}{
		{
			name:    "valid",
			request: models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "Passw0rd1"},
		},
		{
			name:    "missing username",
			request: models.RegisterRequest{Email: "alice@example.com", Password: "Passw0rd1"},
			wantMsg: MsgFillRequiredFields,
		},
		{
			name:    "blank email",
			request: models.RegisterRequest{Username: "alice", Email: "   ", Password: "Passw0rd1"},
			wantMsg: MsgFillRequiredFields,
		},
		{
			name:    "missing password",
			request: models.RegisterRequest{Username: "alice", Email: "alice@example.com"},
			wantMsg: MsgFillRequiredFields,
		},
		{
			name:    "short password is checked before email",
			request: models.RegisterRequest{Username: "alice", Email: "bad", Password: "short"},
			wantMsg: "Password must be at least 8 characters",
		},
		{
			name:    "password over bcrypt limit",
			request: models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: strings.Repeat("a", 73)},
			wantMsg: "Password must not be more than 72 bytes",
		},
		{
			name:    "invalid email",
			request: models.RegisterRequest{Username: "alice", Email: "alice@example", Password: "Passw0rd1"},
			wantMsg: MsgInvalidEmail,
		},
		{
			name:    "email with surrounding spaces",
			request: models.RegisterRequest{Username: "alice", Email: "  Alice@Example.com ", Password: "Passw0rd1"},
		},
	}

	v := newTestUserValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.request)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assertValidationMessage(t, err, tt.wantMsg)
		})
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestValidateLogin(t *testing.T) {
	v := newTestUserValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.co", Password: "x"}))
	assertValidationMessage(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.co"}), MsgAddEmailAndPassword)
	assertValidationMessage(t, v.Validate(context.Background(), models.LoginRequest{Password: "x"}), MsgAddEmailAndPassword)
}

// ---------------------------------------------------------------------------
// UpdateUser
// ---------------------------------------------------------------------------

func TestValidateUpdateUser(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Bio: strings.Repeat("a", MaxBioLength)}))
	assertValidationMessage(t, v.Validate(ctx, models.UpdateUserRequest{Bio: strings.Repeat("a", MaxBioLength+1)}), MsgBioTooLong)

	// multi-byte characters count once
	assert.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Bio: strings.Repeat("é", MaxBioLength)}))

	withBadImage := models.UpdateUserRequest{Image: &models.ImageFile{ContentType: "image/gif", Size: 10}}
	assertValidationMessage(t, v.Validate(ctx, withBadImage), MsgUnsupportedFormat)
}

// ---------------------------------------------------------------------------
// ChangePassword
// ---------------------------------------------------------------------------

func TestValidateChangePassword(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	t.Run("missing old password", func(t *testing.T) {
		err := v.Validate(ctx, models.ChangePasswordRequest{Password: "NewPassw0rd1!"}, FieldRequired)
		assertValidationMessage(t, err, MsgAddOldAndNewPassword)
	})

	t.Run("required only does not apply policy", func(t *testing.T) {
		err := v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "old", Password: "weak"}, FieldRequired)
		assert.NoError(t, err)
	})

	t.Run("strong policy lists every failure", func(t *testing.T) {
		err := v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "old", Password: "weak"}, FieldStrongPassword)
		assertValidationMessage(t, err, "Password must be at least 8 characters; "+
			"Password must contain at least one uppercase letter; "+
			"Password must contain at least one number; "+
			"Password must contain at least one special character")
	})

	t.Run("strong policy rejects over 72 bytes", func(t *testing.T) {
		err := v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "old", Password: "NewPassw0rd1!" + strings.Repeat("x", 60)}, FieldStrongPassword)
		assertValidationMessage(t, err, "Password must not be more than 72 bytes")
	})

	t.Run("strong password accepted", func(t *testing.T) {
		err := v.Validate(ctx, models.ChangePasswordRequest{OldPassword: "old", Password: "NewPassw0rd1!"})
		assert.NoError(t, err)
	})
}

// ---------------------------------------------------------------------------
// Forgot / Reset / Contact
// ---------------------------------------------------------------------------

func TestValidateForgotPassword(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	assertValidationMessage(t, v.Validate(ctx, models.ForgotPasswordRequest{}), MsgAddEmail)
	assertValidationMessage(t, v.Validate(ctx, models.ForgotPasswordRequest{Email: "nope"}, FieldRequired, FieldEmail), MsgInvalidEmail)
}

func TestValidateResetPassword(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	assertValidationMessage(t, v.Validate(ctx, models.ResetPasswordRequest{}), MsgAddPassword)
	assertValidationMessage(t, v.Validate(ctx, models.ResetPasswordRequest{Password: "short"}), "Password must be at least 8 characters")
	assertValidationMessage(t, v.Validate(ctx, models.ResetPasswordRequest{Password: strings.Repeat("a", 73)}), "Password must not be more than 72 bytes")
	assert.NoError(t, v.Validate(ctx, models.ResetPasswordRequest{Password: "NewPassw0rd1"}))
}

func TestValidateContact(t *testing.T) {
	v := newTestUserValidator()
	ctx := context.Background()

	assertValidationMessage(t, v.Validate(ctx, models.ContactRequest{Subject: "hi"}), MsgAddSubjectAndMessage)
	assertValidationMessage(t, v.Validate(ctx, models.ContactRequest{Message: "hi"}), MsgAddSubjectAndMessage)
}

// ---------------------------------------------------------------------------
// Email helpers and errors
// ---------------------------------------------------------------------------

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("john.doe+tag@sub.example.org"))
	assert.True(t, IsValidEmail(" john@example.com "))
	assert.False(t, IsValidEmail("john@example"))
	assert.False(t, IsValidEmail("john example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "john@example.com", NormalizeEmail("  John@Example.COM "))
}

func TestMessage_NotValidationError(t *testing.T) {
	msg, ok := Message(errors.New("boom"))
	assert.False(t, ok)
	assert.Empty(t, msg)
}
