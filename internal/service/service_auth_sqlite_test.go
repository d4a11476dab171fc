package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/mock"
	"github.com/MKhiriev/pinvent/internal/service"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

var resetLinkPattern = regexp.MustCompile(`/resetpassword/([0-9a-f-]+)`)

// newSQLiteStorages opens a private in-memory SQLite database through the
// production storage constructor. No Redis URL is set, so rate limiting is
// a no-op.
func newSQLiteStorages(t *testing.T) *store.Storages {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
	}}
	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

// TestAuthService_SQLite_ResetFlow runs register, forgot, reset and login
// against real repositories.
func TestAuthService_SQLite_ResetFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mock.NewMockMailer(ctrl)
	storages := newSQLiteStorages(t)
	cfg := testConfig()
	ctx := context.Background()

	auth := service.NewAuthService(storages, mailer,
		validators.NewUserValidator(cfg.App.PasswordMinLength, testMaxUpload), cfg, logger.Nop())

	registered, _, err := auth.RegisterUser(ctx, models.RegisterRequest{
		Username: "Jane",
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)

	var sent models.Email
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email models.Email) error {
			sent = email
			return nil
		})
	require.NoError(t, auth.ForgotPassword(ctx, models.ForgotPasswordRequest{Email: testEmail}))

	assert.Equal(t, testEmail, sent.To)
	match := resetLinkPattern.FindStringSubmatch(sent.HTML)
	require.Len(t, match, 2, "reset link not found in %q", sent.HTML)
	rawToken := match[1]

	stored, err := storages.ResetTokenRepository.FindValidByHash(ctx, utils.HashResetToken(rawToken), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, registered.ID, stored.UserID)
	assert.NotEqual(t, rawToken, stored.TokenHash)

	require.NoError(t, auth.ResetPassword(ctx, rawToken, models.ResetPasswordRequest{Password: testStrongPwd}))

	_, _, err = auth.Login(ctx, models.LoginRequest{Email: testEmail, Password: testPassword})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	user, token, err := auth.Login(ctx, models.LoginRequest{Email: testEmail, Password: testStrongPwd})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token.SignedString)

	err = auth.ResetPassword(ctx, rawToken, models.ResetPasswordRequest{Password: "Another-pass1"})
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken, "a used token must not work twice")
}

// TestAuthService_SQLite_ExpiredToken verifies that a stored token past its
// expiry is rejected and leaves the password untouched.
func TestAuthService_SQLite_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newSQLiteStorages(t)
	cfg := testConfig()
	ctx := context.Background()

	auth := service.NewAuthService(storages, mock.NewMockMailer(ctrl),
		validators.NewUserValidator(cfg.App.PasswordMinLength, testMaxUpload), cfg, logger.Nop())

	registered, _, err := auth.RegisterUser(ctx, models.RegisterRequest{
		Username: "Jane",
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)

	rawToken, hash, err := utils.GenerateResetToken(registered.ID)
	require.NoError(t, err)
	issued := time.Now().UTC().Add(-cfg.App.ResetTokenTTL - time.Second)
	require.NoError(t, storages.ResetTokenRepository.ReplaceForUser(ctx, models.ResetToken{
		ID:        uuid.NewString(),
		UserID:    registered.ID,
		TokenHash: hash,
		CreatedAt: issued,
		ExpiresAt: issued.Add(cfg.App.ResetTokenTTL),
	}))

	err = auth.ResetPassword(ctx, rawToken, models.ResetPasswordRequest{Password: testStrongPwd})
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

	_, _, err = auth.Login(ctx, models.LoginRequest{Email: testEmail, Password: testPassword})
	assert.NoError(t, err)
}
