package service_test

import (
	"testing"
	"time"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/mock"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey   = "test-sign-key"
	testIssuer    = "pinvent"
	testUserID    = "0194f1c2-7a10-7000-8000-000000000001"
	testEmail     = "jane@example.com"
	testPassword  = "secret-pass"
	testStrongPwd = "N3w!Strong"
	testMaxUpload = 2_000_000
)

// testConfig returns a configuration with every value the services read.
func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			TokenSignKey:      testSignKey,
			TokenIssuer:       testIssuer,
			TokenDuration:     24 * time.Hour,
			ResetTokenTTL:     30 * time.Minute,
			ResetURLBase:      "https://app.example.com/",
			PasswordMinLength: 8,
			SupportEmail:      "support@pinvent.test",
			Version:           "1.0.0",
		},
		Server: config.Server{MaxUploadSize: testMaxUpload},
		Adapter: config.Adapter{
			SMTP: config.SMTP{From: "noreply@pinvent.test"},
		},
		RateLimit: config.RateLimit{
			LoginAttempts:  10,
			LoginWindow:    15 * time.Minute,
			ForgotAttempts: 3,
			ForgotWindow:   time.Hour,
		},
	}
}

type storeMocks struct {
	users       *mock.MockUserRepository
	resetTokens *mock.MockResetTokenRepository
	products    *mock.MockProductRepository
	limiter     *mock.MockRateLimiter
}

func newStoreMocks(ctrl *gomock.Controller) (storeMocks, *store.Storages) {
	m := storeMocks{
		users:       mock.NewMockUserRepository(ctrl),
		resetTokens: mock.NewMockResetTokenRepository(ctrl),
		products:    mock.NewMockProductRepository(ctrl),
		limiter:     mock.NewMockRateLimiter(ctrl),
	}

	return m, &store.Storages{
		UserRepository:       m.users,
		ResetTokenRepository: m.resetTokens,
		ProductRepository:    m.products,
		RateLimiter:          m.limiter,
	}
}

// storedUser returns a persisted user whose password is password.
func storedUser(t *testing.T, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	return models.User{
		ID:           testUserID,
		Username:     "Jane",
		Email:        testEmail,
		PasswordHash: hash,
		Photo:        models.DefaultUserPhoto,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
