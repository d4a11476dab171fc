package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/utils"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

const (
	loginRateLimitKey  = "login:email:"
	forgotRateLimitKey = "reset:email:"

	resetPasswordPath    = "/resetpassword/"
	resetPasswordSubject = "Password Reset Request"
)

// dummyPasswordHash is compared against on unknown emails so that login
// takes the same time whether or not the account exists.
var dummyPasswordHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("pinvent-dummy-password")
	return hash
})

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, the JWT session
// lifecycle and the password reset flow.
type authService struct {
	userRepository       store.UserRepository
	resetTokenRepository store.ResetTokenRepository
	rateLimiter          store.RateLimiter
	mailer               adapter.Mailer
	validator            validators.Validator
	idGenerator          *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	resetTokenTTL       time.Duration
	resetURLBase        string
	mailFrom            string
	concealUnknownEmail bool

	loginPolicy  store.RateLimit
	forgotPolicy store.RateLimit

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given storages and
// mailer and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, mailer adapter.Mailer, validator validators.Validator, cfg *config.StructuredConfig, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       storages.UserRepository,
		resetTokenRepository: storages.ResetTokenRepository,
		rateLimiter:          storages.RateLimiter,
		mailer:               mailer,
		validator:            validator,
		idGenerator:          utils.NewUUIDGenerator(),
		tokenSignKey:         cfg.App.TokenSignKey,
		tokenIssuer:          cfg.App.TokenIssuer,
		tokenDuration:        cfg.App.TokenDuration,
		resetTokenTTL:        cfg.App.ResetTokenTTL,
		resetURLBase:         strings.TrimRight(cfg.App.ResetURLBase, "/"),
		mailFrom:             cfg.Adapter.SMTP.From,
		concealUnknownEmail:  cfg.App.ConcealUnknownEmail,
		loginPolicy: store.RateLimit{
			MaxAttempts: cfg.RateLimit.LoginAttempts,
			Window:      cfg.RateLimit.LoginWindow,
			LockoutTTL:  cfg.RateLimit.LoginWindow,
		},
		forgotPolicy: store.RateLimit{
			MaxAttempts: cfg.RateLimit.ForgotAttempts,
			Window:      cfg.RateLimit.ForgotWindow,
			LockoutTTL:  cfg.RateLimit.ForgotWindow,
		},
		now:    time.Now,
		logger: logger,
	}
}

// RegisterUser creates a new account and issues its first session token.
//
// Returns ErrInvalidDataProvided (wrapping the validation message) for bad
// input and ErrEmailAlreadyRegistered if the email is taken, including when
// a concurrent registration wins the race at the unique index.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := validators.NormalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.User{}, models.Token{}, ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, models.Token{}, err
	}

	now := a.now().UTC()
	user := models.User{
		ID:           a.idGenerator.Generate(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: passwordHash,
		Photo:        models.DefaultUserPhoto,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, models.Token{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	log.Info().Str("func", "*authService.RegisterUser").Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a session token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := validators.NormalizeEmail(req.Email)
	if err := a.allow(ctx, loginRateLimitKey+email, a.loginPolicy); err != nil {
		return models.User{}, models.Token{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.CheckPassword(dummyPasswordHash(), req.Password)
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, req.Password) {
		log.Info().Str("func", "*authService.Login").Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.createToken(foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrUnauthenticated so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("invalid session token")
		return models.Token{}, ErrUnauthenticated
	}

	return token, nil
}

func (a *authService) AuthenticateUser(ctx context.Context, tokenString string) (models.User, error) {
	if tokenString == "" {
		return models.User{}, ErrUnauthenticated
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUnauthenticated
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.AuthenticateUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// ChangePassword replaces the password of an authenticated user. The old
// password is verified before the strong policy is applied to the new one.
func (a *authService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if err = a.validator.Validate(ctx, req, validators.FieldRequired); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return ErrWrongOldPassword
	}

	if err = a.validator.Validate(ctx, req, validators.FieldStrongPassword); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err = a.setPassword(ctx, user.ID, req.Password); err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("error updating password")
		return err
	}

	log.Info().Str("func", "*authService.ChangePassword").Str("user_id", user.ID).Msg("password changed")
	return nil
}

// ForgotPassword replaces any previous reset token of the user with a new
// one and emails the reset link.
func (a *authService) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := validators.NormalizeEmail(req.Email)
	if err := a.allow(ctx, forgotRateLimitKey+email, a.forgotPolicy); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		if a.concealUnknownEmail {
			log.Info().Str("func", "*authService.ForgotPassword").Msg("reset requested for unknown email")
			return nil
		}
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	raw, hash, err := utils.GenerateResetToken(user.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error generating reset token")
		return err
	}

	now := a.now().UTC()
	token := models.ResetToken{
		ID:        a.idGenerator.Generate(),
		UserID:    user.ID,
		TokenHash: hash,
		CreatedAt: now,
		ExpiresAt: now.Add(a.resetTokenTTL),
	}
	if err = a.resetTokenRepository.ReplaceForUser(ctx, token); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Msg("error saving reset token")
		return fmt.Errorf("error saving reset token: %w", err)
	}

	message := models.Email{
		From:    a.mailFrom,
		To:      user.Email,
		Subject: resetPasswordSubject,
		HTML:    a.resetEmailBody(user, raw),
	}
	if err = a.mailer.Send(ctx, message); err != nil {
		log.Err(err).Str("func", "*authService.ForgotPassword").Str("user_id", user.ID).Msg("error sending reset email")
		return fmt.Errorf("%w: %w", ErrResetEmailNotSent, err)
	}

	log.Info().Str("func", "*authService.ForgotPassword").Str("user_id", user.ID).Msg("reset email sent")
	return nil
}

// ResetPassword sets a new password for the owner of a live reset token and
// consumes the token. Every token problem is reported as
// ErrInvalidOrExpiredToken.
func (a *authService) ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if resetToken == "" {
		return ErrInvalidOrExpiredToken
	}

	token, err := a.resetTokenRepository.FindValidByHash(ctx, utils.HashResetToken(resetToken), a.now().UTC())
	if errors.Is(err, store.ErrResetTokenNotFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("reset token search failed")
		return fmt.Errorf("reset token search failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrInvalidOrExpiredToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if utils.CheckPassword(user.PasswordHash, req.Password) {
		return ErrSamePassword
	}

	if err = a.resetTokenRepository.Consume(ctx, token.ID); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrInvalidOrExpiredToken
		}
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("error consuming reset token")
		return fmt.Errorf("error consuming reset token: %w", err)
	}

	if err = a.setPassword(ctx, user.ID, req.Password); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("error updating password")
		return err
	}

	log.Info().Str("func", "*authService.ResetPassword").Str("user_id", user.ID).Msg("password reset")
	return nil
}

// createToken issues a signed JWT for the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) setPassword(ctx context.Context, userID, password string) error {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePassword(ctx, userID, passwordHash, a.now().UTC()); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

func (a *authService) allow(ctx context.Context, key string, policy store.RateLimit) error {
	err := a.rateLimiter.Allow(ctx, key, policy)
	if errors.Is(err, store.ErrRateLimitExceeded) {
		return ErrRateLimited
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.allow").Msg("rate limiter failed")
		return fmt.Errorf("rate limiter failed: %w", err)
	}
	return nil
}

func (a *authService) resetEmailBody(user models.User, rawToken string) string {
	link := a.resetURLBase + resetPasswordPath + rawToken

	return "<h2>Hello " + html.EscapeString(user.Username) + "</h2>" +
		"<p>Please use the url below to reset your password</p>" +
		"<p>This reset link is valid for only " + utils.FormatDuration(a.resetTokenTTL) + ".</p>" +
		`<a href="` + link + `" clicktracking=off>` + link + "</a>" +
		"<p>Regards...</p>" +
		"<p>Pinvent Team</p>"
}
