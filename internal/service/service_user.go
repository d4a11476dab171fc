package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

type userService struct {
	userRepository store.UserRepository
	uploader       adapter.ImageUploader
	validator      validators.Validator
	now            func() time.Time

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, uploader adapter.ImageUploader, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		uploader:       uploader,
		validator:      validator,
		now:            time.Now,
		logger:         logger,
	}
}

func (u *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies the non-empty fields of req to the profile. An uploaded
// image replaces the photo URL; the email is never changed here.
func (u *userService) UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if v := strings.TrimSpace(req.Username); v != "" {
		user.Username = v
	}
	if v := strings.TrimSpace(req.Phone); v != "" {
		user.Phone = v
	}
	if v := strings.TrimSpace(req.Bio); v != "" {
		user.Bio = v
	}
	if v := strings.TrimSpace(req.Photo); v != "" {
		user.Photo = v
	}

	if req.Image != nil {
		image, err := u.uploader.Upload(ctx, *req.Image)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("avatar upload failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrImageUploadFailed, err)
		}
		user.Photo = image.URL
	}
	user.UpdatedAt = u.now().UTC()

	updated, err := u.userRepository.UpdateUser(ctx, user)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}
