package service

import (
	"fmt"

	"github.com/MKhiriev/pinvent/internal/adapter"
	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
	"github.com/MKhiriev/pinvent/internal/store"
	"github.com/MKhiriev/pinvent/internal/validators"
	"github.com/MKhiriev/pinvent/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	ContactService ContactService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	userValidator := validators.NewUserValidator(cfg.App.PasswordMinLength, cfg.Server.MaxUploadSize)
	productValidator := validators.NewProductValidator(cfg.Server.MaxUploadSize)

	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	productService := NewProductValidationService(productValidator).
		Wrap(NewProductService(storages.ProductRepository, adapters.ImageUploader, logger))

	return &Services{
		AuthService:    NewAuthService(storages, adapters.Mailer, userValidator, cfg, logger),
		UserService:    NewUserService(storages.UserRepository, adapters.ImageUploader, userValidator, logger),
		ProductService: productService,
		ContactService: NewContactService(adapters.Mailer, userValidator, cfg, logger),
		AppInfoService: appInfoService,
	}, nil
}
