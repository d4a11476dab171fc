package service

import (
	"context"

	"github.com/MKhiriev/pinvent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService covers credentials and sessions: registration, login, session
// token verification and the password change and reset flows.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// ParseToken verifies signature, issuer and expiry of a session token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// AuthenticateUser parses the session token and loads its subject. Every
	// failure is reported as ErrUnauthenticated.
	AuthenticateUser(ctx context.Context, tokenString string) (models.User, error)

	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, resetToken string, req models.ResetPasswordRequest) error
}

// UserService reads and edits the caller's profile.
type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateUser(ctx context.Context, userID string, req models.UpdateUserRequest) (models.User, error)
}

// ProductService manages the products owned by the caller. A product that
// exists but belongs to someone else is reported as ErrProductNotFound.
type ProductService interface {
	CreateProduct(ctx context.Context, ownerID string, fields models.ProductFields) (models.Product, error)
	ListProducts(ctx context.Context, ownerID string) ([]models.Product, error)
	GetProduct(ctx context.Context, ownerID, productID string) (models.Product, error)
	UpdateProduct(ctx context.Context, ownerID, productID string, fields models.ProductFields) (models.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID string) error
}

// ContactService relays contact-form messages to the support mailbox.
type ContactService interface {
	SendContactMessage(ctx context.Context, sender models.User, req models.ContactRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ProductServiceWrapper defines middleware composition for ProductService.
// Implementations wrap an existing ProductService to add behavior such as
// logging or validating.
type ProductServiceWrapper interface {
	Wrap(ProductService) ProductService // returns a decorated ProductService applying additional behavior
}
