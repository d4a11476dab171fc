package store

import (
	"context"
	"time"

	"github.com/MKhiriev/pinvent/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// UpdateUser overwrites the mutable profile columns (username, phone, bio,
	// photo). Email and password hash are never touched.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error
}

// ResetTokenRepository persists hashed password reset tokens.
type ResetTokenRepository interface {
	// ReplaceForUser deletes every token of token.UserID and inserts token in
	// a single transaction.
	ReplaceForUser(ctx context.Context, token models.ResetToken) error
	// FindValidByHash returns the token with the given hash whose expiry is
	// after now.
	FindValidByHash(ctx context.Context, tokenHash string, now time.Time) (models.ResetToken, error)
	// Consume deletes the token. It fails with [ErrResetTokenNotFound] unless
	// exactly one row was removed.
	Consume(ctx context.Context, tokenID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProductRepository persists inventory records. Write methods always filter
// by owner as well as by id.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	ListProductsByOwner(ctx context.Context, ownerID string) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID string) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID string) error
}

// RateLimiter counts attempts per key and rejects the call with
// [ErrRateLimitExceeded] once the policy budget is spent.
type RateLimiter interface {
	Allow(ctx context.Context, key string, policy RateLimit) error
}
