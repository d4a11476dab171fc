package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/pinvent/models"
)

const (
	usersTable       = "users"
	resetTokensTable = "reset_tokens"
	productsTable    = "products"
)

var (
	userColumns = []string{
		"id", "username", "email", "password_hash", "photo", "phone", "bio", "created_at", "updated_at",
	}

	resetTokenColumns = []string{"id", "user_id", "token_hash", "created_at", "expires_at"}

	productColumns = []string{
		"id", "user_id", "name", "sku", "category", "quantity", "price", "description",
		"image_name", "image_url", "image_type", "image_size", "created_at", "updated_at",
	}
)

// users

func (db *DB) createUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.Photo, user.Phone, user.Bio, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

func (db *DB) findUserQuery(where sq.Eq) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func (db *DB) updateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("username", user.Username).
		Set("phone", user.Phone).
		Set("bio", user.Bio).
		Set("photo", user.Photo).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func (db *DB) updatePasswordQuery(userID, passwordHash string, updatedAt time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// reset tokens

func (db *DB) deleteUserResetTokensQuery(userID string) (string, []any, error) {
	return db.builder.
		Delete(resetTokensTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) createResetTokenQuery(token models.ResetToken) (string, []any, error) {
	return db.builder.
		Insert(resetTokensTable).
		Columns(resetTokenColumns...).
		Values(token.ID, token.UserID, token.TokenHash, token.CreatedAt, token.ExpiresAt).
		ToSql()
}

func (db *DB) findValidResetTokenQuery(tokenHash string, now time.Time) (string, []any, error) {
	return db.builder.
		Select(resetTokenColumns...).
		From(resetTokensTable).
		Where(sq.Eq{"token_hash": tokenHash}).
		Where(sq.Gt{"expires_at": now}).
		Limit(1).
		ToSql()
}

func (db *DB) deleteResetTokenQuery(tokenID string) (string, []any, error) {
	return db.builder.
		Delete(resetTokensTable).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func (db *DB) deleteExpiredResetTokensQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(resetTokensTable).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

// products

func (db *DB) createProductQuery(p models.Product) (string, []any, error) {
	return db.builder.
		Insert(productsTable).
		Columns(productColumns...).
		Values(
			p.ID, p.OwnerID, p.Name, p.SKU, p.Category, p.Quantity, p.Price, p.Description,
			p.Image.Name, p.Image.URL, p.Image.Type, p.Image.Size, p.CreatedAt, p.UpdatedAt,
		).
		ToSql()
}

func (db *DB) listProductsByOwnerQuery(ownerID string) (string, []any, error) {
	return db.builder.
		Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (db *DB) findProductQuery(productID string) (string, []any, error) {
	return db.builder.
		Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": productID}).
		Limit(1).
		ToSql()
}

// updateProductQuery rewrites every mutable column. The caller merges the
// stored record with the client fields beforehand.
func (db *DB) updateProductQuery(p models.Product) (string, []any, error) {
	return db.builder.
		Update(productsTable).
		SetMap(map[string]any{
			"name":        p.Name,
			"category":    p.Category,
			"quantity":    p.Quantity,
			"price":       p.Price,
			"description": p.Description,
			"image_name":  p.Image.Name,
			"image_url":   p.Image.URL,
			"image_type":  p.Image.Type,
			"image_size":  p.Image.Size,
			"updated_at":  p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID, "user_id": p.OwnerID}).
		ToSql()
}

func (db *DB) deleteProductQuery(ownerID, productID string) (string, []any, error) {
	return db.builder.
		Delete(productsTable).
		Where(sq.Eq{"id": productID, "user_id": ownerID}).
		ToSql()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Photo, &u.Phone, &u.Bio, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanResetToken(s scanner) (models.ResetToken, error) {
	var t models.ResetToken
	err := s.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.CreatedAt, &t.ExpiresAt)
	return t, err
}

func scanProduct(s scanner) (models.Product, error) {
	var p models.Product
	err := s.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.SKU, &p.Category, &p.Quantity, &p.Price, &p.Description,
		&p.Image.Name, &p.Image.URL, &p.Image.Type, &p.Image.Size, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
