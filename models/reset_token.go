package models

import "time"

// ResetToken is a single-use password reset credential.
//
// Only the sha256 of the random value is stored; the raw value travels to the
// user by email and is never persisted.
type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the token is no longer usable at the given moment.
func (t ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
