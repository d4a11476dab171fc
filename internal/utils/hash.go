// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// resetTokenBytes is the amount of entropy in a password reset token.
const resetTokenBytes = 32

// HashPassword derives a bcrypt hash of password with the default cost.
//
// Passwords longer than 72 bytes are rejected by bcrypt and reported as an
// error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is treated as a mismatch.
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateResetToken returns a fresh raw reset token for userID together
// with the hash that is persisted. Only the raw value is ever emailed; only
// the hash is ever stored.
//
// The raw token is 32 random bytes in hex followed by the user ID, so two
// users can never be handed the same value.
func GenerateResetToken(userID string) (raw, hash string, err error) {
	if userID == "" {
		return "", "", errors.New("empty user id for reset token")
	}

	buf := make([]byte, resetTokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error reading random bytes: %w", err)
	}

	raw = hex.EncodeToString(buf) + userID
	return raw, HashResetToken(raw), nil
}

// HashResetToken computes the lowercase hex SHA-256 digest of a raw reset
// token. It is deterministic, so the digest of a token presented by a client
// can be looked up directly.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
