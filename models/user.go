package models

import "time"

// DefaultUserPhoto is assigned to accounts that never uploaded an avatar.
const DefaultUserPhoto = "https://e7.pngegg.com/pngimages/753/432/png-clipart-user-profile-2018-in-sight-user-conference-expo-business-default-business-angle-service-thumbnail.png"

// User represents an account entity used for authentication and as the owner
// of inventory records.
//
// PasswordHash is never serialized. Handlers expose users only through
// [Profile].
type User struct {
	// ID is the opaque identifier assigned on creation (UUIDv7).
	ID string `json:"_id"`

	// Username is the display name of the user. Required.
	Username string `json:"username"`

	// Email is the unique login identifier, stored trimmed and lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	Photo string `json:"photo"`
	Phone string `json:"phone"`
	Bio   string `json:"bio"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Photo:    u.Photo,
		Phone:    u.Phone,
		Bio:      u.Bio,
	}
}

// Profile is the public part of a [User] returned to clients.
type Profile struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Photo    string `json:"photo"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

// AuthResponse is returned by register and login: the profile plus the
// issued session token (also set as a cookie).
type AuthResponse struct {
	Profile
	Token string `json:"token"`
}
