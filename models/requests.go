package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest carries profile changes. Empty fields keep the stored
// value; the email cannot be changed through this request.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo"`

	Image *ImageFile `json:"-"`
}

// ChangePasswordRequest is the body of PATCH /api/users/changepassword.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	Password    string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/users/forgotpassword.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of PUT /api/users/resetpassword/{resetToken}.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ContactRequest is the body of POST /api/contactus.
type ContactRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}
