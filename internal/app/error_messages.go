// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pinvent server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place keeps the wording consistent with the web client, which shows
// them to users verbatim.
package app

// Error messages.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when a multipart body is malformed or larger
	// than the upload limit allows.
	MsgInvalidForm = "Invalid form data was passed"

	// MsgInvalidDataProvided is the fallback for rejected input without a
	// more precise validation message.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgNotAuthorized is returned by the access guard for a missing,
	// invalid or expired session, and when the session user no longer exists.
	MsgNotAuthorized = "Not authorized, please login"

	// MsgInvalidCredentials is returned by login for both an unknown email
	// and a wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgOldPasswordIncorrect is returned by change password when the
	// current password does not verify.
	MsgOldPasswordIncorrect = "Old password is incorrect"

	// MsgSamePassword is returned by reset password when the new password
	// equals the current one.
	MsgSamePassword = "New password must be different from the old one"

	// MsgInvalidOrExpiredToken covers every reset-token failure: unknown,
	// expired, already used or orphaned.
	MsgInvalidOrExpiredToken = "Invalid or Expired Token"

	MsgEmailAlreadyRegistered = "Email has already been registered"
	MsgProductAlreadyExists   = "Product with the same name or SKU already exists"

	MsgUserNotFound          = "User does not exist"
	MsgProductNotFound       = "Product not found"
	MsgRouteNotFound         = "Not found"
	MsgMethodNotAllowed      = "Method not allowed"
	MsgResetEmailNotSent     = "Email not sent, please try again"
	MsgContactEmailNotSent   = "Email could not be sent, please try again later"
	MsgImageUploadFailed     = "Image upload failed, please try again"
	MsgTooManyRequests       = "Too many attempts, please try again later"
	MsgInternalServerError   = "Internal server error"
	MsgRequestTimeoutElapsed = "Request timed out"
)

// Success messages.
const (
	MsgUserLoggedOut    = "User logged out"
	MsgPasswordUpdated  = "Password updated successfully"
	MsgResetEmailSent   = "Reset Email Sent"
	MsgPasswordReset    = "Password Reset Successful, Please Login"
	MsgProductDeleted   = "Product deleted."
	MsgContactEmailSent = "Email Sent"
	MsgHealthy          = "ok"
)
