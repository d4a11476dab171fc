// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected request type.
	ErrInvalidJSON = errors.New("invalid json body")

	// ErrInvalidForm is returned when a multipart body cannot be parsed or
	// exceeds the upload limit.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrNoSessionCookie is returned by the access guard when the request
	// carries no "token" cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNoUserInContext is returned by protected handlers when the access
	// guard did not run before them.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
