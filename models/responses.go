package models

// MessageResponse is the generic `{message}` body of successful operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse is used by flows that report a success flag alongside the
// message (contact relay and forgot-password).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. Stack is filled only in
// the development environment.
type ErrorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}
