package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is matched by every [ValidationError].
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// User-facing validation messages.
const (
	MsgFillRequiredFields   = "Please fill in all required fields"
	MsgInvalidEmail         = "Please enter a valid email"
	MsgAddEmailAndPassword  = "Please add email and password"
	MsgAddOldAndNewPassword = "Please add old and new password"
	MsgAddEmail             = "Please add an email"
	MsgAddPassword          = "Please add a password"
	MsgBioTooLong           = "Bio must not be more than 250 characters"
	MsgFillAllFields        = "Please fill in all fields"
	MsgNegativeQuantity     = "Quantity must not be negative"
	MsgNegativePrice        = "Price must not be negative"
	MsgInvalidPrice         = "Price must be a valid number"
	MsgNoFieldsToUpdate     = "Please provide at least one field to update"
	MsgAddSubjectAndMessage = "Please add subject and message"
	MsgUnsupportedFormat    = "Unsupported file format"
	MsgFileSizeExceeded     = "File size limit exceeded. Maximum file size allowed is "
)

// ValidationError describes a rejected input. Message is safe to return to
// the client as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is reports true for [ErrValidation] so callers can branch with errors.Is
// without knowing the concrete message.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Message extracts the user-facing message from err, if err wraps a
// [ValidationError].
func Message(err error) (string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message, true
	}

	return "", false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
