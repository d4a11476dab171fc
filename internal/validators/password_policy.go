package validators

import (
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicyVersion identifies the current rule set. It is reported by
// the version endpoint so clients can adapt hints without a deploy.
const PasswordPolicyVersion = "v2"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// PasswordPolicy is a set of password rules. A zero value accepts anything.
// MaxLength is measured in bytes, MinLength in characters.
type PasswordPolicy struct {
	MinLength      int
	MaxLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireDigit   bool
	RequireSpecial bool
}

// RegistrationPolicy applies to new accounts and password resets.
func RegistrationPolicy(minLength int) PasswordPolicy {
	return PasswordPolicy{MinLength: minLength, MaxLength: MaxPasswordBytes}
}

// StrongPolicy applies when an authenticated user changes the password.
func StrongPolicy(minLength int) PasswordPolicy {
	return PasswordPolicy{
		MinLength:      minLength,
		MaxLength:      MaxPasswordBytes,
		RequireUpper:   true,
		RequireLower:   true,
		RequireDigit:   true,
		RequireSpecial: true,
	}
}

// Failures returns a message for every rule password breaks, in a stable
// order. An empty result means the password is acceptable.
func (p PasswordPolicy) Failures(password string) []string {
	var failures []string

	if p.MinLength > 0 && len([]rune(password)) < p.MinLength {
		failures = append(failures, fmt.Sprintf("Password must be at least %d characters", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		failures = append(failures, fmt.Sprintf("Password must not be more than %d bytes", p.MaxLength))
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if p.RequireUpper && !hasUpper {
		failures = append(failures, "Password must contain at least one uppercase letter")
	}
	if p.RequireLower && !hasLower {
		failures = append(failures, "Password must contain at least one lowercase letter")
	}
	if p.RequireDigit && !hasDigit {
		failures = append(failures, "Password must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecial {
		failures = append(failures, "Password must contain at least one special character")
	}

	return failures
}

// Validate returns a [ValidationError] joining every failure with "; ", or
// nil when the password satisfies the policy.
func (p PasswordPolicy) Validate(password string) error {
	failures := p.Failures(password)
	if len(failures) == 0 {
		return nil
	}

	return newValidationError(FieldPassword, strings.Join(failures, "; "))
}
