package usecase

import (
	"errors"

	"github.com/Rrens/space-reservation/internal/security"
)

// AuthErrorKind tags the variant of an AuthError
type AuthErrorKind string

const (
	KindInvalidCredentials AuthErrorKind = "InvalidCredentials"
	KindInvalidEmailFormat AuthErrorKind = "InvalidEmailFormat"
	KindInvalidName        AuthErrorKind = "InvalidName"
	KindValidation         AuthErrorKind = "Validation"
)

// AuthError is the auth-domain error. Issues is set for validation
// failures and lists every offending field.
type AuthError struct {
	Kind    AuthErrorKind    `json:"kind"`
	Message string           `json:"message"`
	Issues  []security.Issue `json:"issues,omitempty"`
}

func (e *AuthError) Error() string {
	return e.Message
}

// Name is the stable error name exposed to clients
func (e *AuthError) Name() string {
	return string(e.Kind) + "Error"
}

func NewInvalidCredentialsError() *AuthError {
	return &AuthError{Kind: KindInvalidCredentials, Message: "invalid email or password"}
}

func NewInvalidEmailFormatError(issues []security.Issue) *AuthError {
	return &AuthError{Kind: KindInvalidEmailFormat, Message: "invalid email format", Issues: issues}
}

func NewInvalidNameError(issues []security.Issue) *AuthError {
	return &AuthError{Kind: KindInvalidName, Message: "name must be between 2 and 50 characters", Issues: issues}
}

func NewValidationError(issues []security.Issue) *AuthError {
	return &AuthError{Kind: KindValidation, Message: "validation failed", Issues: issues}
}

// AsAuthError unwraps err into an *AuthError
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// signupError picks the most specific variant for a set of signup issues
func signupError(issues []security.Issue) *AuthError {
	for _, issue := range issues {
		if issue.Path == "email" {
			return NewInvalidEmailFormatError(issues)
		}
	}
	for _, issue := range issues {
		if issue.Path == "name" {
			return NewInvalidNameError(issues)
		}
	}
	return NewValidationError(issues)
}
