package api

import (
	"errors"
	"net/http"

	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/deanw-dev/accounts-api/internal/store"
)

// Outbound messages pinned by the API contract.
const (
	msgAllFieldsRequired    = "All fields are required"
	msgInvalidCPF           = "Invalid CPF format"
	msgWeakPassword         = "Password must contain at least 8 characters, including one uppercase letter, one lowercase letter and one number"
	msgAlreadyRegistered    = "Email or CPF already registered"
	msgEmailImmutable       = "Email cannot be changed"
	msgNotOwner             = "You can only update your own profile"
	msgUserNotFound         = "User not found"
	msgUserCreated          = "User created successfully"
	msgUserUpdated          = "User updated successfully"
	msgInternalServerError  = "Internal Server Error"
	msgInvalidRequestFormat = "Invalid request format"
	msgInvalidCredentials   = "Invalid credentials"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authorization errors
	case errors.Is(err, domain.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Registration conflicts surface as validation-style rejections,
	// not 409s.
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Validation errors
	case errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidCPF),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrEmailImmutable),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing error message based
// on the error type. Unknown errors collapse to a generic message; detail
// stays in the logs.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotOwner):
		return msgNotOwner

	case errors.Is(err, store.ErrUserNotFound), errors.Is(err, store.ErrNotFound):
		return msgUserNotFound

	case errors.Is(err, store.ErrDuplicate):
		return msgAlreadyRegistered

	case errors.Is(err, domain.ErrMissingFields):
		return msgAllFieldsRequired

	case errors.Is(err, domain.ErrInvalidCPF):
		return msgInvalidCPF

	case errors.Is(err, domain.ErrWeakPassword):
		return msgWeakPassword

	case errors.Is(err, domain.ErrEmailImmutable):
		return msgEmailImmutable

	default:
		return msgInternalServerError
	}
}
