// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrMissingFields is returned when a create request omits one or more
	// of the required fields (name, email, cpf, password).
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidCPF is returned when a CPF fails checksum validation.
	ErrInvalidCPF = errors.New("invalid CPF format")

	// ErrWeakPassword is returned when a password doesn't meet the policy:
	// at least 8 characters with one uppercase letter, one lowercase letter
	// and one digit.
	ErrWeakPassword = errors.New("password does not meet policy")

	// ErrEmailImmutable is returned when an update request attempts to
	// supply an email field. Email is fixed at registration time.
	ErrEmailImmutable = errors.New("email cannot be changed")

	// ErrNotOwner is returned when a caller tries to modify a record that
	// belongs to a different user.
	ErrNotOwner = errors.New("caller does not own this record")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)
