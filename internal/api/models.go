package api

import (
	"time"

	"github.com/deanw-dev/accounts-api/internal/domain"
)

// Common request/response structures

// CreateUserRequest defines the payload for the user creation endpoint.
// No validate tags: the handler checks the fields itself because the
// rejection order (presence, CPF, password, uniqueness) is contractual.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// UpdateUserRequest defines the payload for the user update endpoint.
// Pointer fields distinguish "absent" from "empty": an email key present
// in the body is rejected regardless of its value.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the outbound representation of a user.
// It never carries a password in any form.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CPF       string    `json:"cpf"`
	UpdatedBy *int64    `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserMessageResponse wraps a user with a human-readable outcome message,
// returned by the create and update endpoints.
type UserMessageResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CPF:       user.CPF,
		UpdatedBy: user.UpdatedBy,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// usersToResponse converts a slice of users, keeping an empty (non-nil)
// slice so the list endpoint serializes to [] rather than null.
func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, userToResponse(user))
	}
	return out
}
