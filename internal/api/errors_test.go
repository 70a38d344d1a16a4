package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deanw-dev/accounts-api/internal/api"
	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/deanw-dev/accounts-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not owner", domain.ErrNotOwner, http.StatusForbidden},
		{"not found", store.ErrNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"duplicate", store.ErrDuplicate, http.StatusBadRequest},
		{"email or cpf exists", store.ErrEmailOrCPFExists, http.StatusBadRequest},
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest},
		{"invalid cpf", domain.ErrInvalidCPF, http.StatusBadRequest},
		{"weak password", domain.ErrWeakPassword, http.StatusBadRequest},
		{"email immutable", domain.ErrEmailImmutable, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"wrapped sentinel", fmt.Errorf("context: %w", domain.ErrWeakPassword), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not owner", domain.ErrNotOwner, "You can only update your own profile"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"duplicate", store.ErrEmailOrCPFExists, "Email or CPF already registered"},
		{"missing fields", domain.ErrMissingFields, "All fields are required"},
		{"invalid cpf", domain.ErrInvalidCPF, "Invalid CPF format"},
		{"email immutable", domain.ErrEmailImmutable, "Email cannot be changed"},
		{
			"weak password",
			domain.ErrWeakPassword,
			"Password must contain at least 8 characters, including one uppercase letter, one lowercase letter and one number",
		},
		{"unknown error hides detail", errors.New("pq: column users.ssn does not exist"), "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}
}
