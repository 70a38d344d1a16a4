package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			password: "minhaCaranga67",
			wantErr:  nil,
		},
		{
			name:     "valid with special characters",
			password: "Valid-Pass1!",
			wantErr:  nil,
		},
		{
			name:     "valid long password",
			password: "aVeryLongPasswordIndeed1WithLotsOfCharacters",
			wantErr:  nil,
		},
		{
			name:     "too short",
			password: "Ab1cdef",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "no uppercase",
			password: "abcdefg1",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "no lowercase",
			password: "ABCDEFG1",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "no digit",
			password: "Abcdefgh",
			wantErr:  ErrWeakPassword,
		},
		{
			name:     "empty",
			password: "",
			wantErr:  ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		user, err := NewUser("Dean Winchester", "dean@example.com", "52998224725", "minhaCaranga67")
		require.NoError(t, err)

		assert.Equal(t, "Dean Winchester", user.Name)
		assert.Equal(t, "dean@example.com", user.Email)
		assert.Equal(t, "52998224725", user.CPF)
		assert.Equal(t, "minhaCaranga67", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
		assert.Nil(t, user.UpdatedBy)
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := NewUser("", "dean@example.com", "52998224725", "minhaCaranga67")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := NewUser("Dean Winchester", "dean@example.com", "52998224725", "weak")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	t.Run("stored user with hash only", func(t *testing.T) {
		user := &User{
			ID:             1,
			Name:           "Jimmy Novak",
			Email:          "jimmy@example.com",
			CPF:            "52998224725",
			HashedPassword: "$2a$10$somethinghashed",
		}
		assert.NoError(t, user.Validate())
	})

	t.Run("no password at all", func(t *testing.T) {
		user := &User{
			ID:    1,
			Name:  "Jimmy Novak",
			Email: "jimmy@example.com",
			CPF:   "52998224725",
		}
		assert.ErrorIs(t, user.Validate(), ErrMissingFields)
	})
}
