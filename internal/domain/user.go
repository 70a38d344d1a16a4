package domain

import (
	"time"
	"unicode"
)

// User represents a registered user account.
// Password holds a plaintext password only transiently, during registration
// or a password change, and is hashed by the store before persistence.
// Neither password field is ever serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CPF            string    `json:"cpf"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	UpdatedBy      *int64    `json:"updated_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given fields and sets the
// creation/update timestamps. The ID is assigned by the store on insert.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The store is responsible for hashing it before persistence.
func NewUser(name, email, cpf, password string) (*User, error) {
	user := &User{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" || u.Email == "" || u.CPF == "" {
		return ErrMissingFields
	}

	if u.Password != "" {
		// A plaintext password is present, so it must satisfy the policy.
		return ValidatePassword(u.Password)
	}

	// Existing records carry only the hash.
	if u.HashedPassword == "" {
		return ErrMissingFields
	}

	return nil
}

// ValidatePassword checks a plaintext password against the account policy:
// minimum 8 characters with at least one uppercase letter, one lowercase
// letter and one digit. There is no upper length bound and no
// special-character requirement.
//
// Implemented as a character scan rather than a single regular expression
// because Go's regexp engine has no lookahead.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}
