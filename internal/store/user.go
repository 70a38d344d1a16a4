package store

import (
	"context"
	"database/sql"

	"github.com/deanw-dev/accounts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// It handles domain validation and password hashing internally.
	// Returns ErrEmailOrCPFExists if the email or CPF is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetAll retrieves every user in storage order.
	// Returns an empty slice when there are no users.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByEmailOrCPF retrieves the user holding either the given email or
	// the given CPF, whichever matches first. Used for registration
	// uniqueness checks. Returns ErrUserNotFound when neither is taken.
	GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.User, error)

	// Update modifies an existing user's mutable details (name, password,
	// updated-by reference). If a plaintext Password is set on the user it
	// is hashed and the stored hash replaced; otherwise the hash is kept.
	// Email and CPF are immutable and never written.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// This operation is permanent and cannot be undone.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
