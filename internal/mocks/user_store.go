// Package mocks provides hand-rolled test doubles for the interfaces
// consumed by the API layer.
package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/deanw-dev/accounts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
// Each method can be overridden with a function field; without one, a
// simple in-memory map keyed by user ID backs the call.
type MockUserStore struct {
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetAllFn          func(ctx context.Context) ([]*domain.User, error)
	GetByIDFn         func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	GetByEmailOrCPFFn func(ctx context.Context, email, cpf string) (*domain.User, error)
	UpdateFn          func(ctx context.Context, user *domain.User) error
	DeleteFn          func(ctx context.Context, id int64) error

	Users  map[int64]*domain.User
	nextID int64
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[int64]*domain.User),
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Seed inserts a user directly into the backing map, assigning an ID, and
// returns it. Unlike Create it performs no validation or hashing.
func (m *MockUserStore) Seed(user *domain.User) *domain.User {
	m.nextID++
	user.ID = m.nextID
	m.Users[user.ID] = user
	return user
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email || existing.CPF == user.CPF {
			return store.ErrEmailOrCPFExists
		}
	}

	m.nextID++
	user.ID = m.nextID
	user.HashedPassword = "hashed:" + user.Password
	user.Password = ""
	m.Users[user.ID] = user
	return nil
}

// GetAll implements the UserStore interface.
func (m *MockUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	users := make([]*domain.User, 0, len(m.Users))
	for id := int64(1); id <= m.nextID; id++ {
		if user, ok := m.Users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmailOrCPF implements the UserStore interface.
func (m *MockUserStore) GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.User, error) {
	if m.GetByEmailOrCPFFn != nil {
		return m.GetByEmailOrCPFFn(ctx, email, cpf)
	}

	for _, user := range m.Users {
		if user.Email == email || user.CPF == cpf {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, ok := m.Users[user.ID]; !ok {
		return store.ErrUserNotFound
	}

	if user.Password != "" {
		user.HashedPassword = "hashed:" + user.Password
		user.Password = ""
	}
	user.UpdatedAt = time.Now().UTC()
	m.Users[user.ID] = user
	return nil
}

// Delete implements the UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface for transaction support.
// The mock has no transaction semantics, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
