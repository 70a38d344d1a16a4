package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/deanw-dev/accounts-api/internal/platform/logger"
	"github.com/deanw-dev/accounts-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	// db is the root connection pool; nil on transaction-scoped copies
	// returned by WithTx.
	db         *sql.DB
	q          store.DBTX
	bcryptCost int
	logger     *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller, plus the bcrypt cost used when
// hashing plaintext passwords. If logger is nil, a default logger is used.
func NewPostgresUserStore(db *sql.DB, bcryptCost int, log *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresUserStore{
		db:         db,
		q:          db,
		bcryptCost: bcryptCost,
		logger:     log.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:         nil,
		q:          tx,
		bcryptCost: s.bcryptCost,
		logger:     s.logger,
	}
}

const userColumns = "id, name, email, cpf, hashed_password, updated_by, created_at, updated_at"

// Create implements store.UserStore.Create
// It validates the user, hashes the plaintext password and inserts the
// record. The duplicate pre-check and the insert run in one transaction so
// a concurrent registration surfaces as ErrEmailOrCPFExists either way:
// from the pre-check or from the unique constraint on commit.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	if user.Password == "" {
		return fmt.Errorf("%w: password required on create", store.ErrInvalidEntity)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)
	user.Password = ""

	if s.db == nil {
		// Already transaction-scoped.
		return s.create(ctx, user)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore, ok := s.WithTx(tx).(*PostgresUserStore)
		if !ok {
			return fmt.Errorf("%w: unexpected store type", store.ErrTransactionFailed)
		}
		return txStore.create(ctx, user)
	})
}

// create performs the duplicate check and insert on the store's current
// query target (connection or transaction).
func (s *PostgresUserStore) create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var existingID int64
	err := s.q.QueryRowContext(ctx,
		`SELECT id FROM users WHERE email = $1 OR cpf = $2`,
		user.Email, user.CPF,
	).Scan(&existingID)
	switch {
	case err == nil:
		log.Debug("duplicate email or cpf on create",
			slog.Int64("existing_id", existingID))
		return store.ErrEmailOrCPFExists
	case !errors.Is(err, sql.ErrNoRows):
		log.Error("failed to check for existing user",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	query := `
		INSERT INTO users (name, email, cpf, hashed_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err = s.q.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.CPF,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			// Lost a race with a concurrent registration.
			return fmt.Errorf("%w: %v", store.ErrEmailOrCPFExists, err)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID))
	return nil
}

// GetAll implements store.UserStore.GetAll
func (s *PostgresUserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := s.q.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	if users == nil {
		users = []*domain.User{}
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return s.getOne(ctx, query, id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return s.getOne(ctx, query, email)
}

// GetByEmailOrCPF implements store.UserStore.GetByEmailOrCPF
func (s *PostgresUserStore) GetByEmailOrCPF(ctx context.Context, email, cpf string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR cpf = $2 LIMIT 1`
	return s.getOne(ctx, query, email, cpf)
}

func (s *PostgresUserStore) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := scanUser(s.q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return user, nil
}

// Update implements store.UserStore.Update
// Only the mutable columns are written: name, hashed password and the
// updated-by reference. A plaintext Password on the user is hashed here
// and then cleared.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if user.Password != "" {
		if err := domain.ValidatePassword(user.Password); err != nil {
			log.Warn("password validation failed during update",
				slog.Int64("user_id", user.ID))
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.bcryptCost)
		if err != nil {
			log.Error("failed to hash password", slog.String("error", err.Error()))
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = string(hashed)
		user.Password = ""
	}

	user.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE users
		SET name = $1, hashed_password = $2, updated_by = $3, updated_at = $4
		WHERE id = $5
	`
	result, err := s.q.ExecContext(
		ctx,
		query,
		user.Name,
		user.HashedPassword,
		user.UpdatedBy,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		log.Debug("user not found for update", slog.Int64("user_id", user.ID))
		return store.ErrUserNotFound
	}

	log.Info("user updated successfully", slog.Int64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		log.Debug("user not found for delete", slog.Int64("user_id", id))
		return store.ErrUserNotFound
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var updatedBy sql.NullInt64

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CPF,
		&user.HashedPassword,
		&updatedBy,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedBy.Valid {
		user.UpdatedBy = &updatedBy.Int64
	}

	return &user, nil
}
