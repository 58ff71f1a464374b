package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/NomanKhan13/focusTube/internal/core/domain"
	"github.com/NomanKhan13/focusTube/internal/core/port"
	"github.com/google/uuid"
)

type sqlUserRepository struct {
	db SQLQuerier
}

// NewSQLUserRepository creates sqlUserRepository that implements port.UserRepository
func NewSQLUserRepository(db SQLQuerier) port.UserRepository {
	return &sqlUserRepository{db: db}
}

// Create inserts a new user row; a duplicate username or email is domain.ErrConflict
func (s *sqlUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, full_name, email, password_hash)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.FullName, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: username or email already taken", domain.ErrConflict)
		}
		return fmt.Errorf("error inserting user: %w", err)
	}
	return nil
}

// FindByID finds a user by id
func (s *sqlUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, username, full_name, email, password_hash, created_at, updated_at
              FROM users
              WHERE id = $1`

	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// FindByLogin finds a user by username or email
func (s *sqlUserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT id, username, full_name, email, password_hash, created_at, updated_at
              FROM users
              WHERE username = $1 OR email = $1`

	return s.scanOne(s.db.QueryRowContext(ctx, query, login))
}

// Update persists mutable account fields. Username is fixed at registration;
// a duplicate email is domain.ErrConflict.
func (s *sqlUserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
              SET full_name = $1, email = $2, password_hash = $3, updated_at = now()
              WHERE id = $4
              RETURNING updated_at`

	err := s.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.PasswordHash, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: user %s", domain.ErrNotFound, user.ID)
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already taken", domain.ErrConflict)
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

func (s *sqlUserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.FullName, &user.Email, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return &user, nil
}
