// Package storage provides PostgreSQL-backed implementations of the
// persistence interfaces defined in the core package.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/approved/internal/core"
)

type userStore struct {
	db *sqlx.DB
}

// NewUserStore creates a new core.UserStore backed by PostgreSQL.
func NewUserStore(db *sqlx.DB) core.UserStore {
	return &userStore{db: db}
}

// CreateUser inserts a new active, non-superuser account.
func (s *userStore) CreateUser(ctx context.Context, username, passwordHash string) (*core.User, error) {
	query := `
		INSERT INTO users (username, password_hash, is_active, is_superuser)
		VALUES ($1, $2, TRUE, FALSE)
		RETURNING id, username, password_hash, is_active, is_superuser`

	var u core.User
	if err := s.db.GetContext(ctx, &u, query, username, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}
	return &u, nil
}

// GetUserByUsername looks up a user; returns core.ErrNotFound if absent.
func (s *userStore) GetUserByUsername(ctx context.Context, username string) (*core.User, error) {
	query := `SELECT id, username, password_hash, is_active, is_superuser FROM users WHERE username = $1`

	var u core.User
	err := s.db.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return &u, nil
}
