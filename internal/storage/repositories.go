package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/approved/internal/core"
)

type repositoryStore struct {
	db *sqlx.DB
}

// NewRepositoryStore creates a new core.RepositoryStore backed by PostgreSQL.
func NewRepositoryStore(db *sqlx.DB) core.RepositoryStore {
	return &repositoryStore{db: db}
}

// CreateRepository registers a repository. An empty githubURL falls back to
// the public API host.
func (s *repositoryStore) CreateRepository(ctx context.Context, repositoryName, githubURL string) (*core.Repository, error) {
	if githubURL == "" {
		githubURL = core.DefaultGitHubHost
	}
	query := `
		INSERT INTO repositories (repository_name, github_url)
		VALUES ($1, $2)
		RETURNING id, repository_name, github_url`

	var r core.Repository
	if err := s.db.GetContext(ctx, &r, query, repositoryName, githubURL); err != nil {
		return nil, fmt.Errorf("failed to create repository %q: %w", repositoryName, err)
	}
	return &r, nil
}

func (s *repositoryStore) GetRepository(ctx context.Context, id int64) (*core.Repository, error) {
	query := `SELECT id, repository_name, github_url FROM repositories WHERE id = $1`

	var r core.Repository
	err := s.db.GetContext(ctx, &r, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get repository %d: %w", id, err)
	}
	return &r, nil
}

func (s *repositoryStore) ListRepositories(ctx context.Context) ([]core.Repository, error) {
	query := `SELECT id, repository_name, github_url FROM repositories ORDER BY id`

	var repos []core.Repository
	if err := s.db.SelectContext(ctx, &repos, query); err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}
	return repos, nil
}

// DeleteRepository removes a repository; its pull requests and their reviews
// go with it via the schema's ON DELETE CASCADE.
func (s *repositoryStore) DeleteRepository(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM repositories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete repository %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}
