package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/approved/internal/core"
)

type pullRequestStore struct {
	db *sqlx.DB
}

// NewPullRequestStore creates a new core.PullRequestStore backed by PostgreSQL.
func NewPullRequestStore(db *sqlx.DB) core.PullRequestStore {
	return &pullRequestStore{db: db}
}

func (s *pullRequestStore) CreatePullRequest(ctx context.Context, repositoryID int64, number int) (*core.PullRequest, error) {
	query := `
		INSERT INTO pull_requests (repository_id, pull_request_number)
		VALUES ($1, $2)
		RETURNING id, repository_id, pull_request_number`

	var pr core.PullRequest
	if err := s.db.GetContext(ctx, &pr, query, repositoryID, number); err != nil {
		return nil, fmt.Errorf("failed to create pull request #%d for repository %d: %w", number, repositoryID, err)
	}
	return &pr, nil
}

func (s *pullRequestStore) GetPullRequest(ctx context.Context, id int64) (*core.PullRequest, error) {
	query := `SELECT id, repository_id, pull_request_number FROM pull_requests WHERE id = $1`

	var pr core.PullRequest
	err := s.db.GetContext(ctx, &pr, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pull request %d: %w", id, err)
	}
	return &pr, nil
}

func (s *pullRequestStore) ListPullRequests(ctx context.Context, repositoryID int64) ([]core.PullRequest, error) {
	query := `SELECT id, repository_id, pull_request_number FROM pull_requests WHERE repository_id = $1 ORDER BY id`

	var prs []core.PullRequest
	if err := s.db.SelectContext(ctx, &prs, query, repositoryID); err != nil {
		return nil, fmt.Errorf("failed to list pull requests for repository %d: %w", repositoryID, err)
	}
	return prs, nil
}
