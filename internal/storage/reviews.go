package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sevigo/approved/internal/core"
)

type reviewStore struct {
	db *sqlx.DB
}

// NewReviewStore creates a new core.ReviewStore backed by PostgreSQL.
func NewReviewStore(db *sqlx.DB) core.ReviewStore {
	return &reviewStore{db: db}
}

// CreateReview inserts a new review row owned by the given pull request.
func (s *reviewStore) CreateReview(ctx context.Context, pullRequestID int64) (*core.Review, error) {
	query := `
		INSERT INTO reviews (pull_request_id)
		VALUES ($1)
		RETURNING id, pull_request_id, created_at`

	var r core.Review
	if err := s.db.GetContext(ctx, &r, query, pullRequestID); err != nil {
		return nil, fmt.Errorf("failed to create review for pull request %d: %w", pullRequestID, err)
	}
	return &r, nil
}

// AddFileReviews inserts one row per reviewed file in a single transaction,
// preserving the input order. Serial row ids keep that order readable later.
func (s *reviewStore) AddFileReviews(ctx context.Context, reviewID int64, fileNames, contents []string) error {
	if len(fileNames) != len(contents) {
		return fmt.Errorf("file name and content counts differ: %d vs %d", len(fileNames), len(contents))
	}
	if len(fileNames) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO file_reviews (review_id, file_name, content) VALUES ($1, $2, $3)`
	for i, name := range fileNames {
		if _, err := tx.ExecContext(ctx, query, reviewID, name, contents[i]); err != nil {
			return fmt.Errorf("failed to insert file review for %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit file reviews for review %d: %w", reviewID, err)
	}
	return nil
}

// GetReview returns a review together with its file reviews, ordered as inserted.
func (s *reviewStore) GetReview(ctx context.Context, reviewID int64) (*core.ReviewResult, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM reviews WHERE id = $1)`, reviewID); err != nil {
		return nil, fmt.Errorf("failed to check review %d: %w", reviewID, err)
	}
	if !exists {
		return nil, core.ErrNotFound
	}

	query := `SELECT id, review_id, file_name, content FROM file_reviews WHERE review_id = $1 ORDER BY id`

	var fileReviews []core.FileReview
	if err := s.db.SelectContext(ctx, &fileReviews, query, reviewID); err != nil {
		return nil, fmt.Errorf("failed to get file reviews for review %d: %w", reviewID, err)
	}

	result := &core.ReviewResult{
		ReviewID:       reviewID,
		FileNames:      make([]string, 0, len(fileReviews)),
		ReviewContents: make([]string, 0, len(fileReviews)),
	}
	for _, fr := range fileReviews {
		result.FileNames = append(result.FileNames, fr.FileName)
		result.ReviewContents = append(result.ReviewContents, fr.Content)
	}
	return result, nil
}

func (s *reviewStore) ListReviews(ctx context.Context, pullRequestID int64) ([]core.Review, error) {
	query := `SELECT id, pull_request_id, created_at FROM reviews WHERE pull_request_id = $1 ORDER BY id`

	var reviews []core.Review
	if err := s.db.SelectContext(ctx, &reviews, query, pullRequestID); err != nil {
		return nil, fmt.Errorf("failed to list reviews for pull request %d: %w", pullRequestID, err)
	}
	return reviews, nil
}

// DeleteReview removes a review; its file reviews go with it via ON DELETE CASCADE.
func (s *reviewStore) DeleteReview(ctx context.Context, reviewID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review %d: %w", reviewID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return core.ErrNotFound
	}
	return nil
}
