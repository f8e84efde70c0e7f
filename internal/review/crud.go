package review

import (
	"context"
	"fmt"

	"github.com/sevigo/approved/internal/core"
)

// The dashboard drives plain CRUD around the review pipeline; these
// pass-throughs keep the HTTP layer off the stores.

func (s *Service) AddRepository(ctx context.Context, repositoryName, githubURL string) (*core.Repository, error) {
	return s.repos.CreateRepository(ctx, repositoryName, githubURL)
}

func (s *Service) GetRepository(ctx context.Context, id int64) (*core.Repository, error) {
	return s.repos.GetRepository(ctx, id)
}

func (s *Service) ListRepositories(ctx context.Context) ([]core.Repository, error) {
	return s.repos.ListRepositories(ctx)
}

func (s *Service) DeleteRepository(ctx context.Context, id int64) error {
	return s.repos.DeleteRepository(ctx, id)
}

// AddPullRequest registers a pull request under an existing repository. The
// repository is looked up first so a dangling id fails with core.ErrNotFound
// instead of a foreign key violation.
func (s *Service) AddPullRequest(ctx context.Context, repositoryID int64, number int) (*core.PullRequest, error) {
	if _, err := s.repos.GetRepository(ctx, repositoryID); err != nil {
		return nil, fmt.Errorf("repository %d: %w", repositoryID, err)
	}
	return s.pullRequests.CreatePullRequest(ctx, repositoryID, number)
}

func (s *Service) GetPullRequest(ctx context.Context, id int64) (*core.PullRequest, error) {
	return s.pullRequests.GetPullRequest(ctx, id)
}

func (s *Service) ListPullRequests(ctx context.Context, repositoryID int64) ([]core.PullRequest, error) {
	return s.pullRequests.ListPullRequests(ctx, repositoryID)
}

func (s *Service) GetReview(ctx context.Context, reviewID int64) (*core.ReviewResult, error) {
	return s.reviews.GetReview(ctx, reviewID)
}

func (s *Service) ListReviews(ctx context.Context, pullRequestID int64) ([]core.Review, error) {
	return s.reviews.ListReviews(ctx, pullRequestID)
}

func (s *Service) DeleteReview(ctx context.Context, reviewID int64) error {
	return s.reviews.DeleteReview(ctx, reviewID)
}
