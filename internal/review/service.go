// Package review implements the pull request review pipeline: fetching changed
// files from the provider, fanning out per-file AI reviews under a concurrency
// bound, and persisting the aggregate result.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sevigo/approved/internal/core"
)

// Service coordinates the stores, the provider client, and the file reviewer.
type Service struct {
	repos         core.RepositoryStore
	pullRequests  core.PullRequestStore
	reviews       core.ReviewStore
	provider      core.ProviderClient
	reviewer      core.FileReviewer
	maxConcurrent int
	logger        *slog.Logger
}

// NewService creates the review service. maxConcurrent bounds the number of
// file reviews in flight at once; values below 1 are raised to 1.
func NewService(
	repos core.RepositoryStore,
	pullRequests core.PullRequestStore,
	reviews core.ReviewStore,
	provider core.ProviderClient,
	reviewer core.FileReviewer,
	maxConcurrent int,
	logger *slog.Logger,
) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Service{
		repos:         repos,
		pullRequests:  pullRequests,
		reviews:       reviews,
		provider:      provider,
		reviewer:      reviewer,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// CreateReview runs one review pass over a pull request's changed files.
//
// The per-file reviews run concurrently, limited by a semaphore so a pull
// request with hundreds of files cannot exhaust the AI backend or trip its
// rate limits. Results are reassembled in the provider's file order. A single
// failed file review aborts the whole call and nothing is persisted; queued
// tasks observe the cancelled context and never reach the backend.
//
// The review row is written before returning, but the file review rows are
// written by a detached goroutine: the response is assembled from the
// in-memory contents, so a client may read the response before storage
// reflects it. That eventual-consistency window mirrors the write ordering the
// dashboard was built against.
func (s *Service) CreateReview(ctx context.Context, repositoryID, pullRequestID int64) (*core.ReviewResult, error) {
	repo, err := s.repos.GetRepository(ctx, repositoryID)
	if err != nil {
		return nil, fmt.Errorf("repository %d: %w", repositoryID, err)
	}
	pr, err := s.pullRequests.GetPullRequest(ctx, pullRequestID)
	if err != nil {
		return nil, fmt.Errorf("pull request %d: %w", pullRequestID, err)
	}

	s.logger.Info("starting review",
		"repo", repo.RepositoryName, "pr_number", pr.PullRequestNumber, "pull_request_id", pr.ID)

	changes, err := s.provider.FetchChangedFiles(ctx, repo.GitHubURL, repo.RepositoryName, pr.PullRequestNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch changed files for %s#%d: %w",
			repo.RepositoryName, pr.PullRequestNumber, err)
	}

	contents, err := s.reviewFiles(ctx, changes)
	if err != nil {
		return nil, err
	}

	rev, err := s.reviews.CreateReview(ctx, pullRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to persist review for pull request %d: %w", pullRequestID, err)
	}

	fileNames := make([]string, len(changes))
	for i, change := range changes {
		fileNames[i] = change.Filename
	}

	go s.persistFileReviews(rev.ID, fileNames, contents)

	s.logger.Info("review completed",
		"review_id", rev.ID, "repo", repo.RepositoryName, "pr_number", pr.PullRequestNumber, "files", len(fileNames))

	return &core.ReviewResult{
		ReviewID:       rev.ID,
		FileNames:      fileNames,
		ReviewContents: contents,
	}, nil
}

// reviewFiles fans out one reviewer call per changed file and collects the
// results in input order. The semaphore is acquired before each call and
// released unconditionally, so the bound holds even when a sibling fails.
func (s *Service) reviewFiles(ctx context.Context, changes []core.FileChange) ([]string, error) {
	contents := make([]string, len(changes))

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, s.maxConcurrent)

	for i, change := range changes {
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-gctx.Done():
				return gctx.Err()
			}

			// A sibling may have failed while we waited for a slot.
			if gctx.Err() != nil {
				return gctx.Err()
			}

			text, err := s.reviewer.Review(gctx, change)
			if err != nil {
				return fmt.Errorf("file %q: %w", change.Filename, err)
			}
			contents[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("review generation failed: %w", err)
	}
	return contents, nil
}

// persistFileReviews writes the per-file rows after the response is already on
// its way. Failures here leave a review with no file reviews; that partial
// state is logged, never surfaced to the client.
func (s *Service) persistFileReviews(reviewID int64, fileNames, contents []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.reviews.AddFileReviews(ctx, reviewID, fileNames, contents); err != nil {
		s.logger.Error("failed to persist file reviews",
			"review_id", reviewID, "files", len(fileNames), "error", err)
	}
}
