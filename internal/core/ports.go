package core

import "context"

// ProviderClient fetches pull request data from the source provider.
//
//go:generate mockgen -destination=../../mocks/mock_provider_client.go -package=mocks . ProviderClient
type ProviderClient interface {
	// FetchChangedFiles lists the files modified by a pull request, in provider
	// order. Entries the provider reports without a patch or change counts
	// (binary files, renames) are dropped.
	FetchChangedFiles(ctx context.Context, baseURL, repoFullName string, prNumber int) ([]FileChange, error)
}

// FileReviewer produces the review text for a single changed file.
//
//go:generate mockgen -destination=../../mocks/mock_file_reviewer.go -package=mocks . FileReviewer
type FileReviewer interface {
	Review(ctx context.Context, change FileChange) (string, error)
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

// RepositoryStore persists registered repositories.
//
//go:generate mockgen -destination=../../mocks/mock_repository_store.go -package=mocks . RepositoryStore
type RepositoryStore interface {
	CreateRepository(ctx context.Context, repositoryName, githubURL string) (*Repository, error)
	GetRepository(ctx context.Context, id int64) (*Repository, error)
	ListRepositories(ctx context.Context) ([]Repository, error)
	DeleteRepository(ctx context.Context, id int64) error
}

// PullRequestStore persists registered pull requests.
//
//go:generate mockgen -destination=../../mocks/mock_pull_request_store.go -package=mocks . PullRequestStore
type PullRequestStore interface {
	CreatePullRequest(ctx context.Context, repositoryID int64, number int) (*PullRequest, error)
	GetPullRequest(ctx context.Context, id int64) (*PullRequest, error)
	ListPullRequests(ctx context.Context, repositoryID int64) ([]PullRequest, error)
}

// ReviewStore persists reviews and their per-file sub-reviews.
//
//go:generate mockgen -destination=../../mocks/mock_review_store.go -package=mocks . ReviewStore
type ReviewStore interface {
	CreateReview(ctx context.Context, pullRequestID int64) (*Review, error)
	// AddFileReviews inserts one row per file, pairing fileNames[i] with
	// contents[i] and preserving their order.
	AddFileReviews(ctx context.Context, reviewID int64, fileNames, contents []string) error
	GetReview(ctx context.Context, reviewID int64) (*ReviewResult, error)
	ListReviews(ctx context.Context, pullRequestID int64) ([]Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error
}
