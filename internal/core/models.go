// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import "time"

// DefaultGitHubHost is the API host used when a repository is registered
// without an explicit one. Enterprise installations typically use
// "github.yourcompany.com/api/v3" instead.
const DefaultGitHubHost = "api.github.com"

// User is an account that can authenticate against the API.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	IsActive     bool   `db:"is_active"`
	IsSuperuser  bool   `db:"is_superuser"`
}

// Repository is a registered GitHub repository whose pull requests can be reviewed.
type Repository struct {
	ID             int64  `db:"id"`
	RepositoryName string `db:"repository_name"` // "owner/name" form
	GitHubURL      string `db:"github_url"`      // API host, e.g. "api.github.com"
}

// PullRequest is a provider pull request registered under a repository.
type PullRequest struct {
	ID                int64 `db:"id"`
	RepositoryID      int64 `db:"repository_id"`
	PullRequestNumber int   `db:"pull_request_number"`
}

// Review is one AI review pass over a pull request's changed files.
type Review struct {
	ID            int64     `db:"id"`
	PullRequestID int64     `db:"pull_request_id"`
	CreatedAt     time.Time `db:"created_at"`
}

// FileReview holds the generated review text for a single changed file.
type FileReview struct {
	ID       int64  `db:"id"`
	ReviewID int64  `db:"review_id"`
	FileName string `db:"file_name"`
	Content  string `db:"content"`
}

// FileChange describes one file modified by a pull request, as reported by the
// provider. It is built fresh for each review run and never persisted.
type FileChange struct {
	Filename  string
	Patch     string
	Additions int
	Deletions int
	Changes   int
}

// ReviewResult is the caller-visible outcome of a review run. FileNames and
// ReviewContents are index-aligned and follow the provider's changed-file order.
type ReviewResult struct {
	ReviewID       int64
	FileNames      []string
	ReviewContents []string
}
