// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/approved/internal/core"
)

// Client fetches pull request file changes from GitHub, including GitHub
// Enterprise hosts. Each registered repository carries its own API host, so the
// underlying go-github client is built per call from that host.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

var _ core.ProviderClient = (*Client)(nil)

// NewClient creates a provider client authenticated with a personal access
// token. The HTTP client enforces a connect timeout but no overall deadline:
// large pull requests can take a while to serialize, so reads are unbounded.
func NewClient(ctx context.Context, token string, connTimeout time.Duration, logger *slog.Logger) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)

	base := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   connTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)

	return &Client{
		httpClient: oauth2.NewClient(ctx, ts),
		logger:     logger,
	}
}

// FetchChangedFiles lists the files modified in a pull request, handling
// pagination. Entries the provider reports without a filename, patch, or
// change counts (directory renames, binary files) are silently dropped so one
// odd entry cannot fail the whole review; the rest keep their provider order.
func (c *Client) FetchChangedFiles(ctx context.Context, baseURL, repoFullName string, prNumber int) ([]core.FileChange, error) {
	gh, err := c.newAPIClient(baseURL)
	if err != nil {
		return nil, err
	}

	owner, repo, ok := strings.Cut(repoFullName, "/")
	if !ok {
		return nil, fmt.Errorf("invalid repository name %q, expected owner/name", repoFullName)
	}

	var changes []core.FileChange
	opts := &github.ListOptions{PerPage: 100}

	for {
		files, resp, err := gh.PullRequests.ListFiles(ctx, owner, repo, prNumber, opts)
		if err != nil {
			c.logger.Error("failed to list files for pull request",
				"repo", repoFullName, "pr", prNumber, "error", err)
			return nil, upstreamError(err)
		}

		for _, file := range files {
			if file.Filename == nil || file.Patch == nil ||
				file.Additions == nil || file.Deletions == nil || file.Changes == nil {
				c.logger.Debug("dropping file change entry with missing fields",
					"repo", repoFullName, "pr", prNumber, "file", file.GetFilename())
				continue
			}
			changes = append(changes, core.FileChange{
				Filename:  *file.Filename,
				Patch:     *file.Patch,
				Additions: *file.Additions,
				Deletions: *file.Deletions,
				Changes:   *file.Changes,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return changes, nil
}

// newAPIClient builds a go-github client rooted at the repository's API host.
func (c *Client) newAPIClient(baseURL string) (*github.Client, error) {
	gh := github.NewClient(c.httpClient)

	if baseURL == "" || baseURL == core.DefaultGitHubHost {
		return gh, nil
	}

	u, err := url.Parse("https://" + strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid provider base URL %q: %w", baseURL, err)
	}
	gh.BaseURL = u
	return gh, nil
}

// upstreamError converts go-github failures into a core.UpstreamError that
// keeps the provider's status and message for diagnostics.
func upstreamError(err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		body := errResp.Message
		// Validation failures carry the interesting part in the error details,
		// not the top-level message.
		for _, detail := range errResp.Errors {
			if detail.Message != "" {
				body += "; " + detail.Message
			}
		}
		return &core.UpstreamError{
			StatusCode: errResp.Response.StatusCode,
			Body:       body,
		}
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &core.UpstreamError{
			StatusCode: rateErr.Response.StatusCode,
			Body:       rateErr.Message,
		}
	}
	// Connection failures and timeouts have no status to report.
	return &core.UpstreamError{Body: err.Error()}
}
