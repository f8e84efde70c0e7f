package review

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/approved/internal/core"
	"github.com/sevigo/approved/mocks"
)

type serviceMocks struct {
	repos        *mocks.MockRepositoryStore
	pullRequests *mocks.MockPullRequestStore
	reviews      *mocks.MockReviewStore
	provider     *mocks.MockProviderClient
	reviewer     *mocks.MockFileReviewer
}

func newTestService(t *testing.T, maxConcurrent int) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repos:        mocks.NewMockRepositoryStore(ctrl),
		pullRequests: mocks.NewMockPullRequestStore(ctrl),
		reviews:      mocks.NewMockReviewStore(ctrl),
		provider:     mocks.NewMockProviderClient(ctrl),
		reviewer:     mocks.NewMockFileReviewer(ctrl),
	}
	svc := NewService(m.repos, m.pullRequests, m.reviews, m.provider, m.reviewer,
		maxConcurrent, slog.New(slog.DiscardHandler))
	return svc, m
}

// waitForPersist returns a channel that is closed once AddFileReviews has been
// called. The per-file rows are written by a detached goroutine, so tests that
// assert on the call must wait for it before the mock controller checks
// expectations.
func waitForPersist(m serviceMocks, reviewID int64, wantNames, wantContents []string) <-chan struct{} {
	done := make(chan struct{})
	m.reviews.EXPECT().
		AddFileReviews(gomock.Any(), reviewID, wantNames, wantContents).
		DoAndReturn(func(context.Context, int64, []string, []string) error {
			close(done)
			return nil
		})
	return done
}

func TestCreateReview(t *testing.T) {
	repo := &core.Repository{ID: 1, RepositoryName: "acme/widgets", GitHubURL: core.DefaultGitHubHost}
	pr := &core.PullRequest{ID: 7, RepositoryID: 1, PullRequestNumber: 42}

	t.Run("single file happy path", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
		m.provider.EXPECT().
			FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
			Return([]core.FileChange{{Filename: "a.py", Patch: "@@ -1 +1 @@", Additions: 1, Deletions: 0, Changes: 1}}, nil)
		m.reviewer.EXPECT().
			Review(gomock.Any(), gomock.Any()).
			Return("Looks fine.", nil)
		m.reviews.EXPECT().CreateReview(gomock.Any(), int64(7)).Return(&core.Review{ID: 99, PullRequestID: 7}, nil)
		done := waitForPersist(m, 99, []string{"a.py"}, []string{"Looks fine."})

		got, err := svc.CreateReview(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(99), got.ReviewID)
		assert.Equal(t, []string{"a.py"}, got.FileNames)
		assert.Equal(t, []string{"Looks fine."}, got.ReviewContents)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("file reviews were never persisted")
		}
	})

	t.Run("results keep provider file order", func(t *testing.T) {
		svc, m := newTestService(t, 4)

		changes := []core.FileChange{
			{Filename: "a.go", Patch: "p1", Changes: 1},
			{Filename: "b.go", Patch: "p2", Changes: 1},
			{Filename: "c.go", Patch: "p3", Changes: 1},
			{Filename: "d.go", Patch: "p4", Changes: 1},
		}

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
		m.provider.EXPECT().
			FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
			Return(changes, nil)

		// Later files finish first; the aggregate must still follow input order.
		m.reviewer.EXPECT().
			Review(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c core.FileChange) (string, error) {
				switch c.Filename {
				case "a.go":
					time.Sleep(40 * time.Millisecond)
				case "b.go":
					time.Sleep(20 * time.Millisecond)
				}
				return "review of " + c.Filename, nil
			}).
			Times(4)

		m.reviews.EXPECT().CreateReview(gomock.Any(), int64(7)).Return(&core.Review{ID: 5, PullRequestID: 7}, nil)
		wantNames := []string{"a.go", "b.go", "c.go", "d.go"}
		wantContents := []string{"review of a.go", "review of b.go", "review of c.go", "review of d.go"}
		done := waitForPersist(m, 5, wantNames, wantContents)

		got, err := svc.CreateReview(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, wantNames, got.FileNames)
		assert.Equal(t, wantContents, got.ReviewContents)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("file reviews were never persisted")
		}
	})

	t.Run("empty pull request still records a review", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
		m.provider.EXPECT().
			FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
			Return([]core.FileChange{}, nil)
		m.reviews.EXPECT().CreateReview(gomock.Any(), int64(7)).Return(&core.Review{ID: 3, PullRequestID: 7}, nil)
		done := waitForPersist(m, 3, []string{}, []string{})

		got, err := svc.CreateReview(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ReviewID)
		assert.Empty(t, got.FileNames)
		assert.Empty(t, got.ReviewContents)

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("file reviews were never persisted")
		}
	})

	t.Run("unknown repository fails before the provider is called", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(404)).Return(nil, core.ErrNotFound)

		_, err := svc.CreateReview(context.Background(), 404, 7)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("unknown pull request", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(404)).Return(nil, core.ErrNotFound)

		_, err := svc.CreateReview(context.Background(), 1, 404)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("provider failure persists nothing", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		upstream := &core.UpstreamError{StatusCode: 404, Body: "Not Found"}
		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
		m.provider.EXPECT().
			FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
			Return(nil, upstream)

		_, err := svc.CreateReview(context.Background(), 1, 7)

		var gotUpstream *core.UpstreamError
		require.ErrorAs(t, err, &gotUpstream)
		assert.Equal(t, 404, gotUpstream.StatusCode)
	})

	t.Run("one failed file review aborts the whole pass", func(t *testing.T) {
		svc, m := newTestService(t, 2)

		changes := []core.FileChange{
			{Filename: "ok.go", Patch: "p", Changes: 1},
			{Filename: "bad.go", Patch: "p", Changes: 1},
		}
		genErr := &core.GenerationError{FileName: "bad.go", Err: errors.New("model unavailable")}

		m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
		m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
		m.provider.EXPECT().
			FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
			Return(changes, nil)
		m.reviewer.EXPECT().
			Review(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c core.FileChange) (string, error) {
				if c.Filename == "bad.go" {
					return "", genErr
				}
				return "fine", nil
			}).
			AnyTimes()
		// No CreateReview, no AddFileReviews: the controller fails the test if
		// either is called.

		_, err := svc.CreateReview(context.Background(), 1, 7)

		var gotGen *core.GenerationError
		require.ErrorAs(t, err, &gotGen)
		assert.Equal(t, "bad.go", gotGen.FileName)
	})
}

func TestCreateReview_ConcurrencyBound(t *testing.T) {
	const (
		maxConcurrent = 2
		numFiles      = 8
	)

	repo := &core.Repository{ID: 1, RepositoryName: "acme/widgets", GitHubURL: core.DefaultGitHubHost}
	pr := &core.PullRequest{ID: 7, RepositoryID: 1, PullRequestNumber: 42}

	svc, m := newTestService(t, maxConcurrent)

	changes := make([]core.FileChange, numFiles)
	names := make([]string, numFiles)
	contents := make([]string, numFiles)
	for i := range changes {
		name := string(rune('a'+i)) + ".go"
		changes[i] = core.FileChange{Filename: name, Patch: "p", Changes: 1}
		names[i] = name
		contents[i] = "ok"
	}

	m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
	m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
	m.provider.EXPECT().
		FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
		Return(changes, nil)

	var inFlight, peak atomic.Int32
	m.reviewer.EXPECT().
		Review(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, core.FileChange) (string, error) {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			return "ok", nil
		}).
		Times(numFiles)

	m.reviews.EXPECT().CreateReview(gomock.Any(), int64(7)).Return(&core.Review{ID: 1, PullRequestID: 7}, nil)
	done := waitForPersist(m, 1, names, contents)

	_, err := svc.CreateReview(context.Background(), 1, 7)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("file reviews were never persisted")
	}

	assert.LessOrEqual(t, peak.Load(), int32(maxConcurrent),
		"observed %d concurrent file reviews, limit is %d", peak.Load(), maxConcurrent)
	assert.Greater(t, peak.Load(), int32(0))
}

func TestCreateReview_CancelledWaitersSkipBackend(t *testing.T) {
	repo := &core.Repository{ID: 1, RepositoryName: "acme/widgets", GitHubURL: core.DefaultGitHubHost}
	pr := &core.PullRequest{ID: 7, RepositoryID: 1, PullRequestNumber: 42}

	// With a single slot only one review can be in flight. Cancelling the
	// request while it holds the slot must stop the queued files from ever
	// reaching the backend.
	svc, m := newTestService(t, 1)

	changes := []core.FileChange{
		{Filename: "first.go", Patch: "p", Changes: 1},
		{Filename: "second.go", Patch: "p", Changes: 1},
		{Filename: "third.go", Patch: "p", Changes: 1},
	}

	m.repos.EXPECT().GetRepository(gomock.Any(), int64(1)).Return(repo, nil)
	m.pullRequests.EXPECT().GetPullRequest(gomock.Any(), int64(7)).Return(pr, nil)
	m.provider.EXPECT().
		FetchChangedFiles(gomock.Any(), core.DefaultGitHubHost, "acme/widgets", 42).
		Return(changes, nil)

	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	started := make(chan struct{})
	var once sync.Once
	m.reviewer.EXPECT().
		Review(gomock.Any(), gomock.Any()).
		DoAndReturn(func(rctx context.Context, _ core.FileChange) (string, error) {
			calls.Add(1)
			once.Do(func() { close(started) })
			<-rctx.Done()
			return "", rctx.Err()
		})

	go func() {
		<-started
		cancel()
	}()

	_, err := svc.CreateReview(ctx, 1, 7)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(1), calls.Load(), "queued files must not reach the backend after cancellation")
}

func TestNewService_RaisesConcurrencyFloor(t *testing.T) {
	svc, _ := newTestService(t, 0)
	assert.Equal(t, 1, svc.maxConcurrent)
}

func TestAddPullRequest_RequiresRepository(t *testing.T) {
	svc, m := newTestService(t, 1)

	m.repos.EXPECT().GetRepository(gomock.Any(), int64(9)).Return(nil, core.ErrNotFound)

	_, err := svc.AddPullRequest(context.Background(), 9, 42)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
