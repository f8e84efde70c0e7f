package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/approved/internal/review"
)

// PullRequestHandler serves pull request registration and lookup.
type PullRequestHandler struct {
	reviews *review.Service
	logger  *slog.Logger
}

// NewPullRequestHandler creates a new PullRequestHandler.
func NewPullRequestHandler(reviews *review.Service, logger *slog.Logger) *PullRequestHandler {
	return &PullRequestHandler{reviews: reviews, logger: logger}
}

type createPullRequestRequest struct {
	PullRequestNumber int `json:"pull_request_number"`
}

type pullRequestResponse struct {
	ID                int64 `json:"id"`
	RepositoryID      int64 `json:"repository_id"`
	PullRequestNumber int   `json:"pull_request_number"`
}

// Create registers a pull request under a repository.
func (h *PullRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	repositoryID, err := pathID(r, "repositoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createPullRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.PullRequestNumber <= 0 {
		writeError(w, http.StatusBadRequest, "pull_request_number must be positive.")
		return
	}

	pr, err := h.reviews.AddPullRequest(r.Context(), repositoryID, req.PullRequestNumber)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, pullRequestResponse{
		ID:                pr.ID,
		RepositoryID:      pr.RepositoryID,
		PullRequestNumber: pr.PullRequestNumber,
	})
}

// List returns the pull requests registered under a repository.
func (h *PullRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	repositoryID, err := pathID(r, "repositoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prs, err := h.reviews.ListPullRequests(r.Context(), repositoryID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]pullRequestResponse, 0, len(prs))
	for _, pr := range prs {
		resp = append(resp, pullRequestResponse{
			ID:                pr.ID,
			RepositoryID:      pr.RepositoryID,
			PullRequestNumber: pr.PullRequestNumber,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single pull request.
func (h *PullRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "pullRequestID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pr, err := h.reviews.GetPullRequest(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, pullRequestResponse{
		ID:                pr.ID,
		RepositoryID:      pr.RepositoryID,
		PullRequestNumber: pr.PullRequestNumber,
	})
}
