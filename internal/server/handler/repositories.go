package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/approved/internal/review"
)

// RepositoryHandler serves repository registration and lookup.
type RepositoryHandler struct {
	reviews *review.Service
	logger  *slog.Logger
}

// NewRepositoryHandler creates a new RepositoryHandler.
func NewRepositoryHandler(reviews *review.Service, logger *slog.Logger) *RepositoryHandler {
	return &RepositoryHandler{reviews: reviews, logger: logger}
}

type createRepositoryRequest struct {
	RepositoryName string `json:"repository_name"`
	GitHubURL      string `json:"github_url"`
}

type repositoryResponse struct {
	ID             int64  `json:"id"`
	RepositoryName string `json:"repository_name"`
	GitHubURL      string `json:"github_url"`
}

// Create registers a new repository.
func (h *RepositoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRepositoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.RepositoryName == "" {
		writeError(w, http.StatusBadRequest, "repository_name is required.")
		return
	}

	repo, err := h.reviews.AddRepository(r.Context(), req.RepositoryName, req.GitHubURL)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, repositoryResponse{
		ID:             repo.ID,
		RepositoryName: repo.RepositoryName,
		GitHubURL:      repo.GitHubURL,
	})
}

// List returns all registered repositories.
func (h *RepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	repos, err := h.reviews.ListRepositories(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]repositoryResponse, 0, len(repos))
	for _, repo := range repos {
		resp = append(resp, repositoryResponse{
			ID:             repo.ID,
			RepositoryName: repo.RepositoryName,
			GitHubURL:      repo.GitHubURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single repository.
func (h *RepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "repositoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	repo, err := h.reviews.GetRepository(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, repositoryResponse{
		ID:             repo.ID,
		RepositoryName: repo.RepositoryName,
		GitHubURL:      repo.GitHubURL,
	})
}

// Delete removes a repository and everything registered under it.
func (h *RepositoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "repositoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reviews.DeleteRepository(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
