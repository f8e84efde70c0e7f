package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sevigo/approved/internal/review"
)

// ReviewHandler serves review creation and retrieval.
type ReviewHandler struct {
	reviews *review.Service
	logger  *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviews *review.Service, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, logger: logger}
}

type reviewResponse struct {
	ReviewID       int64    `json:"review_id"`
	FileNames      []string `json:"file_names"`
	ReviewContents []string `json:"review_contents"`
	Message        string   `json:"message,omitempty"`
}

type reviewSummaryResponse struct {
	ID            int64     `json:"id"`
	PullRequestID int64     `json:"pull_request_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Create runs the review pipeline for a pull request and returns the
// generated per-file reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	repositoryID, err := pathID(r, "repositoryID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pullRequestID, err := pathID(r, "pullRequestID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reviews.CreateReview(r.Context(), repositoryID, pullRequestID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/reviews/%d", result.ReviewID))
	writeJSON(w, http.StatusCreated, reviewResponse{
		ReviewID:       result.ReviewID,
		FileNames:      result.FileNames,
		ReviewContents: result.ReviewContents,
		Message:        "Review created.",
	})
}

// List returns the reviews recorded for a pull request.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	pullRequestID, err := pathID(r, "pullRequestID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.reviews.ListReviews(r.Context(), pullRequestID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	resp := make([]reviewSummaryResponse, 0, len(reviews))
	for _, rev := range reviews {
		resp = append(resp, reviewSummaryResponse{
			ID:            rev.ID,
			PullRequestID: rev.PullRequestID,
			CreatedAt:     rev.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a stored review with its per-file contents.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reviews.GetReview(r.Context(), reviewID)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, reviewResponse{
		ReviewID:       result.ReviewID,
		FileNames:      result.FileNames,
		ReviewContents: result.ReviewContents,
	})
}

// Delete removes a review and its file reviews.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathID(r, "reviewID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reviews.DeleteReview(r.Context(), reviewID); err != nil {
		respondError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
