// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/approved/internal/auth"
	"github.com/sevigo/approved/internal/core"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// respondError maps domain errors onto HTTP status codes. Provider and
// generation failures surface as 500: the request itself was fine, the system
// could not complete it.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var upstreamErr *core.UpstreamError
	var genErr *core.GenerationError

	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, http.StatusNotFound, "Resource not found.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Could not validate credentials.")
	case errors.As(err, &upstreamErr):
		logger.Error("provider request failed", "status", upstreamErr.StatusCode, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch pull request files from GitHub.")
	case errors.As(err, &genErr):
		logger.Error("review generation failed", "file", genErr.FileName, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate review.")
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// pathID parses a numeric path parameter like {repositoryID}.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}
