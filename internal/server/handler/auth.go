package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sevigo/approved/internal/auth"
)

// AuthHandler serves user registration and token endpoints.
type AuthHandler struct {
	authSvc *auth.Service
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *auth.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, logger: logger}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	if _, err := h.authSvc.Register(r.Context(), req.Username, req.Password); err != nil {
		respondError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/token")
	writeJSON(w, http.StatusCreated, map[string]string{"message": "User created successfully."})
}

// Token exchanges basic-auth credentials for a bearer token.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		w.Header().Set("WWW-Authenticate", "Basic")
		writeError(w, http.StatusUnauthorized, "Basic auth credentials required.")
		return
	}

	user, err := h.authSvc.Authenticate(r.Context(), username, password)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	token, err := h.authSvc.IssueToken(user.Username)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, auth.ErrInvalidCredentials)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:          user.ID,
		Username:    user.Username,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
	})
}
