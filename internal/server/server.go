// Package server implements the HTTP server for the application.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sevigo/approved/internal/auth"
	"github.com/sevigo/approved/internal/config"
	"github.com/sevigo/approved/internal/review"
)

// requestTimeout bounds a single request. Review generation fans out LLM calls
// inside the request, so it is generous.
const requestTimeout = 15 * time.Minute

// Server wraps an HTTP server with graceful shutdown capabilities.
type Server struct {
	ctx    context.Context
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the given configuration and services.
func NewServer(ctx context.Context, cfg *config.Config, reviews *review.Service, authSvc *auth.Service, logger *slog.Logger) *Server {
	router := NewRouter(reviews, authSvc, logger)

	return &Server{
		ctx: ctx,
		server: &http.Server{
			Addr:         ":" + cfg.ServerPort,
			Handler:      router,
			ReadTimeout: 10 * time.Second,
			// Must outlast requestTimeout so a response to a long review can
			// still be written after the middleware deadline.
			WriteTimeout: requestTimeout + time.Minute,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server with a 30-second timeout.
func (s *Server) Stop() error {
	s.logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}
