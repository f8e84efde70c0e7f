package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/approved/internal/auth"
	"github.com/sevigo/approved/internal/review"
	"github.com/sevigo/approved/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(reviews *review.Service, authSvc *auth.Service, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authSvc, logger)
	r.Post("/users", authHandler.Register)
	r.Post("/token", authHandler.Token)

	// Everything below requires a valid bearer token.
	r.Group(func(r chi.Router) {
		r.Use(authSvc.RequireAuth)

		r.Get("/users/me", authHandler.Me)

		repoHandler := handler.NewRepositoryHandler(reviews, logger)
		prHandler := handler.NewPullRequestHandler(reviews, logger)
		reviewHandler := handler.NewReviewHandler(reviews, logger)

		r.Route("/repositories", func(r chi.Router) {
			r.Post("/", repoHandler.Create)
			r.Get("/", repoHandler.List)

			r.Route("/{repositoryID}", func(r chi.Router) {
				r.Get("/", repoHandler.Get)
				r.Delete("/", repoHandler.Delete)

				r.Route("/pull_requests", func(r chi.Router) {
					r.Post("/", prHandler.Create)
					r.Get("/", prHandler.List)

					r.Route("/{pullRequestID}", func(r chi.Router) {
						r.Get("/", prHandler.Get)

						r.Route("/reviews", func(r chi.Router) {
							r.Post("/", reviewHandler.Create)
							r.Get("/", reviewHandler.List)
							r.Get("/{reviewID}", reviewHandler.Get)
							r.Delete("/{reviewID}", reviewHandler.Delete)
						})
					})
				})
			})
		})
	})

	return r
}
