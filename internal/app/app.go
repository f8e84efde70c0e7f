// Package app initializes and orchestrates the main components of the
// application. It wires together the configuration, storage, clients, and the
// HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/approved/internal/auth"
	"github.com/sevigo/approved/internal/config"
	"github.com/sevigo/approved/internal/db"
	"github.com/sevigo/approved/internal/github"
	"github.com/sevigo/approved/internal/llm"
	"github.com/sevigo/approved/internal/review"
	"github.com/sevigo/approved/internal/server"
	"github.com/sevigo/approved/internal/storage"
)

// App holds the main application components.
type App struct {
	cfg     *config.Config
	server  *server.Server
	logger  *slog.Logger
	closeDB func()
}

// NewApp sets up the application with all its dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing application",
		"llm_provider", cfg.LLMProvider,
		"generator_model", cfg.GeneratorModelName,
		"max_concurrent_file_reviews", cfg.MaxConcurrentFileReviews)

	dbConn, closeDB, err := db.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	userStore := storage.NewUserStore(dbConn.DB)
	repoStore := storage.NewRepositoryStore(dbConn.DB)
	prStore := storage.NewPullRequestStore(dbConn.DB)
	reviewStore := storage.NewReviewStore(dbConn.DB)

	providerClient := github.NewClient(ctx, cfg.GitHubToken, cfg.ProviderConnTimeout, logger)

	model, err := llm.NewModel(ctx, cfg, logger)
	if err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		closeDB()
		return nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	fileReviewer := llm.NewFileReviewer(model, promptMgr, cfg.FileReviewTimeout, logger)
	reviewSvc := review.NewService(repoStore, prStore, reviewStore, providerClient, fileReviewer, cfg.MaxConcurrentFileReviews, logger)
	authSvc := auth.NewService(userStore, cfg.JWTSecret, cfg.TokenTTL, logger)

	httpServer := server.NewServer(ctx, cfg, reviewSvc, authSvc, logger)

	logger.Info("application initialized successfully")
	return &App{
		cfg:     cfg,
		server:  httpServer,
		logger:  logger,
		closeDB: closeDB,
	}, nil
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.logger.Info("starting approved", "server_port", a.cfg.ServerPort)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down services")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
		// Continue to stop other components even if the server failed.
	}

	a.logger.Info("closing database connection")
	a.closeDB()

	if serverErr != nil {
		return serverErr
	}

	a.logger.Info("stopped successfully")
	return nil
}
