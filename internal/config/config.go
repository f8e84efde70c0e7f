package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/approved/internal/logger"
)

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Config holds the application's configuration values.
type Config struct {
	ServerPort string
	Logger     logger.Config
	Database   *DBConfig

	GitHubToken              string
	ProviderConnTimeout      time.Duration
	LLMProvider              string
	GeneratorModelName       string
	OllamaHost               string
	GeminiAPIKey             string
	FileReviewTimeout        time.Duration
	MaxConcurrentFileReviews int

	JWTSecret string
	TokenTTL  time.Duration
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8082")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stdout")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "approved")
	v.SetDefault("DB_NAME", "approved")
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")

	v.SetDefault("PROVIDER_CONNECT_TIMEOUT", "10s")
	v.SetDefault("LLM_PROVIDER", "ollama")
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("FILE_REVIEW_TIMEOUT", "5m")
	v.SetDefault("MAX_CONCURRENT_FILE_REVIEWS", 5)

	v.SetDefault("TOKEN_TTL", "24h")

	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine; the environment still applies.
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				slog.Warn("failed to read .env file", "error", err)
			}
		}
	}

	if v.GetString("GITHUB_TOKEN") == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN must be set")
	}
	if v.GetString("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if v.GetString("LLM_PROVIDER") == "gemini" && v.GetString("GEMINI_API_KEY") == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
	}

	// Each provider has its own default generator model.
	generatorModel := v.GetString("GENERATOR_MODEL_NAME")
	if generatorModel == "" {
		if v.GetString("LLM_PROVIDER") == "gemini" {
			generatorModel = "gemini-2.5-flash"
		} else {
			generatorModel = "gemma3:latest"
		}
	}

	maxReviews := v.GetInt("MAX_CONCURRENT_FILE_REVIEWS")
	if maxReviews <= 0 {
		maxReviews = 1
	}

	return &Config{
		ServerPort: v.GetString("SERVER_PORT"),
		Logger: logger.Config{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
		Database: &DBConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			Username:        v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Database:        v.GetString("DB_NAME"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: v.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		GitHubToken:              v.GetString("GITHUB_TOKEN"),
		ProviderConnTimeout:      v.GetDuration("PROVIDER_CONNECT_TIMEOUT"),
		LLMProvider:              v.GetString("LLM_PROVIDER"),
		GeneratorModelName:       generatorModel,
		OllamaHost:               v.GetString("OLLAMA_HOST"),
		GeminiAPIKey:             v.GetString("GEMINI_API_KEY"),
		FileReviewTimeout:        v.GetDuration("FILE_REVIEW_TIMEOUT"),
		MaxConcurrentFileReviews: maxReviews,
		JWTSecret:                v.GetString("JWT_SECRET"),
		TokenTTL:                 v.GetDuration("TOKEN_TTL"),
	}, nil
}
