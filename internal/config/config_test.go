package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8082", cfg.ServerPort)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "approved", cfg.Database.Database)

	assert.Equal(t, "ghp_test", cfg.GitHubToken)
	assert.Equal(t, 10*time.Second, cfg.ProviderConnTimeout)
	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.Equal(t, "gemma3:latest", cfg.GeneratorModelName)
	assert.Equal(t, 5*time.Minute, cfg.FileReviewTimeout)
	assert.Equal(t, 5, cfg.MaxConcurrentFileReviews)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadConfig_RequiredValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing GITHUB_TOKEN",
			env:  map[string]string{"JWT_SECRET": "s"},
		},
		{
			name: "missing JWT_SECRET",
			env:  map[string]string{"GITHUB_TOKEN": "t"},
		},
		{
			name: "gemini without API key",
			env: map[string]string{
				"GITHUB_TOKEN": "t",
				"JWT_SECRET":   "s",
				"LLM_PROVIDER": "gemini",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_GeminiDefaultModel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeneratorModelName)

	t.Setenv("GENERATOR_MODEL_NAME", "gemini-2.5-pro")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeneratorModelName)
}

func TestLoadConfig_ConcurrencyFloor(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MAX_CONCURRENT_FILE_REVIEWS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MaxConcurrentFileReviews)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("FILE_REVIEW_TIMEOUT", "90s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 90*time.Second, cfg.FileReviewTimeout)
}
