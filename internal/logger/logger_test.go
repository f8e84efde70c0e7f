package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:   "text logger at info level",
			config: Config{Level: "info", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				if !strings.Contains(output, "level=INFO") ||
					!strings.Contains(output, `msg="test message"`) {
					t.Errorf("expected text log output with info level and message, got: %s", output)
				}
			},
		},
		{
			name:   "json logger at debug level",
			config: Config{Level: "debug", Format: "json", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				var entry map[string]any
				if err := json.Unmarshal([]byte(output), &entry); err != nil {
					t.Fatalf("failed to unmarshal JSON log: %v, output: %s", err, output)
				}
				if entry["level"] != "DEBUG" || entry["msg"] != "test message" {
					t.Errorf("expected JSON log with debug level and message, got: %v", entry)
				}
			},
		},
		{
			name:   "debug messages dropped at info level",
			config: Config{Level: "info", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				if strings.Contains(output, "DEBUG") {
					t.Errorf("expected debug message to be filtered out, got: %s", output)
				}
			},
		},
		{
			name:   "unknown level falls back to info",
			config: Config{Level: "shouting", Format: "text", Output: "stdout"},
			checkFunc: func(t *testing.T, output string) {
				if !strings.Contains(output, "level=INFO") {
					t.Errorf("expected info level fallback, got: %s", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.config, &buf)

			if tt.config.Level == "debug" {
				logger.Debug("test message")
			} else {
				logger.Debug("should be dropped")
				logger.Info("test message")
			}

			tt.checkFunc(t, buf.String())
		})
	}
}
