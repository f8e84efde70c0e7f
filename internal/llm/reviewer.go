package llm

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"

	"github.com/sevigo/approved/internal/core"
)

// FileReviewer generates a review for a single changed file by sending a
// system/user prompt pair to the configured model. Each call is an independent
// two-message conversation; no context is carried between files.
type FileReviewer struct {
	model     llms.Model
	promptMgr *PromptManager
	timeout   time.Duration
	logger    *slog.Logger
}

var _ core.FileReviewer = (*FileReviewer)(nil)

// NewFileReviewer creates a FileReviewer. timeout bounds each model call;
// zero means no per-file deadline.
func NewFileReviewer(model llms.Model, promptMgr *PromptManager, timeout time.Duration, logger *slog.Logger) *FileReviewer {
	return &FileReviewer{
		model:     model,
		promptMgr: promptMgr,
		timeout:   timeout,
		logger:    logger,
	}
}

// Review renders the review prompts for the file and returns the model's
// output. The backend streams its answer; chunks are concatenated into one
// string before returning. Any failure is reported as a core.GenerationError
// naming the file, so the caller can tell which sibling task failed.
func (f *FileReviewer) Review(ctx context.Context, change core.FileChange) (string, error) {
	systemPrompt, err := f.promptMgr.RenderSystem(ReviewPullRequestPrompt, nil)
	if err != nil {
		return "", &core.GenerationError{FileName: change.Filename, Err: err}
	}
	userPrompt, err := f.promptMgr.RenderUser(ReviewPullRequestPrompt, map[string]string{
		"Filename": change.Filename,
		"Patch":    change.Patch,
	})
	if err != nil {
		return "", &core.GenerationError{FileName: change.Filename, Err: err}
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	f.logger.Debug("generating file review", "file", change.Filename, "additions", change.Additions, "deletions", change.Deletions)

	var buf bytes.Buffer
	resp, err := f.model.GenerateContent(ctx,
		[]schema.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
			llms.TextParts(schema.ChatMessageTypeHuman, userPrompt),
		},
		llms.WithStreamingFunc(func(_ context.Context, chunk []byte) error {
			buf.Write(chunk)
			return nil
		}),
	)
	if err != nil {
		return "", &core.GenerationError{FileName: change.Filename, Err: err}
	}

	// Prefer the streamed chunks; fall back to the final choice for backends
	// that do not stream.
	review := buf.String()
	if review == "" && len(resp.Choices) > 0 {
		review = resp.Choices[0].Content
	}
	return strings.TrimSpace(review), nil
}
