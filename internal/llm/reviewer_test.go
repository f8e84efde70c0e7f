package llm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/approved/internal/core"
)

// fakeModel streams canned chunks through the caller's streaming func and
// records the messages it was given.
type fakeModel struct {
	chunks   []string
	final    string
	err      error
	messages []schema.MessageContent
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []schema.MessageContent, options ...llms.CallOption) (*schema.ContentResponse, error) {
	m.messages = messages
	if m.err != nil {
		return nil, m.err
	}

	opts := llms.CallOptions{}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.StreamingFunc != nil {
		for _, chunk := range m.chunks {
			if err := opts.StreamingFunc(ctx, []byte(chunk)); err != nil {
				return nil, err
			}
		}
	}

	return &schema.ContentResponse{
		Choices: []*schema.ContentChoice{{Content: m.final}},
	}, nil
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return m.final, m.err
}

func newTestReviewer(t *testing.T, model llms.Model) *FileReviewer {
	t.Helper()
	pm, err := NewPromptManager()
	require.NoError(t, err)
	return NewFileReviewer(model, pm, 0, slog.New(slog.DiscardHandler))
}

func TestFileReviewer_Review(t *testing.T) {
	change := core.FileChange{
		Filename:  "internal/auth/auth.go",
		Patch:     "@@ -10,2 +10,3 @@\n+if err != nil {",
		Additions: 1,
		Changes:   1,
	}

	t.Run("concatenates streamed chunks", func(t *testing.T) {
		model := &fakeModel{chunks: []string{"Looks ", "fine."}}
		reviewer := newTestReviewer(t, model)

		got, err := reviewer.Review(context.Background(), change)
		require.NoError(t, err)
		assert.Equal(t, "Looks fine.", got)
	})

	t.Run("falls back to the final choice when nothing streams", func(t *testing.T) {
		model := &fakeModel{final: "Looks fine.\n"}
		reviewer := newTestReviewer(t, model)

		got, err := reviewer.Review(context.Background(), change)
		require.NoError(t, err)
		assert.Equal(t, "Looks fine.", got)
	})

	t.Run("sends the file name and patch to the model", func(t *testing.T) {
		model := &fakeModel{final: "ok"}
		reviewer := newTestReviewer(t, model)

		_, err := reviewer.Review(context.Background(), change)
		require.NoError(t, err)

		require.Len(t, model.messages, 2)
		assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
		assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)

		require.Len(t, model.messages[1].Parts, 1)
		text, ok := model.messages[1].Parts[0].(schema.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, change.Filename)
		assert.Contains(t, text.Text, change.Patch)
	})

	t.Run("model failure names the file", func(t *testing.T) {
		model := &fakeModel{err: errors.New("backend unavailable")}
		reviewer := newTestReviewer(t, model)

		_, err := reviewer.Review(context.Background(), change)

		var genErr *core.GenerationError
		require.ErrorAs(t, err, &genErr)
		assert.Equal(t, change.Filename, genErr.FileName)
	})
}
