package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when the requested row does not exist.
// The HTTP layer maps it to a 404.
var ErrNotFound = errors.New("not found")

// UpstreamError indicates that the source provider rejected or failed a request.
// It keeps the provider's status code and response body for diagnostics.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider request failed with status %d: %s", e.StatusCode, e.Body)
}

// GenerationError indicates that the AI backend failed to produce a review for
// a single file, or that the prompt for it could not be rendered.
type GenerationError struct {
	FileName string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("review generation failed for %q: %v", e.FileName, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
