// Package genai talks to the upstream generative API that writes the
// mindmap markdown.
package genai

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGeneration covers every upstream failure: transport errors, auth
	// and quota rejections, blocked prompts, and unusable responses. The
	// wrapped message stays human-readable so callers can surface it.
	ErrGeneration = errors.New("generation failed")

	// ErrGenerationTimeout marks calls that exceeded the configured
	// deadline. It matches ErrGeneration under errors.Is.
	ErrGenerationTimeout = fmt.Errorf("%w: timed out", ErrGeneration)
)

// Generator produces model output for a prompt in a single attempt.
// Implementations never retry; a failed call surfaces immediately.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}
