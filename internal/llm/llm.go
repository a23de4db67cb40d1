package llm

import (
	"context"
	"errors"
)

// Message is a role-tagged chat message for the generation service.
type Message struct {
	Role    string
	Content string
}

// Client abstracts the letter generation provider. A call is synchronous and
// stateless; the result is the complete letter text or an error.
type Client interface {
	GenerateLetter(ctx context.Context, messages []Message) (string, error)
}

// ErrMissingAPIKey is returned when no generation credential is configured.
// Callers must halt before any pipeline step runs.
var ErrMissingAPIKey = errors.New("generation API key is not configured")

// ErrGeneration wraps transport, quota, and model failures from the provider.
var ErrGeneration = errors.New("letter generation failed")
