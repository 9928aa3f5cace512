package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// GenerateText sends the prompt to the model and returns its raw text
	// response. The response is expected to look like JSON but is not parsed
	// here; normalization is the caller's job.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
