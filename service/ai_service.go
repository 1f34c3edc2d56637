package service

import (
	"context"
)

// AIService is the boundary to the external embedding and generation
// models. Implementations must be safe for concurrent use and
// deterministic for a given model and input (no sampling randomness on
// the embedding side).
type AIService interface {
	// EmbedTexts returns one fixed-dimension vector per input text, in
	// input order. The dimensionality is constant for a given model.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// Chat sends a single-turn prompt to the generation model and
	// returns its raw text response.
	Chat(ctx context.Context, prompt string) (string, error)
}
