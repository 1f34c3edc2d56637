package service

import (
	"context"
	"strings"
)

// stubAIService is a deterministic in-process stand-in for the external
// embedding and generation models.
type stubAIService struct {
	embedFn func(texts []string) ([][]float32, error)
	chatFn  func(prompt string) (string, error)

	embedCalls int
	chatCalls  int
}

func (s *stubAIService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	s.embedCalls++
	if s.embedFn != nil {
		return s.embedFn(texts)
	}
	return keywordEmbeddings(texts), nil
}

func (s *stubAIService) Chat(ctx context.Context, prompt string) (string, error) {
	s.chatCalls++
	if s.chatFn != nil {
		return s.chatFn(prompt)
	}
	return "stub answer", nil
}

// keywordEmbeddings maps texts onto a tiny fixed vocabulary so that
// related texts share a direction and unrelated ones are orthogonal.
func keywordEmbeddings(texts []string) [][]float32 {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		lower := strings.ToLower(text)
		switch {
		case strings.Contains(lower, "grace"):
			vectors[i] = []float32{1, 0, 0}
		case strings.Contains(lower, "maternity"):
			vectors[i] = []float32{0, 1, 0}
		default:
			vectors[i] = []float32{0, 0, 1}
		}
	}
	return vectors
}
