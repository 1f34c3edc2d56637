package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiService struct {
	apiKeys        []string
	clients        []*genai.Client
	current        int
	modelName      string
	embeddingModel string
	mu             sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName, embeddingModel string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	// One client per key, created up front and never closed: rotation
	// must not invalidate a client another request is mid-call on.
	clients := make([]*genai.Client, len(apiKeys))
	for i, key := range apiKeys {
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(key))
		if err != nil {
			return nil, err
		}
		clients[i] = client
	}

	return &GeminiService{
		apiKeys:        apiKeys,
		clients:        clients,
		modelName:      modelName,
		embeddingModel: embeddingModel,
	}, nil
}

// getClient snapshots the client for the active key.
func (s *GeminiService) getClient() *genai.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[s.current]
}

// rotateAPIKey switches subsequent calls to the next key.
func (s *GeminiService) rotateAPIKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = (s.current + 1) % len(s.clients)
}

func (s *GeminiService) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	em := s.getClient().EmbeddingModel(s.embeddingModel)
	batch := em.NewBatch()
	for _, text := range texts {
		batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		// Try rotating API key if there's an error
		s.rotateAPIKey()
		em = s.getClient().EmbeddingModel(s.embeddingModel)
		resp, err = em.BatchEmbedContents(ctx, batch)
		if err != nil {
			return nil, err
		}
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, errors.New("embedding count does not match input count")
	}
	vectors := make([][]float32, len(texts))
	for i, e := range resp.Embeddings {
		vectors[i] = e.Values
	}
	return vectors, nil
}

func (s *GeminiService) Chat(ctx context.Context, prompt string) (string, error) {
	model := s.getClient().GenerativeModel(s.modelName)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		// Try rotating API key if there's an error
		s.rotateAPIKey()
		model = s.getClient().GenerativeModel(s.modelName)
		resp, err = model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("no response generated")
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					content += string(text)
				}
			}
		}
	}
	return content, nil
}
