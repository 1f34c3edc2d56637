package database

import (
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/soumya721644/docqa-be/types"
)

// MemoryStore is an in-memory vector store using brute-force cosine
// similarity. Exact search is cheap at single-document scale, a few
// hundred to a few thousand chunks.
type MemoryStore struct {
	mu        sync.RWMutex
	dimension int
	chunks    []types.DocumentChunk
	vectors   [][]float32
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Build(chunks []types.DocumentChunk, embeddings [][]float32) error {
	if len(chunks) != len(embeddings) {
		return errors.New("chunks and embeddings length mismatch")
	}
	if len(embeddings) > 0 {
		dim := len(embeddings[0])
		if dim == 0 {
			return errors.New("zero-length embedding")
		}
		for _, v := range embeddings {
			if len(v) != dim {
				return errors.New("embedding dimension mismatch")
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = chunks
	s.vectors = embeddings
	if len(embeddings) > 0 {
		s.dimension = len(embeddings[0])
	} else {
		s.dimension = 0
	}
	return nil
}

func (s *MemoryStore) Query(embedding []float32, k int) ([]types.ScoredChunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.vectors) == 0 {
		return nil, types.NewEmptyIndexError("vector index is empty; build it from a document first")
	}
	if len(embedding) != s.dimension {
		return nil, errors.New("query embedding dimension mismatch")
	}
	if k <= 0 {
		k = 4
	}
	if k > len(s.vectors) {
		k = len(s.vectors)
	}

	results := make([]types.ScoredChunk, len(s.vectors))
	for i, v := range s.vectors {
		results[i] = types.ScoredChunk{
			Chunk: s.chunks[i],
			Score: cosineSimilarity(embedding, v),
		}
	}

	// Nearest first; equal scores fall back to original chunk order so
	// retrieval stays deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Chunk.Index < results[j].Chunk.Index
	})

	return results[:k], nil
}

func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
