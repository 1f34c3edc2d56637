package database

import (
	"github.com/soumya721644/docqa-be/types"
)

// VectorStore is a nearest-neighbor index over a single document's
// chunks. A store is built once per request and discarded with it.
type VectorStore interface {
	// Build replaces the store's contents with the given chunks and
	// their embeddings. Both slices must have the same length and pair
	// positionally; all embeddings must share one dimensionality.
	Build(chunks []types.DocumentChunk, embeddings [][]float32) error

	// Query returns up to k chunks nearest to the given embedding,
	// nearest first, ties broken by lower chunk index. Querying a store
	// that was never built, or was built empty, is an error.
	Query(embedding []float32, k int) ([]types.ScoredChunk, error)
}
