package types

// DocumentChunk is a bounded segment of the extracted document text.
// Index is the chunk's position in the original chunk sequence and is
// used as the deterministic tie-breaker during retrieval.
type DocumentChunk struct {
	Content string
	Index   int
}

// ScoredChunk pairs a retrieved chunk with its similarity score.
type ScoredChunk struct {
	Chunk DocumentChunk
	Score float64
}

// DocumentServiceConfig contains configuration options for document processing
type DocumentServiceConfig struct {
	MaxChunkSize int // Maximum size for text chunks
	OverlapSize  int // Size of overlap between chunks
}
