package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/soumya721644/docqa-be/database"
	"github.com/soumya721644/docqa-be/types"
)

const embedBatchSize = 64

// QueryService runs the full pipeline for one request: fetch and parse
// the document, chunk it, embed the chunks into a fresh in-memory index,
// then answer each question against that index. Indexes live for a
// single request; a new request always rebuilds from scratch.
//
// Batch semantics are fail-fast: the first sub-step failure aborts the
// remaining questions and fails the whole request. A half-answered batch
// is not a useful contract for callers of this service.
type QueryService struct {
	documents *DocumentService
	ai        AIService
	answers   *AnswerService
	topK      int

	// newStore builds the per-request index; swappable in tests.
	newStore func() database.VectorStore
}

func NewQueryService(documents *DocumentService, ai AIService, topK int) *QueryService {
	if topK <= 0 {
		topK = 4
	}
	return &QueryService{
		documents: documents,
		ai:        ai,
		answers:   NewAnswerService(ai),
		topK:      topK,
		newStore:  func() database.VectorStore { return database.NewMemoryStore() },
	}
}

// Process downloads the document referenced by the request and answers
// its questions, one answer per question in request order.
func (s *QueryService) Process(ctx context.Context, req types.QueryRequest) ([]string, error) {
	if len(req.Questions) == 0 {
		return []string{}, nil
	}

	data, err := s.documents.FetchDocument(ctx, req.Documents)
	if err != nil {
		return nil, err
	}
	return s.ProcessBytes(ctx, data, req.Questions)
}

// ProcessBytes runs the same pipeline over an already-retrieved document,
// serving the upload path and the CLI.
func (s *QueryService) ProcessBytes(ctx context.Context, document []byte, questions []string) ([]string, error) {
	if len(questions) == 0 {
		return []string{}, nil
	}

	text, err := s.documents.ExtractText(document)
	if err != nil {
		return nil, err
	}
	return s.processText(ctx, text, questions)
}

// processText is the pipeline from extracted text onwards: chunk, embed,
// build the per-request index, answer each question in order.
func (s *QueryService) processText(ctx context.Context, text string, questions []string) ([]string, error) {
	chunks := s.documents.CreateChunks(text)
	if len(chunks) == 0 {
		return nil, types.NewEmptyIndexError("document produced no chunks to index")
	}
	log.Debug().Int("chunks", len(chunks)).Msg("document chunked")

	embeddings, err := s.embedChunks(ctx, chunks)
	if err != nil {
		return nil, err
	}

	store := s.newStore()
	if err := store.Build(chunks, embeddings); err != nil {
		return nil, types.NewEmbeddingError("failed to build vector index", err)
	}

	answers := make([]string, 0, len(questions))
	for _, question := range questions {
		answer, err := s.answerQuestion(ctx, store, question)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (s *QueryService) embedChunks(ctx context.Context, chunks []types.DocumentChunk) ([][]float32, error) {
	embeddings := make([][]float32, 0, len(chunks))
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, chunk := range chunks[start:end] {
			texts = append(texts, chunk.Content)
		}
		vectors, err := s.ai.EmbedTexts(ctx, texts)
		if err != nil {
			return nil, types.NewEmbeddingError("failed to embed document chunks", err)
		}
		embeddings = append(embeddings, vectors...)
	}
	return embeddings, nil
}

func (s *QueryService) answerQuestion(ctx context.Context, store database.VectorStore, question string) (string, error) {
	vectors, err := s.ai.EmbedTexts(ctx, []string{question})
	if err != nil {
		return "", types.NewEmbeddingError("failed to embed question", err)
	}

	retrieved, err := store.Query(vectors[0], s.topK)
	if err != nil {
		return "", err
	}

	return s.answers.Answer(ctx, question, retrieved)
}
