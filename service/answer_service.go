package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/soumya721644/docqa-be/types"
)

// NotFoundAnswer is the fixed fallback returned when the retrieved
// context does not contain the answer. The prompt instructs the model to
// produce it verbatim; it is also substituted for empty model output so
// every question always yields exactly one answer string.
const NotFoundAnswer = "Information not found in the document."

const answerPromptTemplate = `Answer the user's question accurately and concisely based ONLY on the following context.
If the information is not in the context, say "%s"

Context:
%s

Question:
%s`

// AnswerService generates an answer for one question from the chunks
// retrieved for it, constraining the model to that context.
type AnswerService struct {
	ai AIService
}

func NewAnswerService(ai AIService) *AnswerService {
	return &AnswerService{ai: ai}
}

// Answer prompts the model with the question and its retrieved context
// and returns the model's raw response. Empty output is replaced by
// NotFoundAnswer. The model call is retried once on failure with the
// context unchanged.
func (s *AnswerService) Answer(ctx context.Context, question string, retrieved []types.ScoredChunk) (string, error) {
	contexts := make([]string, len(retrieved))
	for i, sc := range retrieved {
		contexts[i] = sc.Chunk.Content
	}
	prompt := fmt.Sprintf(answerPromptTemplate, NotFoundAnswer, strings.Join(contexts, "\n\n"), question)

	response, err := s.ai.Chat(ctx, prompt)
	if err != nil {
		log.Warn().Err(err).Msg("answer generation failed, retrying once")
		response, err = s.ai.Chat(ctx, prompt)
		if err != nil {
			return "", types.NewGenerationError("answer generation failed", err)
		}
	}

	if strings.TrimSpace(response) == "" {
		return NotFoundAnswer, nil
	}
	return response, nil
}
