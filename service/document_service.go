package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/soumya721644/docqa-be/types"
)

// DocumentService handles document retrieval, PDF text extraction and
// chunking. One instance is shared across requests; it holds no
// per-document state.
type DocumentService struct {
	maxChunkSize int // Maximum size of each text chunk
	overlapSize  int // Size of overlap between chunks
	client       *http.Client
}

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChunkSize: 1000,
	OverlapSize:  100,
}

// NewDocumentService creates a new document service with configurable chunk sizes
func NewDocumentService(config types.DocumentServiceConfig) *DocumentService {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultDocumentServiceConfig.MaxChunkSize
	}
	if config.OverlapSize < 0 || config.OverlapSize >= config.MaxChunkSize {
		// Clamp relative to the chunk size so small chunk configs still
		// get a usable overlap instead of one larger than the chunk.
		config.OverlapSize = config.MaxChunkSize / 10
	}
	return &DocumentService{
		maxChunkSize: config.MaxChunkSize,
		overlapSize:  config.OverlapSize,
		client:       &http.Client{Timeout: 60 * time.Second},
	}
}

// FetchDocument downloads the document at url. Single attempt; any
// transport failure or non-2xx status surfaces immediately as a fetch
// error.
func (s *DocumentService) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.NewFetchError("invalid document URL", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, types.NewFetchError("failed to download document", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, types.NewFetchError(fmt.Sprintf("document download returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewFetchError("failed to read document body", err)
	}
	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("document downloaded")
	return data, nil
}

// ExtractText extracts the plain text of a PDF given as raw bytes,
// pages concatenated in order. Returns a parse error when the bytes are
// not a readable PDF or contain no extractable text.
func (s *DocumentService) ExtractText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = types.NewParseError("failed to parse PDF", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", types.NewParseError("failed to parse PDF", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", types.NewParseError("failed to extract text from PDF", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", types.NewParseError("failed to read extracted text", err)
	}

	text = s.cleanText(buf.String())
	if text == "" {
		return "", types.NewParseError("no extractable text in document", nil)
	}
	return text, nil
}

// CreateChunks splits text into overlapping chunks, preferring sentence
// boundaries, then word boundaries, before falling back to a hard cut at
// the chunk size. Empty input yields no chunks; input that fits in one
// chunk yields exactly one.
func (s *DocumentService) CreateChunks(text string) []types.DocumentChunk {
	if text == "" {
		return nil
	}

	textLen := len(text)
	if textLen <= s.maxChunkSize {
		return []types.DocumentChunk{{Content: text, Index: 0}}
	}

	var chunks []types.DocumentChunk
	currentPos := 0
	for currentPos < textLen {
		chunkEnd := currentPos + s.maxChunkSize
		if chunkEnd >= textLen {
			chunks = append(chunks, types.DocumentChunk{
				Content: text[currentPos:],
				Index:   len(chunks),
			})
			break
		}

		// Find nearest sentence end before the size limit
		sentenceEnd := chunkEnd
		for i := chunkEnd - 1; i > currentPos; i-- {
			if text[i] == '.' || text[i] == '?' || text[i] == '!' {
				sentenceEnd = i + 1
				break
			}
		}

		// If no sentence end found, use word boundary
		if sentenceEnd == chunkEnd {
			for i := chunkEnd - 1; i > currentPos; i-- {
				if text[i] == ' ' || text[i] == '\n' {
					sentenceEnd = i + 1
					break
				}
			}
		}

		chunks = append(chunks, types.DocumentChunk{
			Content: text[currentPos:sentenceEnd],
			Index:   len(chunks),
		})

		// Step back by the overlap for the next chunk, always making
		// progress past the current start.
		next := sentenceEnd - s.overlapSize
		if next <= currentPos {
			next = sentenceEnd
		}
		currentPos = next
	}

	return chunks
}

func (s *DocumentService) cleanText(text string) string {
	replacements := map[string]string{
		"\u0000": "",   // Null character
		"\ufffd": "",   // Unicode replacement character
		"\u001b": "",   // Escape character
		"\r":     "",   // Carriage return
		"\f":     "\n", // Form feed to newline
	}
	cleaned := text
	for old, new := range replacements {
		cleaned = strings.ReplaceAll(cleaned, old, new)
	}

	// Collapse runs of spaces left behind by column layouts
	for strings.Contains(cleaned, "  ") {
		cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	}

	return strings.TrimSpace(cleaned)
}
