package types

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures so the boundary layer can map
// them to user-facing statuses without inspecting error strings.
type ErrorKind string

const (
	ErrKindFetch      ErrorKind = "fetch"
	ErrKindParse      ErrorKind = "parse"
	ErrKindEmbedding  ErrorKind = "embedding"
	ErrKindGeneration ErrorKind = "generation"
	ErrKindEmptyIndex ErrorKind = "empty_index"
)

// PipelineError is the typed error surfaced by every pipeline sub-step.
type PipelineError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewFetchError(detail string, err error) *PipelineError {
	return &PipelineError{Kind: ErrKindFetch, Detail: detail, Err: err}
}

func NewParseError(detail string, err error) *PipelineError {
	return &PipelineError{Kind: ErrKindParse, Detail: detail, Err: err}
}

func NewEmbeddingError(detail string, err error) *PipelineError {
	return &PipelineError{Kind: ErrKindEmbedding, Detail: detail, Err: err}
}

func NewGenerationError(detail string, err error) *PipelineError {
	return &PipelineError{Kind: ErrKindGeneration, Detail: detail, Err: err}
}

func NewEmptyIndexError(detail string) *PipelineError {
	return &PipelineError{Kind: ErrKindEmptyIndex, Detail: detail}
}

// KindOf returns the kind of the first PipelineError in err's chain,
// or an empty kind when the error is not a pipeline error.
func KindOf(err error) ErrorKind {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
