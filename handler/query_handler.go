package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/soumya721644/docqa-be/service"
	"github.com/soumya721644/docqa-be/types"
)

const maxUploadSize = 10 << 20

// QueryHandler exposes the document question-answering pipeline over
// HTTP. It only decodes requests, delegates to the query service and
// maps pipeline error kinds to status codes.
type QueryHandler struct {
	queryService *service.QueryService
}

func NewQueryHandler(queryService *service.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// HandleRun processes a document URL and a list of questions, returning
// one answer per question in the same order.
func (h *QueryHandler) HandleRun(c *gin.Context) {
	var req types.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}
	if req.Documents == "" {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "documents URL is required",
		})
		return
	}

	answers, err := h.queryService.Process(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.QueryResponse{Answers: answers})
}

// HandleUpload answers questions about an uploaded PDF instead of a
// fetched one. Questions come as a JSON string array form value.
func (h *QueryHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "File too large",
		})
		return
	}

	var questions []string
	if err := json.Unmarshal([]byte(c.Request.FormValue("questions")), &questions); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid questions",
		})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Failed to read file",
		})
		return
	}

	answers, err := h.queryService.ProcessBytes(c.Request.Context(), data, questions)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.QueryResponse{Answers: answers})
}

func (h *QueryHandler) sendError(c *gin.Context, err error) {
	log.Error().Err(err).Msg("query processing failed")
	c.JSON(statusForError(err), types.DataResponse{
		Status:  "error",
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	switch types.KindOf(err) {
	case types.ErrKindFetch, types.ErrKindParse, types.ErrKindEmptyIndex:
		return http.StatusBadRequest
	case types.ErrKindEmbedding, types.ErrKindGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
