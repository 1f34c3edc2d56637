package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soumya721644/docqa-be/types"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  "ok",
		Message: "Intelligent Query-Retrieval System is running.",
	})
}
