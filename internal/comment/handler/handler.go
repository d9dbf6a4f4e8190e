// Package handler provides HTTP handlers for comment endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	commentModel "github.com/festy23/teamboard/internal/comment/model"
	"github.com/festy23/teamboard/internal/comment/service"
	"github.com/festy23/teamboard/internal/middleware"
)

// Handler handles HTTP requests for comment endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new comment handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /tasks/:taskId/comments request.
func (h *Handler) Create(c *gin.Context) {
	var req commentModel.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.PrincipalID(c), c.Param("taskId"), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error creating comment", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": resp})
}

// ListByTask handles GET /tasks/:taskId/comments request.
func (h *Handler) ListByTask(c *gin.Context) {
	resp, err := h.service.ListByTask(c.Request.Context(), middleware.PrincipalID(c), c.Param("taskId"))
	if err != nil {
		respondServiceError(c, h.logger, "error listing comments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": resp})
}

// Delete handles DELETE /comments/:commentId request.
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.PrincipalID(c), c.Param("commentId"))
	if err != nil {
		respondServiceError(c, h.logger, "error deleting comment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("commentId")})
}
