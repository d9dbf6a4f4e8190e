// Package handler provides HTTP handlers for project endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/middleware"
	projectModel "github.com/festy23/teamboard/internal/project/model"
	"github.com/festy23/teamboard/internal/project/service"
)

// Handler handles HTTP requests for project endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new project handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /projects request.
func (h *Handler) Create(c *gin.Context) {
	var req projectModel.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.PrincipalID(c), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error creating project", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": resp})
}

// ListByTeam handles GET /teams/:teamId/projects request.
func (h *Handler) ListByTeam(c *gin.Context) {
	resp, err := h.service.ListByTeam(c.Request.Context(), middleware.PrincipalID(c), c.Param("teamId"))
	if err != nil {
		respondServiceError(c, h.logger, "error listing projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": resp})
}

// Get handles GET /projects/:projectId request.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), middleware.PrincipalID(c), c.Param("projectId"))
	if err != nil {
		respondServiceError(c, h.logger, "error getting project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": resp})
}

// Update handles PATCH /projects/:projectId request.
func (h *Handler) Update(c *gin.Context) {
	var req projectModel.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), middleware.PrincipalID(c), c.Param("projectId"), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error updating project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": resp})
}

// Delete handles DELETE /projects/:projectId request.
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.PrincipalID(c), c.Param("projectId"))
	if err != nil {
		respondServiceError(c, h.logger, "error deleting project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("projectId")})
}
