// Package handler provides HTTP handlers for task endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/middleware"
	taskModel "github.com/festy23/teamboard/internal/task/model"
	"github.com/festy23/teamboard/internal/task/service"
)

// Handler handles HTTP requests for task endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new task handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /tasks request.
func (h *Handler) Create(c *gin.Context) {
	var req taskModel.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.PrincipalID(c), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error creating task", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": resp})
}

// listFilter builds the task filter from query parameters.
func listFilter(c *gin.Context) *taskModel.ListFilter {
	filter := &taskModel.ListFilter{}
	if status, ok := c.GetQuery("status"); ok {
		filter.Status = &status
	}
	if assigneeID, ok := c.GetQuery("assigneeId"); ok {
		filter.AssigneeID = &assigneeID
	}
	if priority, ok := c.GetQuery("priority"); ok {
		filter.Priority = &priority
	}
	return filter
}

// ListByProject handles GET /projects/:projectId/tasks request.
func (h *Handler) ListByProject(c *gin.Context) {
	resp, err := h.service.ListByProject(c.Request.Context(), middleware.PrincipalID(c), c.Param("projectId"), listFilter(c))
	if err != nil {
		respondServiceError(c, h.logger, "error listing tasks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": resp})
}

// Board handles GET /projects/:projectId/tasks/board request.
func (h *Handler) Board(c *gin.Context) {
	resp, err := h.service.Board(c.Request.Context(), middleware.PrincipalID(c), c.Param("projectId"))
	if err != nil {
		respondServiceError(c, h.logger, "error building board", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"board": resp})
}

// Get handles GET /tasks/:taskId request.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), middleware.PrincipalID(c), c.Param("taskId"))
	if err != nil {
		respondServiceError(c, h.logger, "error getting task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": resp})
}

// Update handles PATCH /tasks/:taskId request.
func (h *Handler) Update(c *gin.Context) {
	var req taskModel.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), middleware.PrincipalID(c), c.Param("taskId"), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error updating task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": resp})
}

// Delete handles DELETE /tasks/:taskId request.
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.PrincipalID(c), c.Param("taskId"))
	if err != nil {
		respondServiceError(c, h.logger, "error deleting task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("taskId")})
}
