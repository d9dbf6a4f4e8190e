// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/middleware"
	"github.com/festy23/teamboard/internal/user/model"
	"github.com/festy23/teamboard/internal/user/service"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new user handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register handles POST /auth/register request.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error registering user", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login request.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error logging in", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me request.
func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		respondServiceError(c, h.logger, "error loading profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": resp})
}
