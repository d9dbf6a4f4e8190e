// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/middleware"
	teamModel "github.com/festy23/teamboard/internal/team/model"
	"github.com/festy23/teamboard/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Create handles POST /teams request.
func (h *Handler) Create(c *gin.Context) {
	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.PrincipalID(c), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error creating team", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": resp})
}

// List handles GET /teams request.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.ListMine(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		respondServiceError(c, h.logger, "error listing teams", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": resp})
}

// Get handles GET /teams/:teamId request.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), middleware.PrincipalID(c), c.Param("teamId"))
	if err != nil {
		respondServiceError(c, h.logger, "error getting team", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// AddMember handles POST /teams/:teamId/members request.
func (h *Handler) AddMember(c *gin.Context) {
	var req teamModel.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddMember(c.Request.Context(), middleware.PrincipalID(c), c.Param("teamId"), &req)
	if err != nil {
		respondServiceError(c, h.logger, "error adding team member", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": resp})
}
