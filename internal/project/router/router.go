// Package router provides project module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	"github.com/festy23/teamboard/internal/project/handler"
	"github.com/festy23/teamboard/internal/project/repository"
	"github.com/festy23/teamboard/internal/project/service"
	"github.com/festy23/teamboard/internal/realtime"
)

// RegisterRoutes registers project module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, resolver authz.Resolver, publisher realtime.Publisher, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, resolver, publisher, logger)
	h := handler.New(svc, logger)

	r.POST("/projects", h.Create)
	r.GET("/teams/:teamId/projects", h.ListByTeam)
	r.GET("/projects/:projectId", h.Get)
	r.PATCH("/projects/:projectId", h.Update)
	r.DELETE("/projects/:projectId", h.Delete)
}
