// Package router provides task module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	projectRepository "github.com/festy23/teamboard/internal/project/repository"
	"github.com/festy23/teamboard/internal/realtime"
	"github.com/festy23/teamboard/internal/task/handler"
	"github.com/festy23/teamboard/internal/task/repository"
	"github.com/festy23/teamboard/internal/task/service"
)

// RegisterRoutes registers task module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, resolver authz.Resolver, publisher realtime.Publisher, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	projects := projectRepository.New(db)
	svc := service.New(repo, projects, resolver, publisher, logger)
	h := handler.New(svc, logger)

	r.POST("/tasks", h.Create)
	r.GET("/projects/:projectId/tasks", h.ListByProject)
	r.GET("/projects/:projectId/tasks/board", h.Board)
	r.GET("/tasks/:taskId", h.Get)
	r.PATCH("/tasks/:taskId", h.Update)
	r.DELETE("/tasks/:taskId", h.Delete)
}
