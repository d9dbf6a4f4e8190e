// Package router provides comment module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	"github.com/festy23/teamboard/internal/comment/handler"
	"github.com/festy23/teamboard/internal/comment/repository"
	"github.com/festy23/teamboard/internal/comment/service"
	"github.com/festy23/teamboard/internal/realtime"
	taskRepository "github.com/festy23/teamboard/internal/task/repository"
)

// RegisterRoutes registers comment module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, resolver authz.Resolver, publisher realtime.Publisher, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	tasks := taskRepository.New(db)
	svc := service.New(repo, tasks, resolver, publisher, logger)
	h := handler.New(svc, logger)

	r.POST("/tasks/:taskId/comments", h.Create)
	r.GET("/tasks/:taskId/comments", h.ListByTask)
	r.DELETE("/comments/:commentId", h.Delete)
}
