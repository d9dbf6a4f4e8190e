// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/authz"
	"github.com/festy23/teamboard/internal/team/handler"
	"github.com/festy23/teamboard/internal/team/repository"
	"github.com/festy23/teamboard/internal/team/service"
	userRepository "github.com/festy23/teamboard/internal/user/repository"
)

// RegisterRoutes registers team module routes on an authenticated group.
func RegisterRoutes(r gin.IRoutes, db *gorm.DB, resolver authz.Resolver, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	users := userRepository.New(db)
	svc := service.New(repo, users, resolver, db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams", h.Create)
	r.GET("/teams", h.List)
	r.GET("/teams/:teamId", h.Get)
	r.POST("/teams/:teamId/members", h.AddMember)
}
