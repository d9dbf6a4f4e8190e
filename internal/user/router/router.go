// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/teamboard/internal/auth"
	"github.com/festy23/teamboard/internal/middleware"
	"github.com/festy23/teamboard/internal/user/handler"
	"github.com/festy23/teamboard/internal/user/repository"
	"github.com/festy23/teamboard/internal/user/service"
)

// RegisterRoutes registers auth routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.Manager, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, tokens, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", middleware.Auth(tokens, logger), h.Me)
}
