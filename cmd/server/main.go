// Package main provides the entry point for the HTTP server.
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/teamboard/internal/auth"
	"github.com/festy23/teamboard/internal/authz"
	commentRouter "github.com/festy23/teamboard/internal/comment/router"
	"github.com/festy23/teamboard/internal/config"
	"github.com/festy23/teamboard/internal/database/database"
	"github.com/festy23/teamboard/internal/database/migrate"
	"github.com/festy23/teamboard/internal/health"
	"github.com/festy23/teamboard/internal/middleware"
	projectRouter "github.com/festy23/teamboard/internal/project/router"
	"github.com/festy23/teamboard/internal/realtime"
	taskRouter "github.com/festy23/teamboard/internal/task/router"
	teamRouter "github.com/festy23/teamboard/internal/team/router"
	userRouter "github.com/festy23/teamboard/internal/user/router"
	"github.com/festy23/teamboard/pkg/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	db, err := database.New()
	if err != nil {
		appLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() {
		_ = database.Close(db)
	}()

	if err := migrate.Migrate(db); err != nil {
		appLogger.Fatalw("failed to apply migrations", "error", err)
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Logger(appLogger))
	r.Use(middleware.Recovery(appLogger))

	tokens := auth.NewManager(cfg.Auth)
	resolver := authz.New(db)
	registry := realtime.NewRegistry()
	broadcaster := realtime.NewBroadcaster(registry, appLogger)

	healthHandler := health.New(db, appLogger)
	r.GET("/health", healthHandler.Check)

	userRouter.RegisterRoutes(r, db, tokens, appLogger)

	authed := r.Group("/", middleware.Auth(tokens, appLogger))
	teamRouter.RegisterRoutes(authed, db, resolver, appLogger)
	projectRouter.RegisterRoutes(authed, db, resolver, broadcaster, appLogger)
	taskRouter.RegisterRoutes(authed, db, resolver, broadcaster, appLogger)
	commentRouter.RegisterRoutes(authed, db, resolver, broadcaster, appLogger)
	realtime.RegisterRoutes(authed, registry, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	appLogger.Infow("starting server", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLogger.Fatalw("server stopped", "error", err)
	}
}
