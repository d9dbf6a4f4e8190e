package realtime

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes registers the websocket endpoint on an authenticated group.
func RegisterRoutes(r gin.IRoutes, registry *Registry, logger *zap.SugaredLogger) {
	h := NewHandler(registry, logger)
	r.GET("/ws", h.Serve)
}
