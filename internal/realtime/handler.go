package realtime

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handler upgrades HTTP requests to websocket connections and services
// their subscription lifecycle.
type Handler struct {
	registry *Registry
	upgrader websocket.Upgrader
	logger   *zap.SugaredLogger
}

// NewHandler creates a websocket handler over the shared registry.
func NewHandler(registry *Registry, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger,
	}
}

// Serve handles GET /ws. The request is already authenticated; the
// connection stays subscribed until it closes.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	client := NewClient(conn, h.registry, h.logger)
	client.Run()
}
