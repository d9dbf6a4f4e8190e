package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/teamboard/internal/auth"
)

const principalKey = "principal_id"

// Auth returns a middleware that verifies the Bearer token and stores
// the principal id on the request context.
func Auth(tokens *auth.Manager, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "authentication required")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			logger.Debugw("token verification failed", "path", c.Request.URL.Path, "error", err)
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(principalKey, claims.UserID)
		c.Next()
	}
}

// PrincipalID returns the authenticated user id set by Auth.
func PrincipalID(c *gin.Context) string {
	return c.GetString(principalKey)
}

// bearerToken extracts the token from an Authorization header.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
