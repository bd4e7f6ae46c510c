package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthToken returns a Gin middleware that validates the MCP auth token,
// accepted either as "Authorization: Bearer <token>" or an X-API-Key
// header. If token is empty, the middleware is a no-op (auth disabled).
func AuthToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		provided := strings.TrimSpace(c.GetHeader("X-API-Key"))
		if provided == "" {
			auth := strings.TrimSpace(c.GetHeader("Authorization"))
			provided = strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		}

		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing auth token"})
			return
		}
		if provided != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid auth token"})
			return
		}
		c.Next()
	}
}
