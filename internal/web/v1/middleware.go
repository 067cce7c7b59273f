package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edziennik/school-backend/internal/logger"
)

// userIDKey is where RequireAuth stores the authenticated user id in the
// gin context.
const userIDKey = "user_id"

// RequireAuth is the authentication gate for protected routes. It resolves
// the Authorization header through the session resolver and aborts with 401
// on any failure; the reason is logged, never returned.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := h.sessions.Resolve(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Session rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user id set by RequireAuth.
func currentUserID(c *gin.Context) int {
	return c.GetInt(userIDKey)
}
