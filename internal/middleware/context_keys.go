package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the acting user's ID in the request context.
const userIDKey = contextKey("userID")

// UserContextMiddleware resolves the acting user from the X-User-ID header
// set by the upstream session provider. Identity and authentication are the
// session provider's responsibility; a missing header is a caller error.
func UserContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			GetLoggerFromCtx(c.Request.Context()).Warn("Missing X-User-ID header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
			return
		}

		c.Set(string(userIDKey), userID)

		// Enrich the request-scoped logger with the user ID
		enrichedLogger := GetLoggerFromCtx(c.Request.Context()).With(slog.String("user_id", userID))
		c.Request = c.Request.WithContext(AddLoggerToCtx(c.Request.Context(), enrichedLogger))

		c.Next()
	}
}

// GetUserIDFromContext retrieves the acting user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
